package game

import (
	"math"
	"strings"
	"time"

	constants "github.com/CodeAndHammer/minigames/internal/constants"
	models "github.com/CodeAndHammer/minigames/internal/models"
	random "github.com/CodeAndHammer/minigames/internal/random"
)

type WordScramble struct {
	rng   random.Source
	pools map[models.Difficulty][]string
	now   func() time.Time
}

func NewWordScramble(rng random.Source, pools map[models.Difficulty][]string, now func() time.Time) *WordScramble {
	if now == nil {
		now = time.Now
	}
	return &WordScramble{rng: rng, pools: pools, now: now}
}

// ParseDifficulty maps a difficulty name to its enum value.
func ParseDifficulty(s string) (models.Difficulty, error) {
	d, ok := models.ParseDifficulty(s)
	if !ok {
		return 0, ErrUnknownDifficulty
	}
	return d, nil
}

// Idle returns the inactive state shown before the first game.
func (e *WordScramble) Idle() models.ScrambleState {
	return models.ScrambleState{Round: 1, TotalRounds: constants.ScrambleTotalRounds, Difficulty: models.Easy}
}

// Start begins a five-round game on the given difficulty.
func (e *WordScramble) Start(d models.Difficulty) (models.ScrambleState, error) {
	if _, ok := e.pools[d]; !ok {
		return models.ScrambleState{}, ErrUnknownDifficulty
	}
	st := models.ScrambleState{
		Round:       1,
		TotalRounds: constants.ScrambleTotalRounds,
		Difficulty:  d,
		Active:      true,
	}
	e.nextWord(&st)
	return st, nil
}

func (e *WordScramble) nextWord(st *models.ScrambleState) {
	st.CurrentWord = random.Pick(e.rng, e.pools[st.Difficulty])
	st.ScrambledWord = Scramble(e.rng, st.CurrentWord)
	st.StartTime = e.now()
}

// Submit checks a guess for the current round, then advances or finishes.
func (e *WordScramble) Submit(st *models.ScrambleState, guess string) (Outcome, error) {
	if !st.Active {
		return Outcome{}, ErrNotActive
	}

	out := Outcome{Game: models.WordScramble, Answer: st.CurrentWord}
	if strings.EqualFold(strings.TrimSpace(guess), st.CurrentWord) {
		points := ScramblePoints(e.now().Sub(st.StartTime))
		st.Score += points
		out.Kind = OutcomeCorrect
		out.IsCorrect = true
		out.Points = points
	} else {
		out.Kind = OutcomeIncorrect
	}

	if st.Round < st.TotalRounds {
		st.Round++
		e.nextWord(st)
	} else {
		st.Active = false
		out.Complete = true
		out.GameOver = true
		out.Recorded = true
	}
	out.Score = st.Score
	return out, nil
}

// ScramblePoints is 20 minus whole seconds taken, never below 5.
func ScramblePoints(elapsed time.Duration) int {
	secs := int(math.Floor(max(elapsed.Seconds(), 0)))
	return max(constants.ScrambleMaxPoints-secs, constants.ScrambleMinPoints)
}

// Scramble returns a uniform permutation of word's letters, resampled until it
// differs from word. Words whose letters are all identical are returned as is.
func Scramble(rng random.Source, word string) string {
	runes := []rune(word)
	if len(runes) < 2 || !hasDistinct(runes) {
		return word
	}
	for {
		rng.Shuffle(len(runes), func(i, j int) { runes[i], runes[j] = runes[j], runes[i] })
		if s := string(runes); s != word {
			return s
		}
	}
}

func hasDistinct(runes []rune) bool {
	for _, r := range runes[1:] {
		if r != runes[0] {
			return true
		}
	}
	return false
}
