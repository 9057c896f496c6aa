package game

import (
	constants "github.com/CodeAndHammer/minigames/internal/constants"
	models "github.com/CodeAndHammer/minigames/internal/models"
	random "github.com/CodeAndHammer/minigames/internal/random"
)

type NumberGuessing struct {
	rng random.Source
}

func NewNumberGuessing(rng random.Source) *NumberGuessing {
	return &NumberGuessing{rng: rng}
}

// Start returns a fresh game with a new secret in [1,100].
func (e *NumberGuessing) Start() models.NumberGuessingState {
	return models.NumberGuessingState{
		Secret:      constants.NumberMin + e.rng.IntN(constants.NumberMax-constants.NumberMin+1),
		MaxAttempts: constants.NumberMaxAttempts,
		Hints:       []string{},
	}
}

// Guess applies one guess. Rejected guesses leave st untouched.
func (e *NumberGuessing) Guess(st *models.NumberGuessingState, value int) (Outcome, error) {
	if st.GameOver {
		return Outcome{}, ErrGameOver
	}
	if value < constants.NumberMin || value > constants.NumberMax {
		return Outcome{}, ErrOutOfRange
	}

	st.Attempts++
	out := Outcome{Game: models.NumberGuessing}

	switch {
	case value == st.Secret:
		st.Won, st.GameOver = true, true
		out.Kind = OutcomeWon
		out.Score = GuessScore(st.Attempts)
		out.Secret = st.Secret
		out.GameOver, out.Recorded = true, true
	case st.Attempts >= st.MaxAttempts:
		st.GameOver = true
		out.Kind = OutcomeLost
		out.Secret = st.Secret
		out.GameOver, out.Recorded = true, true
	default:
		hint := constants.HintTooHigh
		if value < st.Secret {
			hint = constants.HintTooLow
		}
		st.Hints = append(st.Hints, hint)
		out.Kind = OutcomeContinue
		out.Hint = hint
	}
	return out, nil
}

// GuessScore is 100 for a first-try win, minus 10 per extra attempt, never below 10.
func GuessScore(attempts int) int {
	return max(constants.NumberBaseScore-(attempts-1)*constants.NumberAttemptCost, constants.NumberMinScore)
}
