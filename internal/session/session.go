package session

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	game "github.com/CodeAndHammer/minigames/internal/game"
	models "github.com/CodeAndHammer/minigames/internal/models"
	stats "github.com/CodeAndHammer/minigames/internal/stats"
	util "github.com/CodeAndHammer/minigames/internal/util"
)

// Session owns one user's five game states and statistics. All actions are
// serialized by mu and either commit fully or leave state unchanged.
type Session struct {
	ID string

	mu             sync.Mutex
	engines        *game.Engines
	numberGuessing models.NumberGuessingState
	rps            models.RpsState
	scramble       models.ScrambleState
	quiz           models.QuizState
	ticTacToe      models.TicTacToeState
	stats          *stats.Aggregator
	lastAccess     time.Time
	now            func() time.Time
}

func New(id string, engines *game.Engines, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		ID:             id,
		engines:        engines,
		numberGuessing: engines.NumberGuessing.Start(),
		rps:            models.RpsState{History: []models.RpsRound{}},
		scramble:       engines.Scramble.Idle(),
		quiz:           engines.Quiz.Idle(),
		ticTacToe:      engines.TicTacToe.New(),
		stats:          stats.New(now),
		lastAccess:     now(),
		now:            now,
	}
}

// record reports a recorded outcome to the aggregator. Callers hold mu.
func (s *Session) record(ctx context.Context, out game.Outcome) {
	if !out.Recorded {
		return
	}
	if _, err := s.stats.Record(out.Game.Title(), out.Score); err != nil {
		util.LogWarnCtx(ctx, "Session %s: failed to record %s score %d: %v", s.ID, out.Game.Title(), out.Score, err)
		return
	}
	util.LogInfoCtx(ctx, "Session %s: recorded %s score %d", s.ID, out.Game.Title(), out.Score)
}

func (s *Session) StartNumberGuessing(ctx context.Context) game.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.numberGuessing = s.engines.NumberGuessing.Start()
	util.LogInfoCtx(ctx, "Session %s: new number guessing game", s.ID)
	return game.Outcome{Game: models.NumberGuessing, Kind: game.OutcomeStarted}
}

func (s *Session) Guess(ctx context.Context, value int) (game.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.numberGuessing.Clone()
	out, err := s.engines.NumberGuessing.Guess(&next, value)
	if err != nil {
		util.LogWarnCtx(ctx, "Session %s: guess %d rejected: %v", s.ID, value, err)
		return game.Outcome{}, err
	}
	s.numberGuessing = next
	util.LogInfoCtx(ctx, "Session %s guessed %d (attempt %d/%d): %s", s.ID, value, next.Attempts, next.MaxAttempts, out.Kind)
	s.record(ctx, out)
	return out, nil
}

func (s *Session) PlayRPS(ctx context.Context, choice models.Move) (game.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.rps.Clone()
	out, err := s.engines.RPS.Play(&next, choice)
	if err != nil {
		return game.Outcome{}, err
	}
	s.rps = next
	util.LogInfoCtx(ctx, "Session %s played %s against %s: %s", s.ID, choice, out.Computer, out.Result)
	s.record(ctx, out)
	return out, nil
}

func (s *Session) StartScramble(ctx context.Context, d models.Difficulty) (game.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.engines.Scramble.Start(d)
	if err != nil {
		return game.Outcome{}, err
	}
	if s.scramble.Active {
		util.LogInfoCtx(ctx, "Session %s abandoned word scramble at round %d", s.ID, s.scramble.Round)
	}
	s.scramble = next
	util.LogInfoCtx(ctx, "Session %s started word scramble on %s", s.ID, d)
	return game.Outcome{Game: models.WordScramble, Kind: game.OutcomeStarted}, nil
}

func (s *Session) SubmitScramble(ctx context.Context, guess string) (game.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.scramble
	out, err := s.engines.Scramble.Submit(&next, guess)
	if err != nil {
		return game.Outcome{}, err
	}
	s.scramble = next
	util.LogInfoCtx(ctx, "Session %s word scramble: %s (+%d, total %d)", s.ID, out.Kind, out.Points, next.Score)
	s.record(ctx, out)
	return out, nil
}

func (s *Session) StartQuiz(ctx context.Context, category string) (game.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.engines.Quiz.Start(category)
	if err != nil {
		return game.Outcome{}, err
	}
	s.quiz = next
	util.LogInfoCtx(ctx, "Session %s started quiz %q", s.ID, next.Category)
	return game.Outcome{Game: models.Quiz, Kind: game.OutcomeStarted}, nil
}

func (s *Session) SubmitQuiz(ctx context.Context, option string) (game.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.quiz.Clone()
	out, err := s.engines.Quiz.Submit(&next, option)
	if err != nil {
		return game.Outcome{}, err
	}
	s.quiz = next
	util.LogInfoCtx(ctx, "Session %s quiz answer correct=%v score=%d", s.ID, out.IsCorrect, next.Score)
	s.record(ctx, out)
	return out, nil
}

func (s *Session) MoveTicTacToe(ctx context.Context, position int) (game.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.ticTacToe
	out, err := s.engines.TicTacToe.Move(&next, position)
	if err != nil {
		return game.Outcome{}, err
	}
	s.ticTacToe = next
	if out.GameOver {
		util.LogInfoCtx(ctx, "Session %s tic-tac-toe finished: %s", s.ID, next.Winner)
	}
	s.record(ctx, out)
	return out, nil
}

func (s *Session) ResetTicTacToe(ctx context.Context) game.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	util.LogInfoCtx(ctx, "Session %s reset tic-tac-toe board", s.ID)
	return s.engines.TicTacToe.Reset(&s.ticTacToe)
}

// State returns a copy of one game's state.
func (s *Session) State(kind models.GameKind) models.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch kind {
	case models.NumberGuessing:
		return s.numberGuessing.Clone()
	case models.RockPaperScissors:
		return s.rps.Clone()
	case models.WordScramble:
		return s.scramble
	case models.Quiz:
		return s.quiz.Clone()
	case models.TicTacToe:
		return s.ticTacToe
	default:
		return nil
	}
}

// CurrentQuestion returns the quiz question awaiting an answer, if any.
func (s *Session) CurrentQuestion() (models.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engines.Quiz.Current(&s.quiz)
}

func (s *Session) QuizQuestionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engines.Quiz.QuestionCount(&s.quiz)
}

func (s *Session) Stats() models.GameStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.Snapshot()
}

func (s *Session) AverageScore() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.AverageScore()
}

func (s *Session) LastPlayed() (models.PlayRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.LastPlayed()
}

func (s *Session) Analytics() models.Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.Analytics()
}

func (s *Session) Touch() {
	s.mu.Lock()
	s.lastAccess = s.now()
	s.mu.Unlock()
}

func (s *Session) LastAccess() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess
}
