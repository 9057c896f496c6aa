package game

import (
	models "github.com/CodeAndHammer/minigames/internal/models"
)

// OutcomeKind distinguishes continuation from terminal results.
type OutcomeKind string

const (
	OutcomeStarted      OutcomeKind = "started"
	OutcomeContinue     OutcomeKind = "continue"
	OutcomeWon          OutcomeKind = "won"
	OutcomeLost         OutcomeKind = "lost"
	OutcomeDraw         OutcomeKind = "draw"
	OutcomeRound        OutcomeKind = "round"
	OutcomeCorrect      OutcomeKind = "correct"
	OutcomeIncorrect    OutcomeKind = "incorrect"
	OutcomeNextQuestion OutcomeKind = "next_question"
	OutcomeComplete     OutcomeKind = "complete"
	OutcomeMoved        OutcomeKind = "moved"
	OutcomeReset        OutcomeKind = "reset"
)

// Outcome is the structured result of one action. When Recorded is set the
// session reports Score to the statistics aggregator exactly once.
type Outcome struct {
	Game     models.GameKind `json:"game"`
	Kind     OutcomeKind     `json:"kind"`
	GameOver bool            `json:"gameOver"`
	Recorded bool            `json:"recorded"`
	Score    int             `json:"score"`

	// number guessing
	Hint   string `json:"hint,omitempty"`
	Secret int    `json:"secret,omitempty"`

	// rock paper scissors
	Player   *models.Move     `json:"player,omitempty"`
	Computer *models.Move     `json:"computer,omitempty"`
	Result   models.RpsResult `json:"result,omitempty"`

	// word scramble and quiz
	Points        int     `json:"points,omitempty"`
	Answer        string  `json:"answer,omitempty"`
	IsCorrect     bool    `json:"isCorrect,omitempty"`
	Explanation   string  `json:"explanation,omitempty"`
	Complete      bool    `json:"complete,omitempty"`
	TotalPossible int     `json:"totalPossible,omitempty"`
	Percentage    float64 `json:"percentage,omitempty"`

	// tic-tac-toe
	Position *int          `json:"position,omitempty"`
	Mark     models.Mark   `json:"mark,omitempty"`
	Winner   models.Winner `json:"winner,omitempty"`
}
