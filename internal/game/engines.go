// Package game holds the five game engines. Each engine applies one action to
// its own state variant and returns an Outcome; engines never touch statistics.
package game

import (
	"time"

	random "github.com/CodeAndHammer/minigames/internal/random"
)

// Engines bundles the five engines sharing one random source and clock.
type Engines struct {
	NumberGuessing *NumberGuessing
	RPS            *RockPaperScissors
	Scramble       *WordScramble
	Quiz           *Quiz
	TicTacToe      *TicTacToe
}

func NewEngines(rng random.Source, content *Content, now func() time.Time) *Engines {
	if now == nil {
		now = time.Now
	}
	return &Engines{
		NumberGuessing: NewNumberGuessing(rng),
		RPS:            NewRockPaperScissors(rng),
		Scramble:       NewWordScramble(rng, content.Words, now),
		Quiz:           NewQuiz(content),
		TicTacToe:      NewTicTacToe(),
	}
}
