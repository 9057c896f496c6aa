package models

import (
	"fmt"
	"strings"
)

// GameKind selects one of the five game state variants held by a session.
type GameKind int

const (
	NumberGuessing GameKind = iota
	RockPaperScissors
	WordScramble
	Quiz
	TicTacToe
)

// AllGameKinds lists the kinds in menu order.
var AllGameKinds = []GameKind{NumberGuessing, RockPaperScissors, WordScramble, Quiz, TicTacToe}

// Slug is the URL form of the kind.
func (k GameKind) Slug() string {
	switch k {
	case NumberGuessing:
		return "number-guessing"
	case RockPaperScissors:
		return "rock-paper-scissors"
	case WordScramble:
		return "word-scramble"
	case Quiz:
		return "quiz"
	case TicTacToe:
		return "tic-tac-toe"
	default:
		return "unknown"
	}
}

// Title is the name recorded in play history.
func (k GameKind) Title() string {
	switch k {
	case NumberGuessing:
		return "Number Guessing"
	case RockPaperScissors:
		return "Rock Paper Scissors"
	case WordScramble:
		return "Word Scramble"
	case Quiz:
		return "Quiz Game"
	case TicTacToe:
		return "Tic-Tac-Toe"
	default:
		return "Unknown"
	}
}

func (k GameKind) String() string { return k.Slug() }

func (k GameKind) MarshalText() ([]byte, error) {
	return []byte(k.Slug()), nil
}

// ParseGameKind accepts a slug. "rps" is accepted as a short form.
func ParseGameKind(s string) (GameKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "rps" {
		return RockPaperScissors, nil
	}
	for _, k := range AllGameKinds {
		if k.Slug() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown game %q", s)
}

// Move is a rock-paper-scissors choice.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

var AllMoves = []Move{Rock, Paper, Scissors}

func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "unknown"
	}
}

func (m Move) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseMove accepts "rock", "paper" or "scissors" in any case.
func ParseMove(s string) (Move, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range AllMoves {
		if m.String() == s {
			return m, true
		}
	}
	return 0, false
}

// Beats reports whether m defeats other under the fixed rule table.
func (m Move) Beats(other Move) bool {
	return (m == Rock && other == Scissors) ||
		(m == Paper && other == Rock) ||
		(m == Scissors && other == Paper)
}

// RpsResult is the round result from the player's point of view.
type RpsResult string

const (
	RpsWin  RpsResult = "win"
	RpsLose RpsResult = "lose"
	RpsDraw RpsResult = "draw"
)

// Difficulty selects a word pool.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var AllDifficulties = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDifficulty accepts "easy", "medium" or "hard" in any case.
func ParseDifficulty(s string) (Difficulty, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range AllDifficulties {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

// Mark is the content of one tic-tac-toe cell, or the player to move.
type Mark int

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

func (m Mark) MarshalText() ([]byte, error) {
	if m == Empty {
		return []byte(""), nil
	}
	return []byte(m.String()), nil
}

// Other returns the opposing player.
func (m Mark) Other() Mark {
	if m == X {
		return O
	}
	return X
}

// Winner is the tic-tac-toe result of a board.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerX
	WinnerO
	WinnerDraw
)

func (w Winner) String() string {
	switch w {
	case WinnerX:
		return "X"
	case WinnerO:
		return "O"
	case WinnerDraw:
		return "Draw"
	default:
		return "None"
	}
}

func (w Winner) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// WinnerOf maps a player mark to its winner value.
func WinnerOf(m Mark) Winner {
	switch m {
	case X:
		return WinnerX
	case O:
		return WinnerO
	default:
		return WinnerNone
	}
}
