package game

import (
	"slices"

	constants "github.com/CodeAndHammer/minigames/internal/constants"
	models "github.com/CodeAndHammer/minigames/internal/models"
)

// winLines are the rows, columns and diagonals of the row-major board.
var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

type TicTacToe struct{}

func NewTicTacToe() *TicTacToe { return &TicTacToe{} }

// New returns an empty board with X to move.
func (e *TicTacToe) New() models.TicTacToeState {
	return models.TicTacToeState{CurrentPlayer: models.X}
}

// Reset clears the board. Win and draw counters persist.
func (e *TicTacToe) Reset(st *models.TicTacToeState) Outcome {
	st.Board = [constants.TicTacToeCells]models.Mark{}
	st.CurrentPlayer = models.X
	st.GameOver = false
	st.Winner = models.WinnerNone
	return Outcome{Game: models.TicTacToe, Kind: OutcomeReset}
}

// Move places the current player's mark on an empty cell.
func (e *TicTacToe) Move(st *models.TicTacToeState, position int) (Outcome, error) {
	if position < 0 || position >= constants.TicTacToeCells {
		return Outcome{}, ErrInvalidPosition
	}
	if st.GameOver {
		return Outcome{}, ErrGameOver
	}
	if st.Board[position] != models.Empty {
		return Outcome{}, ErrCellOccupied
	}

	mark := st.CurrentPlayer
	st.Board[position] = mark
	out := Outcome{Game: models.TicTacToe, Kind: OutcomeMoved, Position: &position, Mark: mark}

	switch w := Evaluate(st.Board); w {
	case models.WinnerX, models.WinnerO:
		st.Winner, st.GameOver = w, true
		if w == models.WinnerX {
			st.XWins++
		} else {
			st.OWins++
		}
		out.Kind = OutcomeWon
		out.Winner = w
		out.Score = constants.TicTacToeWinScore
		out.GameOver, out.Recorded = true, true
	case models.WinnerDraw:
		st.Winner, st.GameOver = w, true
		st.Draws++
		out.Kind = OutcomeDraw
		out.Winner = w
		out.Score = constants.TicTacToeDrawScore
		out.GameOver, out.Recorded = true, true
	default:
		st.CurrentPlayer = mark.Other()
	}
	return out, nil
}

// Evaluate returns the symbol owning a complete line, Draw for a full board
// without one, and None otherwise.
func Evaluate(board [constants.TicTacToeCells]models.Mark) models.Winner {
	for _, line := range winLines {
		a := board[line[0]]
		if a != models.Empty && a == board[line[1]] && a == board[line[2]] {
			return models.WinnerOf(a)
		}
	}
	if !slices.Contains(board[:], models.Empty) {
		return models.WinnerDraw
	}
	return models.WinnerNone
}
