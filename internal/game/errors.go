package game

import (
	"errors"

	constants "github.com/CodeAndHammer/minigames/internal/constants"
)

// Input validation errors. State is left unchanged.
var (
	ErrOutOfRange        = errors.New(constants.ErrorCodeOutOfRange)
	ErrInvalidPosition   = errors.New(constants.ErrorCodeInvalidPosition)
	ErrUnknownChoice     = errors.New(constants.ErrorCodeUnknownChoice)
	ErrUnknownOption     = errors.New(constants.ErrorCodeUnknownOption)
	ErrUnknownDifficulty = errors.New(constants.ErrorCodeUnknownDifficulty)
	ErrUnknownCategory   = errors.New(constants.ErrorCodeUnknownCategory)
)

// Contract errors: the action is not legal in the current state.
var (
	ErrGameOver     = errors.New(constants.ErrorCodeGameOver)
	ErrNotActive    = errors.New(constants.ErrorCodeNotActive)
	ErrCellOccupied = errors.New(constants.ErrorCodeCellOccupied)
)

// IsContractError reports whether err is one of the contract errors.
func IsContractError(err error) bool {
	return errors.Is(err, ErrGameOver) || errors.Is(err, ErrNotActive) || errors.Is(err, ErrCellOccupied)
}
