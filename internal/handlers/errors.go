package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	constants "github.com/CodeAndHammer/minigames/internal/constants"
	game "github.com/CodeAndHammer/minigames/internal/game"
	util "github.com/CodeAndHammer/minigames/internal/util"
)

var errorStatus = []struct {
	err    error
	status int
	msg    string
}{
	{game.ErrOutOfRange, http.StatusBadRequest, "guess must be between 1 and 100"},
	{game.ErrInvalidPosition, http.StatusBadRequest, "position must be between 0 and 8"},
	{game.ErrUnknownChoice, http.StatusBadRequest, "choice must be rock, paper or scissors"},
	{game.ErrUnknownOption, http.StatusBadRequest, "option is not one of the current question's options"},
	{game.ErrUnknownDifficulty, http.StatusBadRequest, "difficulty must be easy, medium or hard"},
	{game.ErrUnknownCategory, http.StatusBadRequest, "unknown quiz category"},
	{game.ErrGameOver, http.StatusConflict, "game is over, start a new one"},
	{game.ErrNotActive, http.StatusConflict, "no game in progress"},
	{game.ErrCellOccupied, http.StatusConflict, "cell is already taken"},
}

func respondError(c *gin.Context, err error) {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			c.JSON(e.status, gin.H{"error": e.err.Error(), "message": e.msg})
			return
		}
	}
	util.LogError(err, "Unhandled error on %s", c.FullPath())
	c.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrorCodeInternal, "message": "internal error"})
}

func respondBindError(c *gin.Context, err error) {
	util.LogWarnCtx(c.Request.Context(), "Invalid request body: %v", err)
	c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrorCodeInvalidInput, "message": err.Error()})
}
