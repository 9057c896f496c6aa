package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"

	constants "github.com/CodeAndHammer/minigames/internal/constants"
	game "github.com/CodeAndHammer/minigames/internal/game"
	models "github.com/CodeAndHammer/minigames/internal/models"
	session "github.com/CodeAndHammer/minigames/internal/session"
	telemetry "github.com/CodeAndHammer/minigames/internal/telemetry"
	util "github.com/CodeAndHammer/minigames/internal/util"
)

type guessRequest struct {
	Value *int `json:"value" binding:"required"`
}

type choiceRequest struct {
	Choice string `json:"choice" binding:"required,max=32"`
}

type difficultyRequest struct {
	Difficulty string `json:"difficulty" binding:"required,max=32"`
}

type scrambleGuessRequest struct {
	Guess string `json:"guess" binding:"max=64"`
}

type categoryRequest struct {
	Category string `json:"category" binding:"required,max=128"`
}

type optionRequest struct {
	Option string `json:"option" binding:"required,max=256"`
}

type moveRequest struct {
	Position *int `json:"position" binding:"required"`
}

// respondAction writes the outcome together with the refreshed game state
// and stats summary.
func respondAction(c *gin.Context, sess *session.Session, out game.Outcome) {
	telemetry.Annotate(c.Request.Context(),
		attribute.String("game.kind", out.Game.Slug()),
		attribute.String("game.outcome", string(out.Kind)),
		attribute.Bool("game.recorded", out.Recorded),
	)
	c.JSON(http.StatusOK, gin.H{
		"outcome": out,
		"state":   snapshot(sess, out.Game),
		"stats":   statsSummary(sess),
	})
}

func HealthzHandler(app *App, c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(app.StartTime)

	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"env":             app.Config.EnvName(),
		"words_loaded":    app.Content.WordCount(),
		"quiz_categories": len(app.Content.Categories),
		"quiz_questions":  app.Content.QuestionCount(),
		"active_sessions": app.Sessions.Len(),
		"active_limiters": app.Limiters.Len(),
		"memory_alloc_mb": m.Alloc / 1024 / 1024,
		"memory_sys_mb":   m.Sys / 1024 / 1024,
		"memory_gc_count": m.NumGC,
		"uptime":          util.FormatUptime(uptime),
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}

func GamesHandler(app *App, c *gin.Context) {
	c.JSON(http.StatusOK, buildLabels())
}

func StateHandler(app *App, c *gin.Context) {
	sess := app.currentSession(c)
	c.JSON(http.StatusOK, gin.H{
		"games": allSnapshots(sess),
		"stats": statsSummary(sess),
	})
}

func GameHandler(app *App, c *gin.Context) {
	kind, err := models.ParseGameKind(c.Param("game"))
	if err != nil {
		util.LogWarnCtx(c.Request.Context(), "Unknown game requested: %q", c.Param("game"))
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrorCodeUnknownGame, "message": err.Error()})
		return
	}
	sess := app.currentSession(c)
	c.JSON(http.StatusOK, gin.H{
		"game":  kind,
		"title": kind.Title(),
		"state": snapshot(sess, kind),
	})
}

func StatsHandler(app *App, c *gin.Context) {
	c.JSON(http.StatusOK, statsSummary(app.currentSession(c)))
}

func AnalyticsHandler(app *App, c *gin.Context) {
	c.JSON(http.StatusOK, app.currentSession(c).Analytics())
}

func QuizCategoriesHandler(app *App, c *gin.Context) {
	type category struct {
		Name      string `json:"name"`
		Questions int    `json:"questions"`
	}
	c.JSON(http.StatusOK, gin.H{
		"categories": lo.Map(app.Content.Categories, func(cat game.QuizCategory, _ int) category {
			return category{Name: cat.Name, Questions: len(cat.Questions)}
		}),
	})
}

func NumberStartHandler(app *App, c *gin.Context) {
	sess := app.currentSession(c)
	respondAction(c, sess, sess.StartNumberGuessing(c.Request.Context()))
}

func NumberGuessHandler(app *App, c *gin.Context) {
	var req guessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	sess := app.currentSession(c)
	out, err := sess.Guess(c.Request.Context(), *req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	respondAction(c, sess, out)
}

func RpsPlayHandler(app *App, c *gin.Context) {
	var req choiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	move, err := game.ParseMove(req.Choice)
	if err != nil {
		respondError(c, err)
		return
	}
	sess := app.currentSession(c)
	out, err := sess.PlayRPS(c.Request.Context(), move)
	if err != nil {
		respondError(c, err)
		return
	}
	respondAction(c, sess, out)
}

func ScrambleStartHandler(app *App, c *gin.Context) {
	var req difficultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	difficulty, err := game.ParseDifficulty(req.Difficulty)
	if err != nil {
		respondError(c, err)
		return
	}
	sess := app.currentSession(c)
	out, err := sess.StartScramble(c.Request.Context(), difficulty)
	if err != nil {
		respondError(c, err)
		return
	}
	respondAction(c, sess, out)
}

func ScrambleSubmitHandler(app *App, c *gin.Context) {
	var req scrambleGuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	sess := app.currentSession(c)
	out, err := sess.SubmitScramble(c.Request.Context(), req.Guess)
	if err != nil {
		respondError(c, err)
		return
	}
	respondAction(c, sess, out)
}

func QuizStartHandler(app *App, c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	sess := app.currentSession(c)
	out, err := sess.StartQuiz(c.Request.Context(), req.Category)
	if err != nil {
		respondError(c, err)
		return
	}
	respondAction(c, sess, out)
}

func QuizSubmitHandler(app *App, c *gin.Context) {
	var req optionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	sess := app.currentSession(c)
	out, err := sess.SubmitQuiz(c.Request.Context(), req.Option)
	if err != nil {
		respondError(c, err)
		return
	}
	respondAction(c, sess, out)
}

func TicTacToeMoveHandler(app *App, c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	sess := app.currentSession(c)
	out, err := sess.MoveTicTacToe(c.Request.Context(), *req.Position)
	if err != nil {
		respondError(c, err)
		return
	}
	respondAction(c, sess, out)
}

func TicTacToeResetHandler(app *App, c *gin.Context) {
	sess := app.currentSession(c)
	respondAction(c, sess, sess.ResetTicTacToe(c.Request.Context()))
}

// SessionResetHandler drops all games and statistics and issues a new cookie.
func SessionResetHandler(app *App, c *gin.Context) {
	opts := app.cookieOptions()
	if oldID, err := c.Cookie(constants.SessionCookieName); err == nil {
		app.Sessions.Delete(oldID)
	}
	session.ClearSessionCookie(c, opts)
	newID := session.NewSessionID(c, opts)
	util.LogInfoCtx(c.Request.Context(), "Reset session, new id: %s", newID)

	sess := app.Sessions.Get(c.Request.Context(), newID)
	c.JSON(http.StatusOK, gin.H{
		"games": allSnapshots(sess),
		"stats": statsSummary(sess),
	})
}
