package handlers

import (
	"net/http"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"

	config "github.com/CodeAndHammer/minigames/internal/config"
	constants "github.com/CodeAndHammer/minigames/internal/constants"
	game "github.com/CodeAndHammer/minigames/internal/game"
	middleware "github.com/CodeAndHammer/minigames/internal/middleware"
	session "github.com/CodeAndHammer/minigames/internal/session"
	util "github.com/CodeAndHammer/minigames/internal/util"
)

// App is everything the handlers share.
type App struct {
	Config    *config.Config
	Content   *game.Content
	Sessions  *session.Manager
	Limiters  *middleware.Limiters
	StartTime time.Time
}

func (app *App) cookieOptions() session.CookieOptions {
	return session.CookieOptions{MaxAge: app.Config.CookieMaxAge, Secure: app.Config.IsProduction}
}

// currentSession resolves the caller's session, issuing a cookie on first contact.
func (app *App) currentSession(c *gin.Context) *session.Session {
	id := session.GetOrCreateSessionID(c, app.cookieOptions())
	return app.Sessions.Get(c.Request.Context(), id)
}

func NewRouter(app *App) *gin.Engine {
	router := gin.Default()

	if err := router.SetTrustedProxies(app.Config.TrustedProxies); err != nil {
		util.LogWarn("Failed to set trusted proxies: %v", err)
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.Tracing())
	router.Use(middleware.SecurityHeaders())

	router.Use(middleware.CSRF(app.Config.IsProduction, int(app.Config.CookieMaxAge.Seconds())))
	router.Use(middleware.ValidateCSRF())

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))
	router.Use(cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	}))

	h := func(fn func(*App, *gin.Context)) gin.HandlerFunc {
		return func(c *gin.Context) { fn(app, c) }
	}
	limit := middleware.RateLimit(app.Limiters)

	router.GET(constants.RouteHealthz, h(HealthzHandler))
	router.GET(constants.RouteGames, h(GamesHandler))
	router.GET(constants.RouteState, h(StateHandler))
	router.GET(constants.RouteGame, h(GameHandler))
	router.GET(constants.RouteStats, h(StatsHandler))
	router.GET(constants.RouteAnalytics, h(AnalyticsHandler))
	router.GET(constants.RouteQuizCategories, h(QuizCategoriesHandler))

	router.POST(constants.RouteNumberStart, limit, h(NumberStartHandler))
	router.POST(constants.RouteNumberGuess, limit, h(NumberGuessHandler))
	router.POST(constants.RouteRpsPlay, limit, h(RpsPlayHandler))
	router.POST(constants.RouteScrambleStart, limit, h(ScrambleStartHandler))
	router.POST(constants.RouteScrambleSubmit, limit, h(ScrambleSubmitHandler))
	router.POST(constants.RouteQuizStart, limit, h(QuizStartHandler))
	router.POST(constants.RouteQuizSubmit, limit, h(QuizSubmitHandler))
	router.POST(constants.RouteTicTacToeMove, limit, h(TicTacToeMoveHandler))
	router.POST(constants.RouteTicTacToeReset, limit, h(TicTacToeResetHandler))
	router.POST(constants.RouteSessionReset, limit, h(SessionResetHandler))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "no such route"})
	})

	return router
}
