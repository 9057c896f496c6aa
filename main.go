package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	data "github.com/CodeAndHammer/minigames/data"
	config "github.com/CodeAndHammer/minigames/internal/config"
	game "github.com/CodeAndHammer/minigames/internal/game"
	handlers "github.com/CodeAndHammer/minigames/internal/handlers"
	middleware "github.com/CodeAndHammer/minigames/internal/middleware"
	random "github.com/CodeAndHammer/minigames/internal/random"
	session "github.com/CodeAndHammer/minigames/internal/session"
	telemetry "github.com/CodeAndHammer/minigames/internal/telemetry"
	util "github.com/CodeAndHammer/minigames/internal/util"
)

func main() {
	cfg := config.Load()
	util.SetupLogging(cfg.LogLevel, cfg.IsProduction)
	util.LogInfo("Starting minigames in %s mode", cfg.EnvName())
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.TracingEnabled {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			util.LogWarn("Tracing disabled: %v", err)
		} else {
			util.LogInfo("Tracing enabled")
			defer func() {
				sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer scancel()
				if err := shutdown(sctx); err != nil {
					util.LogWarn("Tracer shutdown: %v", err)
				}
			}()
		}
	}

	content, err := game.LoadContentFiles(cfg.WordsFile, cfg.QuizFile, data.Words, data.Quiz)
	if err != nil {
		util.LogFatal("Failed to load game content: %v", err)
	}
	util.LogInfo("Loaded %d words and %d quiz questions in %d categories",
		content.WordCount(), content.QuestionCount(), len(content.Categories))

	engines := game.NewEngines(random.NewCrypto(), content, time.Now)

	app := &handlers.App{
		Config:    cfg,
		Content:   content,
		Sessions:  session.NewManager(engines, cfg.SessionTTL, time.Now),
		Limiters:  middleware.NewLimiters(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.RateLimiterTTL),
		StartTime: time.Now(),
	}

	app.Sessions.StartCleanup(ctx, cfg.SessionCleanupInterval)
	app.Limiters.StartCleanup(ctx, 30*time.Minute)
	util.LogInfo("Started cleanup routines for sessions and rate limiters")

	startServer(cfg.Port, handlers.NewRouter(app))
}

func startServer(port string, router *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		util.LogInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			util.LogWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	util.LogInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		util.LogFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	util.LogInfo("Server shutdown complete")
}
