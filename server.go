package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"

	ginGzip "github.com/gin-contrib/gzip"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App holds the preloaded dictionary and the state shared by handlers. The
// word list is read-only after startup; each request folds its own
// constraint table, so no filtering state crosses requests.
type App struct {
	Words          []string
	DictionaryPath string
	IsProduction   bool
	RateLimitRPS   int
	RateLimitBurst int
	LimiterMap     map[string]*rate.Limiter
	LimiterMutex   sync.Mutex
	StartTime      time.Time
}

// newApp builds the server state around a loaded dictionary.
func newApp(words []string, dictionaryPath string) *App {
	return &App{
		Words:          words,
		DictionaryPath: dictionaryPath,
		IsProduction:   os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production",
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		LimiterMap:     make(map[string]*rate.Limiter),
		StartTime:      time.Now(),
	}
}

// newRouter wires middleware and routes for the filter service.
func (app *App) newRouter() *gin.Engine {
	router := gin.Default()

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))

	// Every response is computed per request; nothing is cacheable.
	router.Use(cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	}))
	router.Use(requestIDMiddleware())

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.POST(RouteFilter, app.rateLimitMiddleware(), app.filterHandler)
	router.GET(RouteConstraints, app.constraintsHandler)
	router.GET(RouteHealth, app.healthHandler)
	return router
}

// filterHandler folds the posted attempts, filters the shared dictionary
// and returns the constraint dump alongside the surviving candidates.
func (app *App) filterHandler(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempts := make([]Attempt, 0, len(req.Attempts))
	for _, raw := range req.Attempts {
		attempt, err := NewAttempt(raw.Guess, raw.Feedback)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		attempts = append(attempts, attempt)
	}

	cs, candidates, err := SieveWords(attempts, app.Words, SieveOptions{
		MinLength: req.MinLength,
		MaxLength: req.MaxLength,
		Limit:     req.Limit,
		Sort:      req.Sort,
	})
	if err != nil {
		var contradiction *ContradictionError
		if errors.As(err, &contradiction) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, FilterResponse{
		Constraints: cs.Dump(),
		Candidates:  candidates,
		Total:       len(candidates),
	})
}

// constraintsHandler returns only the diagnostic constraint table for
// attempts given as repeated attempt=guess:feedback query parameters.
func (app *App) constraintsHandler(c *gin.Context) {
	var attempts []Attempt
	for _, raw := range c.QueryArray("attempt") {
		guess, feedback, ok := strings.Cut(raw, ":")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "attempt must look like guess:feedback"})
			return
		}
		attempt, err := NewAttempt(guess, feedback)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		attempts = append(attempts, attempt)
	}

	cs := NewConstraintSet(DefaultMinLength, DefaultMaxLength)
	if err := cs.Fold(attempts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"constraints": cs.Dump()})
}

// healthHandler reports service status and dictionary stats.
func (app *App) healthHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"env":          map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"words_loaded": len(app.Words),
		"dictionary":   app.DictionaryPath,
		"uptime":       formatUptime(uptime),
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

// startServer runs the HTTP server with graceful shutdown on SIGINT/SIGTERM.
func (app *App) startServer(router *gin.Engine, port string) {
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
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second))
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
