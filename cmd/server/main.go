package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/jobfill-api/internal/catalog"
	"github.com/yourusername/jobfill-api/internal/config"
	"github.com/yourusername/jobfill-api/internal/handler"
	"github.com/yourusername/jobfill-api/internal/matcher"
	"github.com/yourusername/jobfill-api/internal/middleware"
	"github.com/yourusername/jobfill-api/internal/repository"
	"github.com/yourusername/jobfill-api/internal/service"
)

func main() {
	// ── Logging ──────────────────────────────────────────
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// ── Config ───────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("Starting JobFill API")

	// The keyword table and the question catalog are maintained
	// separately; refuse to start if they drift apart.
	if err := catalog.Validate(matcher.TableKeys()); err != nil {
		log.Fatal().Err(err).Msg("Keyword table / question catalog mismatch")
	}

	// ── Database ─────────────────────────────────────────
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Database connected")

	// ── Repositories & services ──────────────────────────
	answerRepo := repository.NewAnswerRepo(pool)
	groq := service.NewGroqClient(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel)
	autofillService := service.NewAutofillService(answerRepo, groq)

	// ── Handlers ─────────────────────────────────────────
	profileHandler := handler.NewProfileHandler(answerRepo)
	autofillHandler := handler.NewAutofillHandler(autofillService)
	resumeHandler := handler.NewResumeHandler(groq, answerRepo)

	// ── Middleware ────────────────────────────────────────
	authMiddleware, err := middleware.NewAuthMiddleware(cfg.FirebaseProjectID, cfg.IsDevelopment())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Firebase auth")
	}
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS)

	// ── Router ───────────────────────────────────────────
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check (unauthenticated)
	r.GET("/health", func(c *gin.Context) {
		status := "healthy"
		connection := "ok"
		code := http.StatusOK
		if err := pool.Ping(c.Request.Context()); err != nil {
			status = "degraded"
			connection = "failed"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":     status,
			"service":    "jobfill-api",
			"connection": connection,
			"time":       time.Now().UTC(),
		})
	})

	// Question catalog (unauthenticated, static data for onboarding)
	r.GET("/questions", handler.GetQuestions)
	r.GET("/questions/:category", handler.GetQuestionsForCategory)

	// ── Authenticated Routes ─────────────────────────────
	api := r.Group("/", authMiddleware.Authenticate(), rateLimiter.Limit())
	{
		// Profile / answers
		api.GET("/profile", profileHandler.GetProfile)
		api.DELETE("/profile", profileHandler.DeleteProfile)
		api.POST("/profile/answers", profileHandler.SaveAnswer)
		api.POST("/profile/answers/bulk", profileHandler.SaveAnswers)

		// Autofill
		api.POST("/autofill", autofillHandler.Autofill)

		// Resume onboarding shortcut
		api.POST("/resume/extract", resumeHandler.Extract)
	}

	// ── Server ───────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("JobFill API server running")

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// requestLogger logs every request with zerolog
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= 400 {
			event = log.Warn()
		}
		if status >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", latency).
			Str("ip", c.ClientIP()).
			Msg(fmt.Sprintf("%s %s", c.Request.Method, path))
	}
}
