package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/config"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/appointment"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/artist"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/auth"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/portfolio"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/studio"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/style"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/user"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/middleware"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/database"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/imaging"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/jwt"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/response"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redisClient, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redisClient)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)

	store, err := newStorage(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up storage backend")
	}
	processor := imaging.NewProcessor(imaging.DefaultConfig())

	// Repositories
	userRepo := user.NewRepository(db)
	styleRepo := style.NewRepository(db)
	studioRepo := studio.NewRepository(db)
	artistRepo := artist.NewRepository(db)
	portfolioRepo := portfolio.NewRepository(db)
	appointmentRepo := appointment.NewRepository(db)

	// Services
	authService := auth.NewService(userRepo, jwtService, redisClient)
	userService := user.NewService(userRepo)
	styleService := style.NewService(styleRepo)
	studioService := studio.NewService(studioRepo)
	artistService := artist.NewService(artistRepo, styleRepo)
	portfolioService := portfolio.NewService(portfolioRepo, artistRepo, store, processor)
	appointmentService := appointment.NewService(appointmentRepo, artistRepo, userRepo)

	// Handlers
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	styleHandler := style.NewHandler(styleService)
	studioHandler := studio.NewHandler(studioService)
	artistHandler := artist.NewHandler(artistService)
	portfolioHandler := portfolio.NewHandler(portfolioService)
	appointmentHandler := appointment.NewHandler(appointmentService)

	authMiddleware := middleware.Auth(jwtService)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.OK(w, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes(authMiddleware))
		r.Mount("/users", userHandler.Routes(authMiddleware))
		r.Mount("/styles", styleHandler.Routes(authMiddleware))
		r.Mount("/studios", studioHandler.Routes(authMiddleware))
		r.Mount("/artists", artistHandler.Routes(authMiddleware))
		r.Mount("/portfolio", portfolioHandler.Routes(authMiddleware))
		r.Mount("/appointments", appointmentHandler.Routes(authMiddleware))
		r.Mount("/me", appointmentHandler.MeRoutes(authMiddleware))
	})

	// Serve locally stored uploads in development
	if cfg.StorageBackend != "s3" {
		fileServer := http.StripPrefix("/files/", http.FileServer(http.Dir(cfg.LocalUploadDir)))
		r.Get("/files/*", fileServer.ServeHTTP)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server stopped")
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
}

func newStorage(cfg *config.Config) (storage.Storage, error) {
	storageCfg := storage.Config{
		S3Endpoint:  cfg.S3Endpoint,
		S3Region:    cfg.S3Region,
		S3AccessKey: cfg.S3AccessKey,
		S3SecretKey: cfg.S3SecretKey,
		S3Bucket:    cfg.S3Bucket,
		LocalDir:    cfg.LocalUploadDir,
		PublicURL:   cfg.PublicFileURL,
	}

	if cfg.StorageBackend == "s3" {
		return storage.NewS3Storage(storageCfg)
	}
	return storage.NewLocalStorage(storageCfg)
}
