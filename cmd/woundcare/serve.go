package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/woundcare-api/internal/config"
	"github.com/jwalitptl/woundcare-api/internal/handler"
	deviceHandler "github.com/jwalitptl/woundcare-api/internal/handler/device"
	woundHandler "github.com/jwalitptl/woundcare-api/internal/handler/wound"
	"github.com/jwalitptl/woundcare-api/internal/llm"
	"github.com/jwalitptl/woundcare-api/internal/middleware"
	"github.com/jwalitptl/woundcare-api/internal/repository"
	"github.com/jwalitptl/woundcare-api/internal/repository/memory"
	redisRepo "github.com/jwalitptl/woundcare-api/internal/repository/redis"
	"github.com/jwalitptl/woundcare-api/internal/router"
	deviceService "github.com/jwalitptl/woundcare-api/internal/service/device"
	noteService "github.com/jwalitptl/woundcare-api/internal/service/note"
	sessionService "github.com/jwalitptl/woundcare-api/internal/service/session"
	woundService "github.com/jwalitptl/woundcare-api/internal/service/wound"
	"github.com/jwalitptl/woundcare-api/pkg/auth"
	"github.com/jwalitptl/woundcare-api/pkg/logger"
	"github.com/jwalitptl/woundcare-api/pkg/metrics"
	"github.com/jwalitptl/woundcare-api/pkg/security"
	"github.com/jwalitptl/woundcare-api/pkg/validator"
)

func serveCmd() *cobra.Command {
	var configDir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			var paths []string
			if configDir != "" {
				paths = append(paths, configDir)
			}
			cfg, err := config.LoadConfig(paths...)
			if err != nil {
				return err
			}
			return runServer(cfg)
		},
	}
	cmd.Flags().StringVarP(&configDir, "config", "c", "", "Directory containing config.yaml")
	return cmd
}

func runServer(cfg *config.Config) error {
	appLogger := logger.NewLogger(&logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	appLogger.SetGlobal()
	zl := appLogger.Zerolog()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(registry, cfg.Metrics.Namespace, "")

	ctx := context.Background()

	// Initialize session store
	var store repository.SessionRepository
	switch cfg.Session.Store {
	case config.StoreRedis:
		redisConfig := redisRepo.Config{
			URL:          cfg.Redis.URL,
			MaxRetries:   cfg.Redis.MaxRetries,
			RetryBackoff: cfg.Redis.RetryBackoff,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			TTL:          cfg.Session.TTL,
		}
		if cfg.Session.EncryptAtRest {
			enc, err := security.NewEncryptorFromSecret(cfg.Session.Secret, "woundcare-session-store")
			if err != nil {
				return fmt.Errorf("failed to derive session key: %w", err)
			}
			redisConfig.Encryptor = enc
		}
		rs, err := redisRepo.NewSessionRepository(ctx, redisConfig, m, zl)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		store = rs
	default:
		store = memory.NewSessionRepository(cfg.Session.TTL, 10*time.Minute)
	}

	// Initialize note generator
	generator, err := llm.NewClient(ctx, llm.Config{
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		BaseURL: cfg.LLM.BaseURL,
		Timeout: cfg.LLM.Timeout,
	}, zl)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	// Initialize services
	sessions := sessionService.NewService(store, m, zl)
	woundSvc := woundService.NewService(sessions, m)
	deviceSvc := deviceService.NewService(sessions, m)
	noteSvc := noteService.NewService(sessions, generator, validator.New(), noteService.Config{
		InFlightTTL: cfg.Notes.InFlightTTL,
	}, m, zl)

	// Initialize handlers
	h := handler.NewHandler(sessions, registry)
	woundH := woundHandler.NewHandler(woundSvc, noteSvc)
	deviceH := deviceHandler.NewHandler(deviceSvc, noteSvc)

	jwtSvc := auth.NewJWTService(cfg.Session.Secret, cfg.Session.Issuer, cfg.Session.TTL)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	sizeLimit := middleware.DefaultSizeLimitConfig()
	if cfg.Server.MaxBodyBytes > 0 {
		sizeLimit.MaxBodySize = cfg.Server.MaxBodyBytes
	}

	routerConfig := router.RouterConfig{
		Mode:       cfg.Server.Mode,
		CORSConfig: corsConfig,
		Security:   middleware.DefaultSecurityConfig(),
		SizeLimit:  sizeLimit,
		Session: middleware.SessionConfig{
			CookieName: cfg.Session.CookieName,
			MaxAge:     int(cfg.Session.TTL.Seconds()),
			Secure:     cfg.Session.CookieSecure,
		},
		MetricsPrefix: cfg.Metrics.Namespace + "_http",
		Registerer:    registry,
	}
	if cfg.RateLimit.Enabled {
		routerConfig.RateLimit = rate.Limit(cfg.RateLimit.RequestsPerSecond)
		routerConfig.RateBurst = cfg.RateLimit.Burst
	}
	if routerConfig.Mode == "" {
		routerConfig.Mode = gin.ReleaseMode
	}

	r := router.NewRouter(h, woundH, deviceH, jwtSvc, routerConfig)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Str("store", cfg.Session.Store).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited properly")
	return nil
}
