package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/syntax922/immich-search/internal/config"
	"github.com/syntax922/immich-search/internal/db"
	dbRedis "github.com/syntax922/immich-search/internal/db/redis"
	"github.com/syntax922/immich-search/internal/detect"
	"github.com/syntax922/immich-search/internal/gazetteer"
	logpkg "github.com/syntax922/immich-search/internal/logger"
	"github.com/syntax922/immich-search/internal/metrics"
	"github.com/syntax922/immich-search/internal/recognizer"
	"github.com/syntax922/immich-search/internal/repository/spancache"
	chiTransport "github.com/syntax922/immich-search/internal/transport/chi"
	openaiRec "github.com/syntax922/immich-search/internal/transport/openai"
	healthuc "github.com/syntax922/immich-search/internal/usecase/health"
	"github.com/syntax922/immich-search/internal/usecase/interpret"
	payloaduc "github.com/syntax922/immich-search/internal/usecase/payload"
	"github.com/syntax922/immich-search/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting immich-search API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("recognizer", cfg.Recognizer.Provider),
		zap.Bool("span_cache", cfg.Cache.Enabled),
	)

	// Optional span cache store
	ctx := context.Background()
	var store db.Store
	if cfg.Cache.Enabled {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		readiness := time.Duration(cfg.Cache.ReadinessTimeoutSec) * time.Second
		if err := store.WaitForReady(ctx, readiness); err != nil {
			logger.Fatal("Cache store not ready", zap.Error(err))
		}
		logger.Info("Connected to cache store")
	}

	// Register pipeline metrics explicitly (no init())
	metrics.RegisterPipelineMetrics()

	// Static reference tables, loaded once and shared read-only
	gaz := gazetteer.New()
	detector := detect.New()

	// Recognizer chain — composition root
	rec, recChecker := buildRecognizer(cfg, gaz, store, logger)

	interpretSvc := interpret.New(rec, gaz, detector)
	payloadSvc := payloaduc.New(payloaduc.Config{
		Scheme:   cfg.Immich.Scheme,
		Host:     cfg.Immich.Host,
		Port:     cfg.Immich.Port,
		BasePath: cfg.Immich.BasePath,
	})

	var cachePinger healthuc.CachePinger
	if store != nil {
		cachePinger = store
	}
	healthSvc := healthuc.New(recChecker, cachePinger)

	server := chiTransport.NewServer(interpretSvc, payloadSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildRecognizer assembles the recognizer chain: provider -> cache. The
// second return value is the health checker, nil for the lexical provider
// (nothing external to check).
func buildRecognizer(
	cfg config.Config,
	gaz *gazetteer.Gazetteer,
	store db.Store,
	logger *zap.Logger,
) (interpret.Recognizer, healthuc.RecognizerChecker) {
	var rec interpret.Recognizer
	var checker healthuc.RecognizerChecker

	switch cfg.Recognizer.Provider {
	case config.ProviderOpenAI:
		base := openaiRec.NewRecognizer(&openaiRec.Config{
			APIKey:   cfg.Recognizer.OpenAI.APIKey,
			BaseURL:  cfg.Recognizer.OpenAI.BaseURL,
			Model:    cfg.Recognizer.OpenAI.Model,
			Provider: cfg.Recognizer.Provider,
			Logger:   logger,
		})
		rec = base
		checker = base
	default:
		rec = recognizer.NewLexical(gaz)
	}

	if store != nil {
		ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour
		rec = spancache.New(rec, store, ttl, logger)
	}

	return rec, checker
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
