package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/cache"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/config"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/data"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/dateformat"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/db"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/events"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/handler"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/logging"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/middleware"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/service"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/worker"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		panic(err)
	}

	zapLogger, err := logging.NewZap(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	logger := logging.New(zapLogger)
	defer logger.Sync()

	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "cannot connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	formatter, err := dateformat.New(cfg.DateLayout, cfg.DateTimezone)
	if err != nil {
		logger.Fatal(ctx, "cannot create date formatter", zap.Error(err))
	}

	repo := data.NewQuestionRepository(pool)

	var viewCache service.ViewCache
	if cfg.CacheEnabled() {
		redisConn := redis.NewClient(&redis.Options{
			Addr: cfg.RedisURL,
		})
		defer redisConn.Close()
		viewCache = cache.NewRedisCache(redisConn, cfg.CacheAnsweredTTL)
	} else {
		logger.Info(ctx, "view cache disabled")
	}

	var publisher service.EventPublisher
	if cfg.EventsEnabled() {
		kafkaPublisher := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher

		reminders := worker.NewReminderWorker(repo, kafkaPublisher, logger, cfg.ReminderInterval, cfg.ReminderAge)
		go reminders.Start(ctx)
	} else {
		logger.Info(ctx, "event publishing disabled")
	}

	questionService := service.NewQuestionService(repo, formatter, publisher, viewCache)
	questionHandler := handler.NewQuestionHandler(questionService)

	if !cfg.AuthEnabled() {
		logger.Warn(ctx, "JWT_SECRET is empty, authentication disabled")
	}
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
	answerGuard := middleware.RequireRole(middleware.RoleStaff, middleware.RoleAdmin)

	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, 1<<20)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/questions", func(r chi.Router) {
		questionHandler.RegisterRoutes(r, authMiddleware, answerGuard)
	})

	port := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info(ctx, "Starting server", zap.String("port", port))

	srv := &http.Server{
		Addr:              port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "cannot start http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal(ctx, "server forced to shutdown", zap.Error(err))
	}
	logger.Info(ctx, "Server stopped")
}
