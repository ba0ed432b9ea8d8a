package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/haseebk/dev-net/internal/config"
	"github.com/haseebk/dev-net/internal/github"
	api "github.com/haseebk/dev-net/internal/http"
	"github.com/haseebk/dev-net/internal/log"
	"github.com/haseebk/dev-net/internal/metrics"
	"github.com/haseebk/dev-net/internal/queue"
	"github.com/haseebk/dev-net/internal/repo"
	"github.com/haseebk/dev-net/internal/service"
)

func main() {
	cfg := config.Load()

	logger, err := log.Init(cfg.Env == "prod")
	if err != nil {
		stdlog.Fatalf("log init: %v", err)
	}
	defer logger.Sync()

	metrics.MustRegister()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := repo.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal("mongo connect", zap.Error(err))
	}
	defer store.Close(context.Background())

	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Fatal("ensure indexes", zap.Error(err))
	}

	rds := repo.NewRedis(cfg.RedisAddr)
	if err := rds.Ping(ctx); err != nil {
		logger.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		rds = nil
	} else {
		defer rds.Close()
	}

	pub := queue.NewNoop()
	if cfg.RabbitURL != "" {
		p, err := queue.NewRabbit(cfg.RabbitURL, queue.Exchange)
		if err != nil {
			logger.Warn("rabbit unavailable, events disabled", zap.Error(err))
		} else {
			pub = p
		}
	}
	defer pub.Close()

	accessTTL := time.Duration(cfg.AccessTTLMin) * time.Minute
	auth := service.NewAuthService(store, pub, cfg.JWTSecret, accessTTL, logger)
	profiles := service.NewProfileService(store, store, store, pub, logger)
	gh := github.NewClient(cfg.GithubToken)

	h := api.NewHandler(auth, profiles, gh, store, cfg.JWTSecret, rds, cfg.RateLimitPerMin)
	r := api.NewRouter(h)

	srvErr := make(chan error, 1)
	go func() { srvErr <- r.Run(":" + cfg.Port) }()

	logger.Info("dev-net listening", zap.String("port", cfg.Port))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		logger.Info("shutting down", zap.String("signal", s.String()))
	case err := <-srvErr:
		logger.Error("server error", zap.Error(err))
	}
}
