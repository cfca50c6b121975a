package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"quotation-engine/internal/assistant"
	"quotation-engine/internal/catalog"
	"quotation-engine/internal/common/config"
	"quotation-engine/internal/common/logger"
	"quotation-engine/internal/genai"
	"quotation-engine/internal/notify"
	"quotation-engine/internal/store"
	transport "quotation-engine/internal/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootstrap := logger.New("info", "console")
		bootstrap.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting quotation service",
		zap.String("name", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Catalog ---
	items, err := catalog.Load(cfg.Catalog.Path, log)
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}

	// --- Conversation store ---
	var convStore store.Store
	switch cfg.Store.Backend {
	case "redis":
		redisStore, err := store.NewRedisStore(ctx, cfg.Store.Redis, cfg.Conversation.IdleTTL)
		if err != nil {
			zapLog.Fatal("redis store init failed", zap.Error(err))
		}
		defer redisStore.Close()
		convStore = redisStore
		zapLog.Info("redis conversation store connected", zap.String("address", cfg.Store.Redis.Address))
	default:
		convStore = store.NewMemoryStore()
	}

	// --- GenAI collaborator ---
	gen := genai.NewClient(cfg.GenAI, log)
	zapLog.Info("generation client configured", zap.Bool("enabled", cfg.GenAI.Enabled()))

	// --- Quotation notifications ---
	var mailer notify.Mailer
	if cfg.Notifications.Email.Enabled {
		sesMailer, err := notify.NewSESMailer(ctx, cfg.Notifications, log)
		if err != nil {
			zapLog.Fatal("ses mailer init failed", zap.Error(err))
		}
		mailer = sesMailer
	}

	svc := assistant.NewService(convStore, items, gen, mailer, cfg, log)

	// --- Eviction sweep ---
	sweeper := store.NewSweeper(convStore, cfg.Conversation.IdleTTL, cfg.Conversation.SweepInterval, log)
	go sweeper.Run(ctx)

	// --- HTTP server ---
	e := transport.NewServer(svc, log)
	go func() {
		if err := e.Start(cfg.Server.Address()); err != nil {
			zapLog.Warn("http server stopped", zap.Error(err))
		}
	}()
	zapLog.Info("http server listening", zap.String("address", cfg.Server.Address()))

	<-ctx.Done()
	zapLog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("http shutdown failed", zap.Error(err))
	}
}
