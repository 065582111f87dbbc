package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/config"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/logger"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/observability"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/notify"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/pipeline"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/server"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/session"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting rafiki server...",
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init session store with retry ---
	store := session.NewStore(cfg.Session, log)
	err = retryWithBackoff(func() error {
		return store.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		// Sessions are optional context; analysis still works without them.
		zapLog.Warn("redis unavailable, continuing without warm session store", zap.Error(err))
	} else {
		zapLog.Info("Redis connected successfully")
	}
	defer store.Close()

	channels := notify.Channels{SMS: notify.NoopNotifier{}, Email: notify.NoopNotifier{}}
	if cfg.Notifications.SMS.Enabled {
		smsNotifier, err := notify.NewSMSNotifier(ctx, cfg.Notifications, log)
		if err != nil {
			zapLog.Warn("sms notifier init failed, sms confirmations disabled", zap.Error(err))
		} else {
			channels.SMS = smsNotifier
		}
	}
	if cfg.Notifications.Email.Enabled {
		emailNotifier, err := notify.NewEmailNotifier(ctx, cfg.Notifications, log)
		if err != nil {
			zapLog.Warn("email notifier init failed, email confirmations disabled", zap.Error(err))
		} else {
			channels.Email = emailNotifier
		}
	}

	analyzer := pipeline.NewAnalyzer(log)

	srv := server.New(analyzer, store, channels, obs, log)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      srv.Router(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}

	zapLog.Info("Server stopped")
}
