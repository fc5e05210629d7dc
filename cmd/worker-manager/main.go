package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"placement-workers/internal/common/camunda"
	"placement-workers/internal/common/config"
	"placement-workers/internal/common/logger"
	"placement-workers/internal/common/observability"
	"placement-workers/internal/reminders"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
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

func adapt(l *zap.Logger) logger.Logger { return logger.NewZapAdapter(l) }

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("info", "console")
		boot.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := adapt(zapLog)

	zapLog.Info("starting worker manager",
		zap.String("app", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
		zap.String("envFile", cfg.EnvFile),
	)

	obs, err := observability.New(observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		JaegerEndpoint: cfg.Observability.JaegerEndpoint,
	})
	if err != nil {
		zapLog.Fatal("observability init failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Backends ---
	b, err := connectBackends(ctx, cfg, zapLog)
	if err != nil {
		zapLog.Fatal("backend initialization failed", zap.Error(err))
	}
	defer b.Close()

	// --- Zeebe ---
	var zeebe *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebe, err = camunda.NewClient(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: cfg.Camunda.Plaintext,
			ConnectionTimeout:      config.GetDuration(cfg.Camunda.RequestTimeout),
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected", zap.String("gateway", cfg.Camunda.BrokerAddress))

	workers := registerWorkers(zeebe.Zeebe(), cfg, b, log, zapLog)

	// --- Reminders ---
	var scheduler *reminders.Scheduler
	if cfg.Reminders.Enabled {
		scheduler = reminders.NewScheduler(reminders.Config{
			Schedule:   cfg.Reminders.Schedule,
			WindowDays: cfg.Reminders.WindowDays,
			TopicARN:   cfg.Reminders.TopicARN,
		}, b.catalog, b.notifier, log)
		if err := scheduler.Start(); err != nil {
			zapLog.Fatal("reminder scheduler failed", zap.Error(err))
		}
	}

	// --- Health & Metrics Server ---
	srv := &http.Server{
		Addr:              cfg.Observability.MetricsAddress,
		Handler:           healthMux(b, zeebe),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		zapLog.Info("health/metrics server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("health/metrics server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	// --- Graceful Shutdown ---
	zapLog.Info("shutdown signal received, stopping workers")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	for _, w := range workers {
		w.Stop()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("error stopping health server", zap.Error(err))
	}
	if err := zeebe.Close(); err != nil {
		zapLog.Error("error closing Zeebe client", zap.Error(err))
	}
	if err := obs.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("error flushing telemetry", zap.Error(err))
	}

	zapLog.Info("worker manager stopped")
}

func healthMux(b *backends, zeebe *camunda.Client) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, "healthy", nil)
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := b.ping(ctx); err != nil {
			writeStatus(w, http.StatusServiceUnavailable, "not ready", err)
			return
		}
		if err := zeebe.HealthCheck(ctx); err != nil {
			writeStatus(w, http.StatusServiceUnavailable, "not ready", err)
			return
		}
		writeStatus(w, http.StatusOK, "ready", nil)
	})
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func writeStatus(w http.ResponseWriter, code int, status string, err error) {
	body := map[string]string{
		"status": status,
		"time":   time.Now().Format(time.RFC3339),
	}
	if err != nil {
		body["error"] = err.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
