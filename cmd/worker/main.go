package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/regtechlab/adgm-corporate-agent/internal/bootstrap"
	"github.com/regtechlab/adgm-corporate-agent/internal/config"
	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
	"github.com/regtechlab/adgm-corporate-agent/internal/observability/logging"
	"github.com/regtechlab/adgm-corporate-agent/internal/observability/metrics"
)

const service = "worker"

func main() {
	cfg := config.Load()
	logger := logging.NewJSONLogger(service, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		slog.Error("bootstrap_failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	workerMetrics := metrics.NewWorkerMetrics(service)
	metricsServer := &http.Server{
		Addr:    ":" + cfg.WorkerMetricsPort,
		Handler: workerMetrics.Handler(),
	}
	go func() {
		slog.Info("worker_metrics_listening", "port", cfg.WorkerMetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("worker_metrics_error", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	slog.Info("worker_subscribed", "subject", cfg.NATSSubject)
	err = app.Queue.SubscribeDocumentIngested(ctx, func(handlerCtx context.Context, documentID string) error {
		processCtx, cancel := context.WithTimeout(handlerCtx, 5*time.Minute)
		defer cancel()

		if doc, lookupErr := app.Repo.GetByID(processCtx, documentID); lookupErr == nil {
			workerMetrics.ObserveQueueLag(service, time.Since(doc.CreatedAt))
		}

		workerMetrics.StartDocument()
		start := time.Now()
		processErr := app.ProcessUC.ProcessByID(processCtx, documentID)
		workerMetrics.FinishDocument(service, time.Since(start), processErr)

		if processErr == nil {
			if doc, lookupErr := app.Repo.GetByID(processCtx, documentID); lookupErr == nil {
				workerMetrics.RecordClassification(service, string(doc.DocumentType))
			}
			if validation, lookupErr := app.Validations.GetByDocument(processCtx, documentID); lookupErr == nil {
				high, medium := 0, 0
				for _, flag := range validation.RedFlags {
					switch flag.Severity {
					case domain.SeverityHigh:
						high++
					case domain.SeverityMedium:
						medium++
					}
				}
				workerMetrics.RecordRedFlags(service, high, medium)
			}
		}
		return processErr
	})
	if err != nil {
		slog.Error("worker_subscribe_error", "error", err)
		os.Exit(1)
	}
}
