package workers

import (
	"chat-relay/observability"
	"context"
	"log/slog"
	"time"
)

// ReporterWorker logs a stats snapshot at a fixed interval.
type ReporterWorker struct {
	log      *slog.Logger
	monitor  *observability.Monitor
	interval time.Duration
}

func NewReporterWorker(log *slog.Logger, monitor *observability.Monitor, interval time.Duration) *ReporterWorker {
	return &ReporterWorker{log: log, monitor: monitor, interval: interval}
}

func (w *ReporterWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			stats := w.monitor.Snapshot()
			w.log.Info("Relay stats",
				"uptime", stats.Uptime,
				"live_connections", stats.LiveConnections,
				"events", stats.EventsPublished,
				"delivered", stats.DeliveriesSucceeded,
				"failed", stats.DeliveriesFailed,
				"alloc_mb", stats.AllocMemMb,
				"goroutines", stats.NumGoroutine)
		}
	}
}
