package workers

import (
	"context"
	"log/slog"
	"time"
)

// ValueLogCollector is satisfied by *badger.DB.
type ValueLogCollector interface {
	RunValueLogGC(discardRatio float64) error
}

// ValueLogGCWorker periodically reclaims space from the journal value log.
type ValueLogGCWorker struct {
	log          *slog.Logger
	db           ValueLogCollector
	interval     time.Duration
	discardRatio float64
}

func NewValueLogGCWorker(log *slog.Logger, db ValueLogCollector, interval time.Duration) *ValueLogGCWorker {
	return &ValueLogGCWorker{log: log, db: db, interval: interval, discardRatio: 0.5}
}

func (w *ValueLogGCWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rewrites := 0
			// One call rewrites at most one file, keep going until nothing is left.
			for ctx.Err() == nil && w.db.RunValueLogGC(w.discardRatio) == nil {
				rewrites++
			}
			if rewrites > 0 {
				w.log.Debug("Value log garbage collected", "rewrites", rewrites)
			}
		}
	}
}
