package workers

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"context"
	"log/slog"
)

// JournalWorker drains partial delivery reports into the delivery journal.
// Writing happens off the fanout path so a slow disk never delays delivery.
type JournalWorker struct {
	log     *slog.Logger
	journal contract.IDeliveryJournal
	reports <-chan domain.DeliveryReport
}

func NewJournalWorker(log *slog.Logger, journal contract.IDeliveryJournal,
	reports <-chan domain.DeliveryReport) *JournalWorker {
	return &JournalWorker{log: log, journal: journal, reports: reports}
}

func (w *JournalWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			w.log.Debug("Context done, journal worker stopped")
			return nil
		case report, ok := <-w.reports:
			if !ok {
				return nil
			}
			w.record(report)
		}
	}
}

// drain writes whatever is still buffered without waiting for more.
func (w *JournalWorker) drain() {
	for {
		select {
		case report, ok := <-w.reports:
			if !ok {
				return
			}
			w.record(report)
		default:
			return
		}
	}
}

func (w *JournalWorker) record(report domain.DeliveryReport) {
	if err := w.journal.Record(report); err != nil {
		w.log.Error("Unable to journal delivery failures",
			"event_id", report.Event.ID,
			"failures", len(report.Failures),
			"error", err)
	}
}
