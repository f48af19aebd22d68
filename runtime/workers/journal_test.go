package workers

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/mocks"
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func partialReport() domain.DeliveryReport {
	return domain.DeliveryReport{
		Event:     domain.NewEvent(domain.MessageAdded, domain.GroupScope("g"), nil),
		Attempted: 2,
		Delivered: 1,
		Failures:  []domain.DeliveryFailure{{ConnectionID: "c", Err: errors.ErrConnectionClosed}},
	}
}

func TestJournalWorker_Records_Reports(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	mockJournal := mocks.NewMockIDeliveryJournal(ctrl)
	reports := make(chan domain.DeliveryReport, 4)
	worker := NewJournalWorker(log, mockJournal, reports)

	done := make(chan struct{})
	report := partialReport()
	// Given the journal fails once then accepts
	gomock.InOrder(
		mockJournal.EXPECT().Record(report).Return(fmt.Errorf("disk full")),
		mockJournal.EXPECT().Record(report).DoAndReturn(func(...domain.DeliveryReport) error {
			close(done)
			return nil
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error)
	go func() { stopped <- worker.Run(ctx) }()

	// When two reports arrive
	reports <- report
	reports <- report

	// Then both are handed to the journal and an error does not stop the worker
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("journal was not called twice")
	}
	cancel()
	req.NoError(<-stopped)
}

func TestJournalWorker_Drains_On_Shutdown(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	mockJournal := mocks.NewMockIDeliveryJournal(ctrl)
	reports := make(chan domain.DeliveryReport, 3)
	worker := NewJournalWorker(log, mockJournal, reports)

	// Given three reports buffered and a cancelled context
	for i := 0; i < 3; i++ {
		reports <- partialReport()
	}
	var recorded atomic.Int32
	mockJournal.EXPECT().Record(gomock.Any()).DoAndReturn(func(...domain.DeliveryReport) error {
		recorded.Add(1)
		return nil
	}).MinTimes(1).MaxTimes(3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// When the worker runs
	req.NoError(worker.Run(ctx))

	// Then nothing is left behind
	req.Equal(int32(3), recorded.Load())
	req.Empty(reports)
}

type countingCollector struct {
	calls atomic.Int32
}

func (c *countingCollector) RunValueLogGC(float64) error {
	// Every other call reports nothing left to rewrite
	if c.calls.Add(1)%2 == 1 {
		return nil
	}
	return fmt.Errorf("nothing to rewrite")
}

func TestValueLogGCWorker_Runs_Until_Nothing_To_Rewrite(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	collector := &countingCollector{}
	worker := NewValueLogGCWorker(log, collector, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()

	req.NoError(worker.Run(ctx))
	req.GreaterOrEqual(collector.calls.Load(), int32(2))
}
