package observability

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonitor_RecordReport(t *testing.T) {
	req := require.New(t)
	monitor := NewMonitor(slog.Default(), func() int { return 7 })

	// Given one full and one partial delivery
	monitor.RecordReport(domain.DeliveryReport{Attempted: 3, Delivered: 3})
	monitor.RecordReport(domain.DeliveryReport{
		Attempted: 2, Delivered: 1,
		Failures: []domain.DeliveryFailure{{ConnectionID: "c", Err: errors.ErrConnectionClosed}},
	})
	monitor.ConnectionAttached()
	monitor.ConnectionAttached()
	monitor.ConnectionDetached()

	// When taking a snapshot
	stats := monitor.Snapshot()

	// Then counters add up
	req.Equal(uint64(2), stats.EventsPublished)
	req.Equal(uint64(5), stats.DeliveriesAttempted)
	req.Equal(uint64(4), stats.DeliveriesSucceeded)
	req.Equal(uint64(1), stats.DeliveriesFailed)
	req.Equal(uint64(1), stats.PartialEvents)
	req.Equal(uint64(2), stats.ConnectionsAttached)
	req.Equal(uint64(1), stats.ConnectionsDetached)
	req.Equal(7, stats.LiveConnections)
	req.Positive(stats.NumGoroutine)
}

func TestMonitor_Nil_Is_Noop(t *testing.T) {
	var monitor *Monitor
	require.NotPanics(t, func() {
		monitor.ConnectionAttached()
		monitor.ConnectionDetached()
		monitor.RecordReport(domain.DeliveryReport{Attempted: 1})
	})
}
