package repositories

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func failedReport(group domain.GroupID, ids ...domain.ConnectionID) domain.DeliveryReport {
	report := domain.DeliveryReport{
		Event:     domain.NewEvent(domain.MessageAdded, domain.GroupScope(group), json.RawMessage(`{}`)),
		Attempted: len(ids) + 1,
		Delivered: 1,
	}
	for _, id := range ids {
		report.Failures = append(report.Failures, domain.DeliveryFailure{ConnectionID: id, Err: errors.ErrConnectionClosed})
	}
	return report
}

func Test_Record_Multiple_Failures(t *testing.T) {
	req := require.New(t)
	journal := NewDeliveryJournal(openDB(t), slog.Default(), time.Hour)

	// Given two reports with three failures in total
	first := failedReport("g1", "c1", "c2")
	req.NoError(journal.Record(first))
	time.Sleep(time.Millisecond)
	second := failedReport("g2", "c3")
	req.NoError(journal.Record(second))

	// When reading the journal back
	records, err := journal.Recent(0)

	// Then every failure is there, newest first
	req.NoError(err)
	req.Len(records, 3)
	req.Equal(second.Event.ID, records[0].EventID)
	req.Equal(domain.ConnectionID("c3"), records[0].ConnectionID)
	req.Equal(domain.GroupScope("g2"), records[0].Scope)
	req.Equal(errors.ErrConnectionClosed.Error(), records[0].Reason)
	req.Equal(first.Event.ID, records[1].EventID)
	req.Equal(first.Event.ID, records[2].EventID)
}

func Test_Record_And_Limit(t *testing.T) {
	req := require.New(t)
	journal := NewDeliveryJournal(openDB(t), slog.Default(), 0)

	for i := 0; i < 5; i++ {
		req.NoError(journal.Record(failedReport("g", "c")))
	}

	records, err := journal.Recent(2)
	req.NoError(err)
	req.Len(records, 2)
}

func Test_Record_Without_Failures_Writes_Nothing(t *testing.T) {
	req := require.New(t)
	journal := NewDeliveryJournal(openDB(t), slog.Default(), time.Hour)

	req.NoError(journal.Record(domain.DeliveryReport{Attempted: 3, Delivered: 3}))

	records, err := journal.Recent(10)
	req.NoError(err)
	req.Empty(records)
}
