package repositories

import (
	"chat-relay/domain"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const failurePrefix = "fail:"

// DeliveryJournal keeps failed deliveries around for operators.
// It is an audit trail, not a retry queue: nothing reads it back into the fanout.
type DeliveryJournal struct {
	db        *badger.DB
	log       *slog.Logger
	retention time.Duration
}

// NewDeliveryJournal returns a journal whose entries expire after retention.
// A zero retention keeps entries forever.
func NewDeliveryJournal(db *badger.DB, log *slog.Logger, retention time.Duration) *DeliveryJournal {
	return &DeliveryJournal{db: db, log: log, retention: retention}
}

// Record persists one entry per failed recipient of every report.
// The key is formatted as "fail:{timestamp_padded}:{uuid}" so that a prefix
// scan returns entries in chronological order; the uuid disambiguates
// failures recorded at the same nanosecond.
func (j *DeliveryJournal) Record(reports ...domain.DeliveryReport) error {
	now := time.Now().UTC()
	var entries []*badger.Entry
	for _, report := range reports {
		for _, record := range report.ToFailureRecords(now) {
			value, err := json.Marshal(record)
			if err != nil {
				return err
			}
			entry := badger.NewEntry(failureKey(record), value)
			if j.retention > 0 {
				entry = entry.WithTTL(j.retention)
			}
			entries = append(entries, entry)
		}
	}
	if len(entries) == 0 {
		return nil
	}

	err := j.db.Update(func(txn *badger.Txn) error {
		for _, entry := range entries {
			if err := txn.SetEntry(entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("journal write: %w", err)
	}
	j.log.Debug("Delivery failures journaled", "count", len(entries))
	return nil
}

// Recent returns up to limit records, newest first.
func (j *DeliveryJournal) Recent(limit int) ([]domain.FailureRecord, error) {
	records := make([]domain.FailureRecord, 0)
	err := j.db.View(func(txn *badger.Txn) error {
		prefix := []byte(failurePrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration starts from the highest key below the seek key
		seekKey := append([]byte(failurePrefix), 0xFF)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(records) == limit {
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var record domain.FailureRecord
				if err := json.Unmarshal(value, &record); err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func failureKey(record domain.FailureRecord) []byte {
	return []byte(fmt.Sprintf("%s%019d:%s", failurePrefix, record.At.UnixNano(), record.ID))
}
