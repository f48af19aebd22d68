package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryFailure reports why a single recipient did not get an event.
type DeliveryFailure struct {
	ConnectionID ConnectionID
	Err          error
}

// DeliveryReport is the outcome of one fanout.
// Failures are partial by nature: the remaining recipients were still attempted.
type DeliveryReport struct {
	Event     Event
	Attempted int
	Delivered int
	Failures  []DeliveryFailure
}

func (r DeliveryReport) HasFailures() bool {
	return len(r.Failures) > 0
}

func (r DeliveryReport) FailedConnections() []ConnectionID {
	ids := make([]ConnectionID, 0, len(r.Failures))
	for _, f := range r.Failures {
		ids = append(ids, f.ConnectionID)
	}
	return ids
}

// FailureRecord is the persisted form of one DeliveryFailure.
type FailureRecord struct {
	ID           uuid.UUID    `json:"id"`
	EventID      uuid.UUID    `json:"eventId"`
	Kind         EventKind    `json:"kind"`
	Scope        Scope        `json:"scope"`
	ConnectionID ConnectionID `json:"connectionId"`
	Reason       string       `json:"reason"`
	At           time.Time    `json:"at"`
}

// ToFailureRecords flattens a report into one record per failed recipient.
func (r DeliveryReport) ToFailureRecords(at time.Time) []FailureRecord {
	records := make([]FailureRecord, 0, len(r.Failures))
	for _, f := range r.Failures {
		reason := ""
		if f.Err != nil {
			reason = f.Err.Error()
		}
		records = append(records, FailureRecord{
			ID:           uuid.New(),
			EventID:      r.Event.ID,
			Kind:         r.Event.Kind,
			Scope:        r.Event.Scope,
			ConnectionID: f.ConnectionID,
			Reason:       reason,
			At:           at,
		})
	}
	return records
}
