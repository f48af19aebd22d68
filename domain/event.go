package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	MessageAdded   EventKind = "MessageAdded"
	MessageEdited  EventKind = "MessageEdited"
	MessageDeleted EventKind = "MessageDeleted"
	GroupDeleted   EventKind = "GroupDeleted"
)

// Scope is the delivery target of an event: one group, or every connection.
type Scope struct {
	Group GroupID `json:"group,omitempty"`
	All   bool    `json:"all,omitempty"`
}

func GroupScope(groupID GroupID) Scope {
	return Scope{Group: groupID}
}

func AllScope() Scope {
	return Scope{All: true}
}

func (s Scope) String() string {
	if s.All {
		return "all"
	}
	return "group:" + string(s.Group)
}

// Event is a tagged payload fanned out to a scope.
// Body is opaque to the relay and forwarded as is.
type Event struct {
	ID    uuid.UUID       `json:"id"`
	Kind  EventKind       `json:"kind"`
	Scope Scope           `json:"scope"`
	Body  json.RawMessage `json:"body,omitempty"`
	At    time.Time       `json:"at"`
}

func NewEvent(kind EventKind, scope Scope, body json.RawMessage) Event {
	return Event{
		ID:    uuid.New(),
		Kind:  kind,
		Scope: scope,
		Body:  body,
		At:    time.Now().UTC(),
	}
}
