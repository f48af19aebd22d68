//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-relay/domain"
	"context"
	"encoding/json"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Transport pushes an encoded event to one live connection.
// Implementations must honour ctx and must not block on a slow peer
// beyond it.
type Transport interface {
	Send(ctx context.Context, connectionID domain.ConnectionID, payload []byte) error
}

type IRegistry interface {
	Register(connectionID domain.ConnectionID) error
	Unregister(connectionID domain.ConnectionID)
	Join(connectionID domain.ConnectionID, groupID domain.GroupID) error
	Leave(connectionID domain.ConnectionID, groupID domain.GroupID)
	MembersOf(groupID domain.GroupID) []domain.ConnectionID
	Connections() []domain.ConnectionID
	GroupsOf(connectionID domain.ConnectionID) []domain.GroupID
	DissolveGroup(groupID domain.GroupID) []domain.ConnectionID
	Len() int
}

type IFanout interface {
	Deliver(ctx context.Context, evt domain.Event) domain.DeliveryReport
	// DeliverTo sends evt to an explicit recipient list, ignoring its scope.
	DeliverTo(ctx context.Context, evt domain.Event, recipients []domain.ConnectionID) domain.DeliveryReport
}

// IGateway is the entry point used by every transport and ingress.
type IGateway interface {
	Attach(connectionID domain.ConnectionID) error
	Detach(connectionID domain.ConnectionID)
	HandleJoinGroup(connectionID domain.ConnectionID, groupID domain.GroupID) error
	HandleLeaveGroup(connectionID domain.ConnectionID, groupID domain.GroupID)
	HandleGroupMessageAdd(ctx context.Context, groupID domain.GroupID, message json.RawMessage) domain.DeliveryReport
	HandleGroupMessageEdit(ctx context.Context, groupID domain.GroupID, message json.RawMessage) domain.DeliveryReport
	HandleGroupMessageDelete(ctx context.Context, groupID domain.GroupID, messageID string) domain.DeliveryReport
	HandleGroupDeleted(ctx context.Context, groupID domain.GroupID) domain.DeliveryReport
	HandleAllMessageAdd(ctx context.Context, message json.RawMessage) domain.DeliveryReport
	HandleAllMessageEdit(ctx context.Context, message json.RawMessage) domain.DeliveryReport
	HandleAllMessageDelete(ctx context.Context, message json.RawMessage) domain.DeliveryReport
}

type IDeliveryJournal interface {
	Record(reports ...domain.DeliveryReport) error
	Recent(limit int) ([]domain.FailureRecord, error)
}
