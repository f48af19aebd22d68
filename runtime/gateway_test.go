package runtime

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/mocks"
	"chat-relay/runtime/workers"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGateway_Group_Handlers_Build_Group_Scoped_Events(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	message := json.RawMessage(`{"id":"m1","text":"hello"}`)

	cases := []struct {
		name   string
		kind   domain.EventKind
		body   string
		handle func(g *Gateway) domain.DeliveryReport
	}{
		{"add", domain.MessageAdded, string(message), func(g *Gateway) domain.DeliveryReport {
			return g.HandleGroupMessageAdd(context.Background(), "42", message)
		}},
		{"edit", domain.MessageEdited, string(message), func(g *Gateway) domain.DeliveryReport {
			return g.HandleGroupMessageEdit(context.Background(), "42", message)
		}},
		{"delete", domain.MessageDeleted, `{"groupId":"42","messageId":"m1"}`, func(g *Gateway) domain.DeliveryReport {
			return g.HandleGroupMessageDelete(context.Background(), "42", "m1")
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			mockRegistry := mocks.NewMockIRegistry(ctrl)
			mockFanout := mocks.NewMockIFanout(ctrl)
			gateway := NewGateway(log, mockRegistry, mockFanout, nil)

			var delivered domain.Event
			mockFanout.EXPECT().Deliver(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, evt domain.Event) domain.DeliveryReport {
					delivered = evt
					return domain.DeliveryReport{Event: evt}
				}).Times(1)

			report := tc.handle(gateway)

			req.Equal(tc.kind, delivered.Kind)
			req.Equal(domain.GroupScope("42"), delivered.Scope)
			req.JSONEq(tc.body, string(delivered.Body))
			req.Equal(delivered.ID, report.Event.ID)
		})
	}
}

func TestGateway_All_Handlers_Build_Broadcast_Events(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	message := json.RawMessage(`{"id":"m1","userId":"u1"}`)

	handlers := map[domain.EventKind]func(g *Gateway) domain.DeliveryReport{
		domain.MessageAdded: func(g *Gateway) domain.DeliveryReport {
			return g.HandleAllMessageAdd(context.Background(), message)
		},
		domain.MessageEdited: func(g *Gateway) domain.DeliveryReport {
			return g.HandleAllMessageEdit(context.Background(), message)
		},
		domain.MessageDeleted: func(g *Gateway) domain.DeliveryReport {
			return g.HandleAllMessageDelete(context.Background(), message)
		},
	}

	for kind, handle := range handlers {
		t.Run(string(kind), func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			mockFanout := mocks.NewMockIFanout(ctrl)
			gateway := NewGateway(log, mocks.NewMockIRegistry(ctrl), mockFanout, nil)

			mockFanout.EXPECT().Deliver(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, evt domain.Event) domain.DeliveryReport {
					req.Equal(kind, evt.Kind)
					req.True(evt.Scope.All)
					req.JSONEq(string(message), string(evt.Body))
					return domain.DeliveryReport{Event: evt}
				})

			handle(gateway)
		})
	}
}

func TestGateway_HandleGroupDeleted_Dissolves_Then_Notifies_Former_Members(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockFanout := mocks.NewMockIFanout(ctrl)
	gateway := NewGateway(log, mockRegistry, mockFanout, nil)

	// Given group 7 had members a and b
	gomock.InOrder(
		mockRegistry.EXPECT().DissolveGroup(domain.GroupID("7")).
			Return([]domain.ConnectionID{"a", "b"}),
		mockFanout.EXPECT().DeliverTo(gomock.Any(), gomock.Any(), []domain.ConnectionID{"a", "b"}).
			DoAndReturn(func(_ context.Context, evt domain.Event, recipients []domain.ConnectionID) domain.DeliveryReport {
				req.Equal(domain.GroupDeleted, evt.Kind)
				req.JSONEq(`{"groupId":"7"}`, string(evt.Body))
				return domain.DeliveryReport{Event: evt, Attempted: len(recipients), Delivered: len(recipients)}
			}),
	)
	mockFanout.EXPECT().Deliver(gomock.Any(), gomock.Any()).Times(0)

	// When the group is deleted
	report := gateway.HandleGroupDeleted(context.Background(), "7")

	// Then the snapshot taken at dissolution is notified
	req.Equal(2, report.Delivered)
}

func TestGateway_HandleGroupDeleted_Late_Joiner_Is_Not_Notified(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	registry := NewRegistry()
	mockFanout := mocks.NewMockIFanout(ctrl)
	gateway := NewGateway(log, registry, mockFanout, nil)

	req.NoError(registry.Register("member"))
	req.NoError(registry.Register("late"))
	req.NoError(registry.Join("member", "g"))

	// Given a connection joins while the notice is being sent
	mockFanout.EXPECT().DeliverTo(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, evt domain.Event, recipients []domain.ConnectionID) domain.DeliveryReport {
			req.NoError(registry.Join("late", "g"))
			return domain.DeliveryReport{Event: evt, Attempted: len(recipients), Delivered: len(recipients)}
		})

	// When the group is deleted
	report := gateway.HandleGroupDeleted(context.Background(), "g")

	// Then only the former member was addressed and the late joiner keeps its new membership
	req.Equal(1, report.Attempted)
	req.Equal([]domain.ConnectionID{"late"}, registry.MembersOf("g"))
}

func TestGateway_Join_And_Leave_Delegate_To_Registry(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry()
	gateway := NewGateway(log, registry, nil, nil)

	// Join of an unknown connection fails and leaves the group untouched
	req.ErrorIs(gateway.HandleJoinGroup("connX", "groupY"), errors.ErrUnknownConnection)
	req.Empty(registry.MembersOf("groupY"))

	// Attach twice is rejected
	req.NoError(gateway.Attach("c1"))
	req.ErrorIs(gateway.Attach("c1"), errors.ErrDuplicateConnection)

	req.NoError(gateway.HandleJoinGroup("c1", "g"))
	req.Equal([]domain.ConnectionID{"c1"}, registry.MembersOf("g"))

	gateway.HandleLeaveGroup("c1", "g")
	gateway.HandleLeaveGroup("c1", "g")
	req.Empty(registry.MembersOf("g"))

	gateway.Detach("c1")
	gateway.Detach("c1")
	req.Zero(registry.Len())
}

func TestGateway_Partial_Failure_Is_Forwarded_To_Journal_Channel(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	mockFanout := mocks.NewMockIFanout(ctrl)
	reports := make(chan domain.DeliveryReport, 1)
	gateway := NewGateway(log, mocks.NewMockIRegistry(ctrl), mockFanout, reports)

	failed := func(_ context.Context, evt domain.Event) domain.DeliveryReport {
		return domain.DeliveryReport{
			Event: evt, Attempted: 2, Delivered: 1,
			Failures: []domain.DeliveryFailure{{ConnectionID: "c2", Err: errors.ErrConnectionClosed}},
		}
	}
	mockFanout.EXPECT().Deliver(gomock.Any(), gomock.Any()).DoAndReturn(failed).Times(2)

	first := gateway.HandleGroupMessageAdd(context.Background(), "g", json.RawMessage(`{}`))
	// The channel is full now, the second report is dropped without blocking
	gateway.HandleGroupMessageAdd(context.Background(), "g", json.RawMessage(`{}`))

	req.Len(reports, 1)
	forwarded := <-reports
	req.Equal(first.Event.ID, forwarded.Event.ID)
}

func TestGateway_Success_Is_Not_Forwarded(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	mockFanout := mocks.NewMockIFanout(ctrl)
	reports := make(chan domain.DeliveryReport, 1)
	gateway := NewGateway(log, mocks.NewMockIRegistry(ctrl), mockFanout, reports)

	mockFanout.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(domain.DeliveryReport{Attempted: 1, Delivered: 1})

	gateway.HandleAllMessageAdd(context.Background(), json.RawMessage(`{}`))
	req.Empty(reports)
}

// recordingTransport collects payloads per connection.
type recordingTransport struct {
	mu       sync.Mutex
	received map[domain.ConnectionID][][]byte
}

func (t *recordingTransport) Send(_ context.Context, id domain.ConnectionID, payload []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.received[id] = append(t.received[id], payload)
	return nil
}

func TestGateway_Scenario_Two_Members_Receive_Message(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry()
	transport := &recordingTransport{received: map[domain.ConnectionID][][]byte{}}
	gateway := NewGateway(log, registry, workers.NewEventFanout(log, registry, transport, time.Second), nil)

	// Given conn1 and conn2 joined group42, conn3 is connected elsewhere
	req.NoError(gateway.Attach("conn1"))
	req.NoError(gateway.HandleJoinGroup("conn1", "group42"))
	req.NoError(gateway.Attach("conn2"))
	req.NoError(gateway.HandleJoinGroup("conn2", "group42"))
	req.NoError(gateway.Attach("conn3"))

	// When M is added to group42
	report := gateway.HandleGroupMessageAdd(context.Background(), "group42", json.RawMessage(`{"text":"M"}`))

	// Then only the members receive M
	req.Equal(2, report.Delivered)
	req.Len(transport.received["conn1"], 1)
	req.Len(transport.received["conn2"], 1)
	req.Empty(transport.received["conn3"])

	var evt domain.Event
	req.NoError(json.Unmarshal(transport.received["conn1"][0], &evt))
	req.Equal(domain.MessageAdded, evt.Kind)
	req.JSONEq(`{"text":"M"}`, string(evt.Body))

	// And after the group is deleted nobody is left in it
	gateway.HandleGroupDeleted(context.Background(), "group42")
	req.Empty(registry.MembersOf("group42"))
	req.Len(transport.received["conn1"], 2)
}
