// Package runtime holds the live state of the relay: who is connected, which
// groups they joined, and how inbound events reach them.
// It owns no message history and never calls back into persistence.
package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/observability"
	"context"
	"encoding/json"
	"log/slog"
)

// Gateway is the public entry point of the relay.
//
// Handlers assume the caller already authorized, validated and durably
// stored the change. The gateway only turns it into a tagged event and
// fans it out to whoever is connected right now.
type Gateway struct {
	log      *slog.Logger
	registry contract.IRegistry
	fanout   contract.IFanout
	reports  chan<- domain.DeliveryReport
	monitor  *observability.Monitor
}

// NewGateway wires the gateway. reports may be nil when failed deliveries
// don't need to be journaled.
func NewGateway(log *slog.Logger, registry contract.IRegistry, fanout contract.IFanout,
	reports chan<- domain.DeliveryReport) *Gateway {
	return &Gateway{log: log, registry: registry, fanout: fanout, reports: reports}
}

func (g *Gateway) WithMonitor(monitor *observability.Monitor) *Gateway {
	g.monitor = monitor
	return g
}

func (g *Gateway) Attach(connectionID domain.ConnectionID) error {
	if err := g.registry.Register(connectionID); err != nil {
		return err
	}
	g.monitor.ConnectionAttached()
	g.log.Debug("Connection attached", "connection_id", connectionID)
	return nil
}

func (g *Gateway) Detach(connectionID domain.ConnectionID) {
	g.registry.Unregister(connectionID)
	g.monitor.ConnectionDetached()
	g.log.Debug("Connection detached", "connection_id", connectionID)
}

func (g *Gateway) HandleJoinGroup(connectionID domain.ConnectionID, groupID domain.GroupID) error {
	return g.registry.Join(connectionID, groupID)
}

func (g *Gateway) HandleLeaveGroup(connectionID domain.ConnectionID, groupID domain.GroupID) {
	g.registry.Leave(connectionID, groupID)
}

func (g *Gateway) HandleGroupMessageAdd(ctx context.Context, groupID domain.GroupID, message json.RawMessage) domain.DeliveryReport {
	return g.publish(ctx, domain.NewEvent(domain.MessageAdded, domain.GroupScope(groupID), message))
}

func (g *Gateway) HandleGroupMessageEdit(ctx context.Context, groupID domain.GroupID, message json.RawMessage) domain.DeliveryReport {
	return g.publish(ctx, domain.NewEvent(domain.MessageEdited, domain.GroupScope(groupID), message))
}

func (g *Gateway) HandleGroupMessageDelete(ctx context.Context, groupID domain.GroupID, messageID string) domain.DeliveryReport {
	body, _ := json.Marshal(messageDeleted{GroupID: groupID, MessageID: messageID})
	return g.publish(ctx, domain.NewEvent(domain.MessageDeleted, domain.GroupScope(groupID), body))
}

// HandleGroupDeleted dissolves the group, then notifies the connections that
// were its members. Nobody can join between the snapshot and the notice.
func (g *Gateway) HandleGroupDeleted(ctx context.Context, groupID domain.GroupID) domain.DeliveryReport {
	former := g.registry.DissolveGroup(groupID)
	g.log.Debug("Group dissolved", "group_id", groupID, "members", len(former))
	body, _ := json.Marshal(groupDeleted{GroupID: groupID})
	evt := domain.NewEvent(domain.GroupDeleted, domain.GroupScope(groupID), body)
	return g.record(evt, g.fanout.DeliverTo(ctx, evt, former))
}

func (g *Gateway) HandleAllMessageAdd(ctx context.Context, message json.RawMessage) domain.DeliveryReport {
	return g.publish(ctx, domain.NewEvent(domain.MessageAdded, domain.AllScope(), message))
}

func (g *Gateway) HandleAllMessageEdit(ctx context.Context, message json.RawMessage) domain.DeliveryReport {
	return g.publish(ctx, domain.NewEvent(domain.MessageEdited, domain.AllScope(), message))
}

func (g *Gateway) HandleAllMessageDelete(ctx context.Context, message json.RawMessage) domain.DeliveryReport {
	return g.publish(ctx, domain.NewEvent(domain.MessageDeleted, domain.AllScope(), message))
}

type messageDeleted struct {
	GroupID   domain.GroupID `json:"groupId"`
	MessageID string         `json:"messageId"`
}

type groupDeleted struct {
	GroupID domain.GroupID `json:"groupId"`
}

func (g *Gateway) publish(ctx context.Context, evt domain.Event) domain.DeliveryReport {
	return g.record(evt, g.fanout.Deliver(ctx, evt))
}

func (g *Gateway) record(evt domain.Event, report domain.DeliveryReport) domain.DeliveryReport {
	g.monitor.RecordReport(report)
	if !report.HasFailures() {
		return report
	}

	g.log.Warn("Event partially delivered",
		"event_id", evt.ID,
		"kind", evt.Kind,
		"scope", evt.Scope.String(),
		"attempted", report.Attempted,
		"failed_connections", report.FailedConnections())

	if g.reports == nil {
		return report
	}
	select {
	case g.reports <- report:
	default:
		g.log.Debug("Delivery report lost, journal channel full", "event_id", evt.ID)
	}
	return report
}
