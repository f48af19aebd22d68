package workers

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

// EventFanout delivers one event to every connection of its scope.
//
// Each recipient is served by its own goroutine with its own timeout, so a
// slow or stalled connection cannot delay the others. Delivery is
// at-most-once per recipient per call: nothing is retried and no ordering
// is guaranteed between recipients. Failures are collected in the report,
// never returned as an error.
//
// EventFanout is safe for concurrent use by multiple goroutines.
type EventFanout struct {
	log         *slog.Logger
	registry    contract.IRegistry
	transport   contract.Transport
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, registry contract.IRegistry,
	transport contract.Transport, sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:         log,
		registry:    registry,
		transport:   transport,
		sinkTimeout: sinkTimeout,
	}
}

type sendResult struct {
	connectionID domain.ConnectionID
	err          error
}

// Deliver resolves the scope to a snapshot of recipients, encodes the event
// once and sends it to each of them. The registry lock is released before
// any send starts.
func (f *EventFanout) Deliver(ctx context.Context, evt domain.Event) domain.DeliveryReport {
	return f.DeliverTo(ctx, evt, f.resolve(evt.Scope))
}

// DeliverTo sends evt to the given recipients whatever its scope.
//
// Cancelling ctx does not abort the fanout: the change is already committed
// upstream, so only sinkTimeout bounds the sends.
func (f *EventFanout) DeliverTo(ctx context.Context, evt domain.Event, recipients []domain.ConnectionID) domain.DeliveryReport {
	report := domain.DeliveryReport{Event: evt, Attempted: len(recipients)}
	if len(recipients) == 0 {
		return report
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		// Nothing can be sent: every recipient is reported as failed.
		f.log.Error("Unable to encode event", "event_id", evt.ID, "error", err)
		report.Failures = lo.Map(recipients, func(id domain.ConnectionID, _ int) domain.DeliveryFailure {
			return domain.DeliveryFailure{ConnectionID: id, Err: fmt.Errorf("%w: %v", errors.ErrDeliveryFailure, err)}
		})
		return report
	}

	deliveryCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.sinkTimeout)
	defer cancel()

	// Buffered so late senders never block once the collector has given up.
	results := make(chan sendResult, len(recipients))
	for _, connectionID := range recipients {
		go func(connectionID domain.ConnectionID) {
			results <- sendResult{
				connectionID: connectionID,
				err:          f.send(deliveryCtx, connectionID, payload),
			}
		}(connectionID)
	}

	c := newCollector(&report, recipients)
	for c.waiting() {
		select {
		case res := <-results:
			c.add(res)
		case <-deliveryCtx.Done():
			// A transport ignoring its context must not hold the fanout hostage.
			c.expire(results)
		}
	}

	if report.HasFailures() {
		f.log.Debug("Partial delivery",
			"event_id", evt.ID,
			"scope", evt.Scope.String(),
			"attempted", report.Attempted,
			"failed", len(report.Failures))
	}
	return report
}

// collector folds send results into a report.
type collector struct {
	report  *domain.DeliveryReport
	pending map[domain.ConnectionID]struct{}
}

func newCollector(report *domain.DeliveryReport, recipients []domain.ConnectionID) *collector {
	return &collector{
		report: report,
		pending: lo.SliceToMap(recipients, func(id domain.ConnectionID) (domain.ConnectionID, struct{}) {
			return id, struct{}{}
		}),
	}
}

func (c *collector) waiting() bool {
	return len(c.pending) > 0
}

func (c *collector) add(res sendResult) {
	if _, ok := c.pending[res.connectionID]; !ok {
		return
	}
	delete(c.pending, res.connectionID)
	if res.err != nil {
		c.report.Failures = append(c.report.Failures, domain.DeliveryFailure{
			ConnectionID: res.connectionID,
			Err:          res.err,
		})
		return
	}
	c.report.Delivered++
}

// expire keeps the results already waiting in the channel, then marks every
// recipient still pending as timed out.
func (c *collector) expire(results <-chan sendResult) {
	for c.waiting() {
		select {
		case res := <-results:
			c.add(res)
			continue
		default:
		}
		break
	}
	for connectionID := range c.pending {
		c.report.Failures = append(c.report.Failures, domain.DeliveryFailure{
			ConnectionID: connectionID,
			Err:          errors.ErrDeliveryTimeout,
		})
	}
	clear(c.pending)
}

func (f *EventFanout) resolve(scope domain.Scope) []domain.ConnectionID {
	if scope.All {
		return f.registry.Connections()
	}
	return f.registry.MembersOf(scope.Group)
}

func (f *EventFanout) send(ctx context.Context, connectionID domain.ConnectionID, payload []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: transport panic: %v", errors.ErrDeliveryFailure, r)
		}
	}()
	if err = f.transport.Send(ctx, connectionID, payload); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %v", errors.ErrDeliveryTimeout, err)
		}
		return err
	}
	return nil
}
