// Package websocket is the transport between the relay and live clients.
package websocket

import (
	"chat-relay/auth"
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// Hub tracks the open sockets and implements contract.Transport over them.
type Hub struct {
	log          *slog.Logger
	tokens       *auth.TokenManager
	gateway      contract.IGateway
	bufferSize   int
	writeTimeout time.Duration

	mu      sync.RWMutex
	clients map[domain.ConnectionID]*Client
}

func NewHub(log *slog.Logger, tokens *auth.TokenManager, bufferSize int, writeTimeout time.Duration) *Hub {
	return &Hub{
		log:          log,
		tokens:       tokens,
		bufferSize:   bufferSize,
		writeTimeout: writeTimeout,
		clients:      make(map[domain.ConnectionID]*Client),
	}
}

// SetGateway must be called before serving. The gateway depends on the
// fanout which depends on the hub, so it cannot be a constructor argument.
func (h *Hub) SetGateway(gateway contract.IGateway) {
	h.gateway = gateway
}

// Send hands the payload to the client's write pump.
func (h *Hub) Send(ctx context.Context, connectionID domain.ConnectionID, payload []byte) error {
	h.mu.RLock()
	client, ok := h.clients[connectionID]
	h.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrConnectionClosed, connectionID)
	}
	if err := client.enqueue(ctx, payload); err != nil {
		return fmt.Errorf("%w: %s", err, connectionID)
	}
	return nil
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.FromRequest(h.tokens, r, auth.RoleSubscriber)
	if err != nil {
		http.Error(w, err.Error(), errors.HTTPStatus(err))
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: []string{"*"}})
	if err != nil {
		h.log.Debug("Websocket upgrade failed", "error", err)
		return
	}

	connectionID := domain.ConnectionID(uuid.NewString())
	client := newClient(connectionID, conn, h.log, h.bufferSize)
	h.add(client)
	if err := h.gateway.Attach(connectionID); err != nil {
		h.remove(connectionID)
		h.log.Error("Unable to attach connection", "connection_id", connectionID, "error", err)
		_ = conn.Close(websocket.StatusInternalError, "attach failed")
		return
	}
	h.log.Info("Live client connected", "connection_id", connectionID, "user_id", claims.UserID)

	ctx, cancel := context.WithCancel(r.Context())
	defer func() {
		cancel()
		h.gateway.Detach(connectionID)
		h.remove(connectionID)
		client.close()
		_ = conn.Close(websocket.StatusNormalClosure, "closing")
		h.log.Info("Live client disconnected", "connection_id", connectionID)
	}()

	go client.writePump(ctx, h.writeTimeout)
	client.reply(ctx, Welcome{Type: "welcome", ConnectionID: connectionID})
	client.readPump(ctx, func(frame Frame) error {
		return h.dispatch(connectionID, frame)
	})
}

func (h *Hub) dispatch(connectionID domain.ConnectionID, frame Frame) error {
	switch frame.Action {
	case ActionPing:
		return nil
	case ActionJoin, ActionLeave:
		if frame.Group == "" {
			return fmt.Errorf("%w: group is required", errors.ErrInvalidRequest)
		}
		if frame.Action == ActionJoin {
			return h.gateway.HandleJoinGroup(connectionID, frame.Group)
		}
		h.gateway.HandleLeaveGroup(connectionID, frame.Group)
		return nil
	default:
		return fmt.Errorf("%w: unknown action %q", errors.ErrInvalidRequest, frame.Action)
	}
}

func (h *Hub) add(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.id] = client
}

func (h *Hub) remove(connectionID domain.ConnectionID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, connectionID)
}
