package websocket

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// Frame is what a live client sends over its socket.
type Frame struct {
	Action string         `json:"action"`
	Group  domain.GroupID `json:"group,omitempty"`
}

type Response struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type Welcome struct {
	Type         string              `json:"type"`
	ConnectionID domain.ConnectionID `json:"connectionId"`
}

const (
	ActionJoin  = "join"
	ActionLeave = "leave"
	ActionPing  = "ping"

	statusOK    = "ok"
	statusError = "error"
)

// Client owns one socket. Outbound frames go through a bounded channel
// drained by the write pump; done is closed once, when the socket is gone.
type Client struct {
	id        domain.ConnectionID
	conn      *websocket.Conn
	log       *slog.Logger
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newClient(id domain.ConnectionID, conn *websocket.Conn, log *slog.Logger, bufferSize int) *Client {
	return &Client{
		id:   id,
		conn: conn,
		log:  log.With("connection_id", id),
		send: make(chan []byte, bufferSize),
		done: make(chan struct{}),
	}
}

// enqueue never blocks behind the socket.
func (c *Client) enqueue(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-c.done:
		return errors.ErrConnectionClosed
	default:
	}
	select {
	case c.send <- payload:
		return nil
	case <-c.done:
		return errors.ErrConnectionClosed
	default:
		return errors.ErrConnectionBackpressure
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() { close(c.done) })
}

func (c *Client) writePump(ctx context.Context, writeTimeout time.Duration) {
	defer c.close()
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case msg := <-c.send:
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := c.conn.Write(writeCtx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				c.log.Debug("Write failed, closing connection", "error", err)
				// Unblocks the read pump as well
				_ = c.conn.CloseNow()
				return
			}
		}
	}
}

// readPump dispatches client frames until the socket fails.
func (c *Client) readPump(ctx context.Context, handle func(Frame) error) {
	for {
		_, msg, err := c.conn.Read(ctx)
		if err != nil {
			c.log.Debug("Read stopped", "error", err)
			return
		}

		var frame Frame
		if err := json.Unmarshal(msg, &frame); err != nil {
			c.reply(ctx, Response{Type: "response", Status: statusError, Error: "malformed frame"})
			continue
		}

		resp := Response{Type: "response", Action: frame.Action, Status: statusOK}
		if err := handle(frame); err != nil {
			resp.Status = statusError
			resp.Error = err.Error()
		}
		c.reply(ctx, resp)
	}
}

func (c *Client) reply(ctx context.Context, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.log.Error("Unable to encode reply", "error", err)
		return
	}
	if err := c.enqueue(ctx, data); err != nil {
		c.log.Debug("Reply dropped", "error", err)
	}
}
