// Package ws renders the reel to browser clients over websockets.
// The Hub implements ports.Surface by broadcasting frames; the actual
// scrolling animation runs client-side, paced by the duration sent in
// the spin frame.
package ws

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Frame is one reel event on the wire.
type Frame struct {
	// Type is one of clear, append, spin, settle.
	Type       string   `json:"type"`
	Items      []string `json:"items,omitempty"`
	DurationMS int64    `json:"duration_ms,omitempty"`
}

const (
	frameClear  = "clear"
	frameAppend = "append"
	frameSpin   = "spin"
	frameSettle = "settle"

	clientBuffer = 16
	writeWait    = 5 * time.Second
)

// Hub fans reel frames out to every connected client. A client whose
// outgoing buffer is full is dropped rather than stalling the draw.
type Hub struct {
	logger *slog.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	out  chan Frame
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		logger:  logger,
		clients: make(map[*client]struct{}),
	}
}

// Clear removes every rendered reel item.
func (h *Hub) Clear() {
	h.broadcast(Frame{Type: frameClear})
}

// Append renders a batch of new items after any existing ones.
func (h *Hub) Append(items []string) {
	h.broadcast(Frame{Type: frameAppend, Items: slices.Clone(items)})
}

// Spin announces the animation and blocks for its duration. Context
// cancellation is the forced-stop path: clients get the settle frame
// immediately after.
func (h *Hub) Spin(ctx context.Context, d time.Duration) error {
	h.broadcast(Frame{Type: frameSpin, DurationMS: d.Milliseconds()})

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CollapseToWinner removes all but the last rendered item.
func (h *Hub) CollapseToWinner() {
	h.broadcast(Frame{Type: frameSettle})
}

// ClientCount reports connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) broadcast(f Frame) {
	h.mu.Lock()
	var stale []*client
	for c := range h.clients {
		select {
		case c.out <- f:
		default:
			stale = append(stale, c)
		}
	}
	for _, c := range stale {
		delete(h.clients, c)
	}
	h.mu.Unlock()

	for _, c := range stale {
		h.logger.Warn("dropping slow reel client", "remote", c.conn.RemoteAddr().String())
		close(c.out)
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		close(c.out)
	}
}

// writePump pushes frames to one connection until its channel closes
// or a write fails.
func (c *client) writePump() {
	defer c.conn.Close()
	for f := range c.out {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(f); err != nil {
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
}

// readPump discards inbound messages; the reel stream is one-way. It
// exists to notice the peer closing.
func (c *client) readPump(h *Hub) {
	defer h.unregister(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
