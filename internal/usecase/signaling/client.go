package signaling

import (
	"sync"
	"time"
)

// Conn is the subset of a websocket connection the relay writes to.
// *websocket.Conn satisfies it; tests plug in a recorder.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// TextMessage mirrors websocket.TextMessage so callers outside the
// transport layer need no gorilla import.
const TextMessage = 1

// Client is one connected signaling peer
type Client struct {
	ID string

	conn         Conn
	writeTimeout time.Duration
	mu           sync.Mutex
}

// sendJSON writes a JSON event to the peer. Writes are serialized per
// client; delivery is best-effort.
func (c *Client) sendJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.writeTimeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	return c.conn.WriteJSON(v)
}

// sendRaw forwards an already-encoded message verbatim
func (c *Client) sendRaw(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.writeTimeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	return c.conn.WriteMessage(TextMessage, payload)
}

// close closes the underlying connection
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.Close()
}
