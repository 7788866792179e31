package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Hulupeep/mbot-ruvector/internal/brain"
)

type client struct {
	id   string
	conn *websocket.Conn

	// mu guards send against the disconnect/broadcast race: a removal
	// can close the channel while a fan-out still holds this client in
	// its copied list, so every send and the close itself synchronize
	// on closed.
	mu     sync.Mutex
	closed bool
	send   chan []byte
}

func newClient(conn *websocket.Conn) *client {
	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, 64),
	}
	go c.writePump()
	return c
}

func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// trySend queues the payload without blocking. It reports false only when
// the client is live but its buffer is full; a client already torn down is
// skipped as delivered, since its removal is underway elsewhere.
func (c *client) trySend(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return true
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (c *client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// Broadcaster fans each tick's snapshot out to every connected viewer. The
// payload is serialized exactly once per tick; delivery is best effort, and
// a viewer that cannot keep up is dropped rather than allowed to stall the
// rest.
type Broadcaster struct {
	mu      sync.RWMutex
	clients map[*client]bool
	latest  *brain.Snapshot
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		clients: make(map[*client]bool),
	}
}

// AddClient registers a freshly upgraded connection. The viewer receives
// snapshots starting with the next tick; there is no replay of past ticks.
func (b *Broadcaster) AddClient(conn *websocket.Conn) *client {
	c := newClient(conn)

	b.mu.Lock()
	b.clients[c] = true
	b.mu.Unlock()

	return c
}

// RemoveClient unregisters a viewer and closes its send channel. Removing a
// client that is already gone is a no-op.
func (b *Broadcaster) RemoveClient(c *client) {
	b.mu.Lock()
	if _, ok := b.clients[c]; ok {
		delete(b.clients, c)
		c.close()
	}
	b.mu.Unlock()
}

// Publish serializes the snapshot once and pushes it to every live viewer.
// The client set is copied under the lock before iterating, so a connect or
// disconnect landing mid-broadcast never corrupts the fan-out.
func (b *Broadcaster) Publish(snap *brain.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("snapshot marshal error: %v", err)
		return
	}

	b.mu.Lock()
	b.latest = snap
	clients := make([]*client, 0, len(b.clients))
	for c := range b.clients {
		clients = append(clients, c)
	}
	b.mu.Unlock()

	for _, c := range clients {
		if !c.trySend(data) {
			// Client can't keep up, disconnect it
			log.Printf("ws client %s too slow, disconnecting", c.id)
			b.RemoveClient(c)
		}
	}
}

// Latest returns the most recently published snapshot, or nil before the
// first tick.
func (b *Broadcaster) Latest() *brain.Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.latest
}

func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}
