// Package stream fans rendered generations out to WebSocket viewers so a
// running simulation can be watched remotely. Slow or broken clients are
// dropped rather than ever blocking the simulation loop.
package stream

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Frame is one rendered generation as sent to viewers
type Frame struct {
	Generation int      `json:"generation"`
	Population int      `json:"population"`
	Lines      []string `json:"lines"`
}

// Broadcaster sends frames to all connected WebSocket clients
type Broadcaster struct {
	mu         sync.RWMutex
	clients    map[*websocket.Conn]bool
	upgrader   websocket.Upgrader
	broadcast  chan Frame
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	wg         sync.WaitGroup
}

// NewBroadcaster creates a broadcaster and starts its fan-out goroutine
func NewBroadcaster() *Broadcaster {
	b := &Broadcaster{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Frame, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	b.wg.Add(1)
	go b.run()

	return b
}

// Publish queues a frame for delivery to all connected clients. Frames
// are dropped when the queue is full; the simulation never waits on
// viewers.
func (b *Broadcaster) Publish(frame Frame) {
	select {
	case b.broadcast <- frame:
	case <-b.done:
	default:
		// queue full, drop the frame
	}
}

// ClientCount returns the number of currently connected viewers
func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// ServeHTTP upgrades the request to a WebSocket connection and registers
// it as a viewer until it disconnects
func (b *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	select {
	case b.register <- conn:
	case <-b.done:
		conn.Close()
		return
	}

	// Viewers never send data; the read loop only detects disconnects.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				select {
				case b.unregister <- conn:
				case <-b.done:
				}
				return
			}
		}
	}()
}

// run handles client registration/unregistration and frame fan-out
func (b *Broadcaster) run() {
	defer b.wg.Done()
	for {
		select {
		case <-b.done:
			return

		case conn := <-b.register:
			b.mu.Lock()
			b.clients[conn] = true
			b.mu.Unlock()

		case conn := <-b.unregister:
			b.mu.Lock()
			if _, ok := b.clients[conn]; ok {
				delete(b.clients, conn)
				conn.Close()
			}
			b.mu.Unlock()

		case frame := <-b.broadcast:
			data, err := json.Marshal(frame)
			if err != nil {
				continue
			}

			// Snapshot connections so writes happen outside the lock
			b.mu.RLock()
			conns := make([]*websocket.Conn, 0, len(b.clients))
			for conn := range b.clients {
				conns = append(conns, conn)
			}
			b.mu.RUnlock()

			var toRemove []*websocket.Conn
			for _, conn := range conns {
				conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
				if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
					toRemove = append(toRemove, conn)
					conn.Close()
				}
			}

			if len(toRemove) > 0 {
				b.mu.Lock()
				for _, conn := range toRemove {
					delete(b.clients, conn)
				}
				b.mu.Unlock()
			}
		}
	}
}

// Close disconnects every client and stops the fan-out goroutine
func (b *Broadcaster) Close() error {
	close(b.done)

	b.mu.Lock()
	for conn := range b.clients {
		conn.Close()
		delete(b.clients, conn)
	}
	b.mu.Unlock()

	b.wg.Wait()
	return nil
}
