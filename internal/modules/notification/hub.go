package notification

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/rakandev/portfolio-cms/internal/entity"
)

const messageChannel = "admin_messages"

// Event is the payload pushed to connected admin clients.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub fans contact-form events out to websocket clients. With redis the
// event takes a round trip through pub/sub so every instance sees it; a
// nil client degrades to process-local broadcast.
type Hub struct {
	rdb *redis.Client

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}

	cancel context.CancelFunc
}

func NewHub(rdb *redis.Client) *Hub {
	h := &Hub{
		rdb:   rdb,
		conns: make(map[*websocket.Conn]struct{}),
	}

	if rdb != nil {
		ctx, cancel := context.WithCancel(context.Background())
		h.cancel = cancel
		go h.subscribe(ctx)
	}

	return h
}

// NotifyNewMessage publishes a new contact-form submission. Delivery is
// best effort; a failed publish is logged and the request proceeds.
func (h *Hub) NotifyNewMessage(ctx context.Context, message *entity.Message) {
	payload, err := json.Marshal(Event{Type: "new_message", Data: message})
	if err != nil {
		log.Printf("failed to encode message event: %v", err)
		return
	}

	if h.rdb == nil {
		h.broadcast(payload)
		return
	}

	if err := h.rdb.Publish(ctx, messageChannel, payload).Err(); err != nil {
		log.Printf("failed to publish message event: %v", err)
	}
}

func (h *Hub) subscribe(ctx context.Context) {
	sub := h.rdb.Subscribe(ctx, messageChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.broadcast([]byte(msg.Payload))
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.conns[conn]; ok {
		conn.Close()
		delete(h.conns, conn)
	}
	h.mu.Unlock()
}

// Close drops the redis subscription and every client connection.
func (h *Hub) Close() {
	if h.cancel != nil {
		h.cancel()
	}

	h.mu.Lock()
	for conn := range h.conns {
		conn.Close()
		delete(h.conns, conn)
	}
	h.mu.Unlock()
}
