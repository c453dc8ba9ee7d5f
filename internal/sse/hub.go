package sse

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lanternworks/nightmarket/internal/metrics"
)

// Message is one frame on the event stream
type Message struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is one connected stream consumer
type Client struct {
	ID       string
	Messages chan Message
	// filter is nil for the full feed, otherwise only listed types pass
	filter map[string]bool
}

func (c *Client) wants(msgType string) bool {
	return c.filter == nil || c.filter[msgType]
}

// Hub fans broadcast messages out to connected clients. Slow consumers
// never block the hub; frames they cannot keep up with are dropped.
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Message
	register   chan *Client
	unregister chan string
	shutdown   chan struct{}
	wg         sync.WaitGroup
	mu         sync.RWMutex
	dropped    atomic.Uint64
}

// NewHub creates a hub. Call Start before broadcasting.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Message, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start launches the fan-out loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the fan-out loop and closes every client channel
func (h *Hub) Stop() {
	close(h.shutdown)
	h.wg.Wait()

	h.mu.Lock()
	for _, client := range h.clients {
		close(client.Messages)
	}
	h.clients = make(map[string]*Client)
	h.mu.Unlock()
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.Messages)
				delete(h.clients, clientID)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.wants(msg.Type) {
					continue
				}
				select {
				case client.Messages <- msg:
				default:
					// Client buffer full, drop the frame
					h.dropped.Add(1)
					metrics.SSEFramesDropped.Inc()
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register connects a new client. An empty type list subscribes to the
// full feed.
func (h *Hub) Register(msgTypes []string) *Client {
	client := &Client{
		ID:       uuid.NewString(),
		Messages: make(chan Message, ClientMessageBuffer),
	}

	if len(msgTypes) > 0 {
		client.filter = make(map[string]bool, len(msgTypes))
		for _, t := range msgTypes {
			client.filter[t] = true
		}
	}

	h.register <- client
	return client
}

// Unregister disconnects a client and closes its channel
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues a message for every interested client. Drops the
// message when the hub itself is saturated.
func (h *Hub) Broadcast(msgType string, payload interface{}) {
	msg := Message{
		ID:        uuid.NewString(),
		Type:      msgType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- msg:
	default:
		h.dropped.Add(1)
		metrics.SSEFramesDropped.Inc()
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Dropped returns how many frames were discarded for slow consumers
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// FormatMessage renders a message in wire format:
// "id: <id>\nevent: <type>\ndata: <json>\n\n"
func FormatMessage(msg Message) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	out := "id: " + msg.ID + "\n"
	out += "event: " + msg.Type + "\n"
	out += "data: " + string(data) + "\n\n"

	return []byte(out), nil
}
