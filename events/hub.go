// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package events

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/danielhkuo/evote/models"
)

const clientBuffer = 16

// Hub fans ledger events out to connected clients. It implements
// ledger.Notifier.
type Hub struct {
	mu      sync.RWMutex
	clients map[chan []byte]struct{}
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients: make(map[chan []byte]struct{}),
		logger:  logger,
	}
}

// Subscribe registers a client. The returned func unregisters it and closes
// the channel.
func (h *Hub) Subscribe() (<-chan []byte, func()) {
	client := make(chan []byte, clientBuffer)

	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return client, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.clients, client)
			close(client)
		})
	}
}

// Publish never blocks; a client whose buffer is full misses the event.
func (h *Hub) Publish(event models.LedgerEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to encode event", "type", event.Type, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client <- data:
		default:
			h.logger.Warn("dropping event for slow client", "type", event.Type, "seq", event.Seq)
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
