package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/ayusman/mudra/internal/translate"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// LiveHandler broadcasts the live translation state via WebSocket:
// the current candidate sign, hold progress, and the session text.
type LiveHandler struct {
	translator *translate.Translator
	clients    map[*websocket.Conn]bool
	mu         sync.RWMutex
	done       chan struct{}
	closeOnce  sync.Once
}

// NewLiveHandler creates a new LiveHandler with the given translator.
func NewLiveHandler(t *translate.Translator) *LiveHandler {
	h := &LiveHandler{
		translator: t,
		clients:    make(map[*websocket.Conn]bool),
		done:       make(chan struct{}),
	}
	go h.broadcast()
	return h
}

// Close stops the broadcast loop. Safe to call more than once.
func (h *LiveHandler) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// broadcast sends the translation state to all connected clients.
func (h *LiveHandler) broadcast() {
	ticker := time.NewTicker(66 * time.Millisecond) // ~15 FPS
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case <-ticker.C:
		}

		h.mu.RLock()
		if len(h.clients) == 0 {
			h.mu.RUnlock()
			continue
		}
		h.mu.RUnlock()

		sess := h.translator.Session()
		msg, _ := json.Marshal(map[string]any{
			"candidate": string(h.translator.Candidate()),
			"confirmed": string(h.translator.Confirmed()),
			"progress":  h.translator.Progress(),
			"text":      sess.Snapshot(),
			"stats":     sess.Stats(),
			"timestamp": time.Now().UnixMilli(),
		})

		h.mu.RLock()
		for conn := range h.clients {
			conn.WriteMessage(websocket.TextMessage, msg)
		}
		h.mu.RUnlock()
	}
}
