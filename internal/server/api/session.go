// Package api provides HTTP API handlers for the Mudra sign translation system.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ayusman/mudra/internal/speech"
	"github.com/ayusman/mudra/internal/translate"
)

// SessionHandler handles HTTP requests for the live text session.
type SessionHandler struct {
	translator *translate.Translator
	speaker    speech.Speaker
}

// NewSessionHandler creates a new SessionHandler. The speaker may be nil
// when no speech engine is available on the host.
func NewSessionHandler(t *translate.Translator, sp speech.Speaker) *SessionHandler {
	return &SessionHandler{translator: t, speaker: sp}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/session or /api/session/{action}
	path := strings.TrimPrefix(r.URL.Path, "/api/session")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.get(w, r)
		case http.MethodDelete:
			h.clear(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// Action endpoints: /api/session/{space|backspace|speak}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch path {
	case "space":
		h.translator.Session().AppendSpace()
		h.get(w, r)
	case "backspace":
		h.translator.Session().Backspace()
		h.get(w, r)
	case "speak":
		h.speak(w, r)
	default:
		writeError(w, http.StatusNotFound, "Unknown session action")
	}
}

type sessionResponse struct {
	Text      string   `json:"text"`
	History   []string `json:"history"`
	Signs     int      `json:"signs"`
	Words     int      `json:"words"`
	Candidate string   `json:"candidate"`
	Progress  float64  `json:"progress"`
}

// get handles GET /api/session and returns the current session state.
func (h *SessionHandler) get(w http.ResponseWriter, r *http.Request) {
	sess := h.translator.Session()
	stats := sess.Stats()

	writeJSON(w, http.StatusOK, sessionResponse{
		Text:      sess.Snapshot(),
		History:   sess.History(),
		Signs:     stats.Signs,
		Words:     stats.Words,
		Candidate: string(h.translator.Candidate()),
		Progress:  h.translator.Progress(),
	})
}

// clear handles DELETE /api/session and erases the session text.
func (h *SessionHandler) clear(w http.ResponseWriter, r *http.Request) {
	h.translator.Session().Clear()
	h.translator.Reset()
	w.WriteHeader(http.StatusNoContent)
}

// speak handles POST /api/session/speak and reads the session text aloud.
func (h *SessionHandler) speak(w http.ResponseWriter, r *http.Request) {
	if h.speaker == nil {
		writeError(w, http.StatusServiceUnavailable, "No speech engine available")
		return
	}

	text := h.translator.Session().Snapshot()
	if text == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.speaker.Speak(r.Context(), text); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to speak text")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
