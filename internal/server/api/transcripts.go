package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/session"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/translate"
)

// TranscriptsHandler handles HTTP requests for saved transcripts.
type TranscriptsHandler struct {
	store      *store.Store
	translator *translate.Translator
}

// NewTranscriptsHandler creates a new TranscriptsHandler. The translator
// may be nil; it is only needed to save the live session as a transcript.
func NewTranscriptsHandler(s *store.Store, t *translate.Translator) *TranscriptsHandler {
	return &TranscriptsHandler{store: s, translator: t}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *TranscriptsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/transcripts or /api/transcripts/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/transcripts")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type createTranscriptRequest struct {
	// Content to save. When empty, the current session text is saved
	// and the session is cleared.
	Content string `json:"content"`
}

type transcriptResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Signs     int    `json:"signs"`
	Words     int    `json:"words"`
	CreatedAt string `json:"created_at"`
}

type listTranscriptsResponse struct {
	Transcripts []transcriptResponse `json:"transcripts"`
}

// toResponse converts a store.Transcript to a transcriptResponse.
func toResponse(t *store.Transcript) transcriptResponse {
	return transcriptResponse{
		ID:        t.ID,
		Content:   t.Content,
		Signs:     t.Signs,
		Words:     t.Words,
		CreatedAt: t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// list handles GET /api/transcripts and returns all transcripts, newest first.
func (h *TranscriptsHandler) list(w http.ResponseWriter, r *http.Request) {
	transcripts, err := h.store.Transcripts().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list transcripts")
		return
	}

	response := listTranscriptsResponse{
		Transcripts: make([]transcriptResponse, 0, len(transcripts)),
	}

	for _, t := range transcripts {
		response.Transcripts = append(response.Transcripts, toResponse(t))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/transcripts/{id} and returns a single transcript.
func (h *TranscriptsHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	transcript, err := h.store.Transcripts().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Transcript not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get transcript")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(transcript))
}

// create handles POST /api/transcripts and saves a transcript. With an
// empty body or empty content it saves the live session, clearing it only
// after the save succeeds, mirroring the "save" button in the UI.
func (h *TranscriptsHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createTranscriptRequest
	if r.Body != nil {
		// An empty body is fine; a present but malformed one is not
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
	}

	transcript := &store.Transcript{ID: uuid.New().String()}

	// Set when saving the live session; cleared only once the save landed,
	// so a failed save never loses the user's text
	var sess *session.Session

	if req.Content != "" {
		transcript.Content = req.Content
		transcript.Signs = len([]rune(req.Content))
		transcript.Words = len(strings.Fields(req.Content))
	} else {
		if h.translator == nil {
			writeError(w, http.StatusBadRequest, "Content is required")
			return
		}
		sess = h.translator.Session()
		text := sess.Snapshot()
		if text == "" {
			writeError(w, http.StatusBadRequest, "Session is empty")
			return
		}
		stats := sess.Stats()
		transcript.Content = text
		transcript.Signs = stats.Signs
		transcript.Words = stats.Words
	}

	if err := h.store.Transcripts().Create(transcript); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create transcript")
		return
	}

	if sess != nil {
		sess.Clear()
	}

	writeJSON(w, http.StatusCreated, toResponse(transcript))
}

// delete handles DELETE /api/transcripts/{id} and removes a transcript.
func (h *TranscriptsHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Transcripts().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Transcript not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete transcript")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
