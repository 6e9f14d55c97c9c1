package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/novelscope/novelscope/internal/analysis"
	"github.com/novelscope/novelscope/internal/models"
	"github.com/novelscope/novelscope/internal/storage"
)

type Handler struct {
	sessionStore    *storage.SessionStore
	analysisService *analysis.Service
	books           map[string]string // English title -> novel text
	titleMap        map[string]string // Korean title -> English title
}

func New(service *analysis.Service, books, titleMap map[string]string) *Handler {
	return &Handler{
		sessionStore:    storage.New(),
		analysisService: service,
		books:           books,
		titleMap:        titleMap,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		slog.Error("Unable to encode error response", "err", err)
	}
}

// Session helpers
func (h *Handler) getSessionOrError(w http.ResponseWriter, sessionID string) (*models.AnalysisSession, bool) {
	session, exists := h.sessionStore.Get(sessionID)
	if !exists {
		h.writeError(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}
