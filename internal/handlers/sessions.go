package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/novelscope/novelscope/internal/models"
)

func (h *Handler) HandleSessions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		sessions := h.sessionStore.GetAll()
		sessionList := make([]*models.AnalysisSession, 0, len(sessions))
		for _, session := range sessions {
			sessionList = append(sessionList, session)
		}
		h.writeJSON(w, sessionList)
	case "POST":
		h.handleCreateSession(w, r)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Title string `json:"title"` // translated catalog title
		Text  string `json:"text"`  // or raw novel text
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	var novelTitle, novelText string
	switch {
	case request.Title != "":
		englishTitle, ok := h.titleMap[request.Title]
		if !ok {
			h.writeError(w, "Unknown catalog title: "+request.Title, http.StatusBadRequest)
			return
		}
		text, ok := h.books[englishTitle]
		if !ok || text == "" {
			h.writeError(w, "No text stored for title: "+englishTitle, http.StatusBadRequest)
			return
		}
		novelTitle = englishTitle
		novelText = text
	case strings.TrimSpace(request.Text) != "":
		novelText = request.Text
	default:
		h.writeError(w, "Either title or text is required", http.StatusBadRequest)
		return
	}

	session := h.newSession(novelTitle, novelText)
	h.writeJSON(w, session)
}

func (h *Handler) newSession(title, text string) *models.AnalysisSession {
	session := &models.AnalysisSession{
		ID:          uuid.NewString(),
		NovelTitle:  title,
		NovelText:   text,
		NovelLength: len(text),
		CreatedAt:   time.Now(),
	}
	h.sessionStore.Set(session.ID, session)
	return session
}

// HandleSessionDetail routes /api/sessions/{id} and
// /api/sessions/{id}/{action}
func (h *Handler) HandleSessionDetail(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	sessionID, action, _ := strings.Cut(rest, "/")

	session, ok := h.getSessionOrError(w, sessionID)
	if !ok {
		return
	}

	if action != "" {
		h.handleStage(w, r, session, action)
		return
	}

	switch r.Method {
	case "GET":
		h.writeJSON(w, session)
	case "DELETE":
		h.sessionStore.Delete(sessionID)
		h.writeJSON(w, map[string]string{"message": "Session deleted"})
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
