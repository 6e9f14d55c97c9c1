package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const maxUploadBytes = 10 << 20 // 10MB

// HandleUpload accepts a .txt file and starts an analysis session from it,
// so novels outside the curated catalog can be analyzed too.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.writeError(w, "Unable to parse upload: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, "Missing file field: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".txt") {
		h.writeError(w, "Only .txt files are supported", http.StatusBadRequest)
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		h.writeError(w, "Unable to read file: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(content) > maxUploadBytes {
		h.writeError(w, "File exceeds the 10MB limit", http.StatusRequestEntityTooLarge)
		return
	}
	if !utf8.Valid(content) {
		h.writeError(w, "File is not valid UTF-8 text", http.StatusBadRequest)
		return
	}

	text := string(content)
	if strings.TrimSpace(text) == "" {
		h.writeError(w, "File is empty", http.StatusBadRequest)
		return
	}

	title := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	session := h.newSession(title, text)
	h.writeJSON(w, session)
}
