package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// HandleStatic serves the single-page front end from the static directory.
func (h *Handler) HandleStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := r.URL.Path
	if path == "/" {
		path = "/index.html"
	}

	// Keep requests inside the static dir
	cleaned := filepath.Clean(path)
	if strings.Contains(cleaned, "..") {
		h.writeError(w, "Invalid path", http.StatusBadRequest)
		return
	}

	fullPath := filepath.Join("static", cleaned)
	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		h.writeError(w, "Not found", http.StatusNotFound)
		return
	}

	http.ServeFile(w, r, fullPath)
}
