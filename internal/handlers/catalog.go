package handlers

import (
	"net/http"
	"sort"
)

// HandleCatalog lists the curated titles for the selection UI. Titles are
// the translated (Korean) keys; the map gives the reverse lookup to the
// original English title.
func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	titles := make([]string, 0, len(h.titleMap))
	for kt := range h.titleMap {
		titles = append(titles, kt)
	}
	sort.Strings(titles)

	h.writeJSON(w, map[string]any{
		"titles":    titles,
		"title_map": h.titleMap,
	})
}
