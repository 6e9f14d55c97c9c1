package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/novelscope/novelscope/internal/analysis"
	"github.com/novelscope/novelscope/internal/models"
)

// handleStage runs one analysis stage against a session. Stage errors caused
// by missing prerequisites are client errors; oracle failures are 502s so the
// front end can tell "you skipped a step" apart from "the model is down".
func (h *Handler) handleStage(w http.ResponseWriter, r *http.Request, session *models.AnalysisSession, action string) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	switch action {
	case "summarize":
		if err := h.analysisService.Summarize(ctx, session); err != nil {
			h.writeStageError(w, err)
			return
		}
		if err := h.analysisService.TranslateSummary(ctx, session); err != nil {
			h.writeStageError(w, err)
			return
		}
		h.writeJSON(w, session)
	case "characters":
		fallback, err := h.analysisService.ExtractCharacters(ctx, session)
		if err != nil {
			h.writeStageError(w, err)
			return
		}
		h.writeJSON(w, map[string]any{
			"session":      session,
			"manual_entry": fallback,
		})
	case "personality":
		var request struct {
			CharacterName string `json:"character_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err := h.analysisService.InferPersonality(ctx, session, request.CharacterName); err != nil {
			h.writeStageError(w, err)
			return
		}
		h.writeJSON(w, session)
	case "persona":
		h.handlePersona(w, r, session)
	case "final-summary":
		if err := h.analysisService.FinalSummarize(ctx, session); err != nil {
			h.writeStageError(w, err)
			return
		}
		h.writeJSON(w, session)
	default:
		h.writeError(w, "Unknown analysis stage: "+action, http.StatusNotFound)
	}
}

// handlePersona accepts an optional edited profile so users can tweak the
// inferred scores before the rewrite, matching the slider workflow.
func (h *Handler) handlePersona(w http.ResponseWriter, r *http.Request, session *models.AnalysisSession) {
	var request struct {
		CharacterName string                     `json:"character_name"`
		Profile       *models.PersonalityProfile `json:"profile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	name := request.CharacterName
	if name == "" {
		name = session.CharacterName
	}

	profile := models.DefaultProfile()
	switch {
	case request.Profile != nil:
		profile = *request.Profile
	case session.Personality != nil:
		profile = *session.Personality
	}

	if err := h.analysisService.PersonaRewrite(r.Context(), session, name, profile); err != nil {
		h.writeStageError(w, err)
		return
	}
	h.writeJSON(w, session)
}

func (h *Handler) writeStageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analysis.ErrNoNovelText),
		errors.Is(err, analysis.ErrNoSummary),
		errors.Is(err, analysis.ErrNoPerspective),
		errors.Is(err, analysis.ErrNoCharacterName):
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var rawErr *analysis.RawResponseError
	if errors.As(err, &rawErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		if encErr := json.NewEncoder(w).Encode(map[string]string{
			"error":        "Model response could not be parsed: " + rawErr.Err.Error(),
			"raw_response": rawErr.Raw,
		}); encErr != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.writeError(w, err.Error(), http.StatusBadGateway)
}
