package models

import "time"

// PersonalityProfile is a Big Five (OCEAN) profile inferred for a character.
// Scores are on a 0-100 scale.
type PersonalityProfile struct {
	Openness          int    `json:"openness"`
	Conscientiousness int    `json:"conscientiousness"`
	Extraversion      int    `json:"extraversion"`
	Agreeableness     int    `json:"agreeableness"`
	Neuroticism       int    `json:"neuroticism"`
	Reasoning         string `json:"reasoning"`
}

// DefaultScore is used for any trait the model left out of its response
const DefaultScore = 50

// DefaultProfile returns a neutral profile
func DefaultProfile() PersonalityProfile {
	return PersonalityProfile{
		Openness:          DefaultScore,
		Conscientiousness: DefaultScore,
		Extraversion:      DefaultScore,
		Agreeableness:     DefaultScore,
		Neuroticism:       DefaultScore,
	}
}

// AnalysisSession holds the intermediate and final artifacts of one
// analysis pipeline run. It lives in process memory only and is never
// persisted across restarts.
type AnalysisSession struct {
	ID                string              `json:"id"`
	NovelTitle        string              `json:"novel_title,omitempty"`
	NovelText         string              `json:"-"`
	NovelLength       int                 `json:"novel_length"`
	BaseSummary       string              `json:"base_summary,omitempty"`
	TranslatedSummary string              `json:"translated_summary,omitempty"`
	Characters        []string            `json:"characters,omitempty"`
	CharacterName     string              `json:"character_name,omitempty"`
	Personality       *PersonalityProfile `json:"personality,omitempty"`
	PerspectiveText   string              `json:"perspective_text,omitempty"`
	FinalSummary      string              `json:"final_summary,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
}

// ResetAnalysis clears every artifact derived from the novel text.
// Re-running "summarize" starts the pipeline over; the selected source
// survives.
func (s *AnalysisSession) ResetAnalysis() {
	s.BaseSummary = ""
	s.TranslatedSummary = ""
	s.Characters = nil
	s.CharacterName = ""
	s.Personality = nil
	s.PerspectiveText = ""
	s.FinalSummary = ""
}

// ResetNarration clears the persona narration and anything downstream of
// it, leaving the summary and character artifacts intact.
func (s *AnalysisSession) ResetNarration() {
	s.PerspectiveText = ""
	s.FinalSummary = ""
}
