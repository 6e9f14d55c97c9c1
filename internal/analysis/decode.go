package analysis

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/novelscope/novelscope/internal/models"
)

// The model is asked for JSON but the response is not schema-guaranteed:
// it routinely arrives wrapped in prose or markdown code fences. These
// decoders do best-effort structured extraction with explicit failure
// results so callers can branch on the fallback instead of recovering
// from a parse panic.

var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*?\]`)

// ExtractStringArray locates the first [...] substring in the response and
// parses it as a JSON array of strings. The second return value reports
// whether a usable array was found.
func ExtractStringArray(response string) ([]string, bool) {
	fragment := jsonArrayPattern.FindString(response)
	if fragment == "" {
		return nil, false
	}

	var items []string
	if err := json.Unmarshal([]byte(fragment), &items); err != nil {
		return nil, false
	}

	return items, true
}

// StripCodeFences removes markdown code fence markers around a response
func StripCodeFences(response string) string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}

// RawResponseError carries the unparsable model output so it can be shown
// to the operator for diagnosis.
type RawResponseError struct {
	Raw string
	Err error
}

func (e *RawResponseError) Error() string {
	return fmt.Sprintf("failed to parse personality response: %v", e.Err)
}

func (e *RawResponseError) Unwrap() error {
	return e.Err
}

// personalityPayload mirrors the requested JSON shape with optional scores
type personalityPayload struct {
	Openness          *float64 `json:"openness"`
	Conscientiousness *float64 `json:"conscientiousness"`
	Extraversion      *float64 `json:"extraversion"`
	Agreeableness     *float64 `json:"agreeableness"`
	Neuroticism       *float64 `json:"neuroticism"`
	Reasoning         string   `json:"reasoning"`
}

// ParsePersonality decodes a Big Five profile from the model response.
// Code fences are stripped and the first {...} object is used. Each score
// the model left out defaults to 50; out-of-range scores are clamped to
// [0,100]. A fully unparsable response yields a RawResponseError.
func ParsePersonality(response string) (models.PersonalityProfile, error) {
	cleaned := StripCodeFences(response)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return models.PersonalityProfile{}, &RawResponseError{
			Raw: response,
			Err: fmt.Errorf("no JSON object found in response"),
		}
	}

	var payload personalityPayload
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &payload); err != nil {
		return models.PersonalityProfile{}, &RawResponseError{Raw: response, Err: err}
	}

	profile := models.PersonalityProfile{
		Openness:          scoreOrDefault(payload.Openness),
		Conscientiousness: scoreOrDefault(payload.Conscientiousness),
		Extraversion:      scoreOrDefault(payload.Extraversion),
		Agreeableness:     scoreOrDefault(payload.Agreeableness),
		Neuroticism:       scoreOrDefault(payload.Neuroticism),
		Reasoning:         payload.Reasoning,
	}

	return profile, nil
}

func scoreOrDefault(v *float64) int {
	if v == nil {
		return models.DefaultScore
	}
	score := int(*v)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
