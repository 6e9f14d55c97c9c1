package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/novelscope/novelscope/internal/gemini"
	"github.com/novelscope/novelscope/internal/models"
	"github.com/novelscope/novelscope/internal/ollama"
	"github.com/novelscope/novelscope/internal/openai"
	"github.com/novelscope/novelscope/internal/providers"
)

const defaultTemperature = 0.7

// Stage-gating errors. Handlers map these to user-input errors (no oracle
// call was made) rather than oracle failures.
var (
	ErrNoNovelText     = errors.New("no novel text selected")
	ErrNoSummary       = errors.New("plot summary has not been generated yet")
	ErrNoPerspective   = errors.New("persona narration has not been generated yet")
	ErrNoCharacterName = errors.New("character name is required")
)

// Service runs the staged analysis pipeline against a text-generation
// provider. Each operation mutates only its own stage artifacts on the
// session; a failing oracle call leaves unrelated fields untouched.
type Service struct {
	provider     providers.Provider
	providerName string
	model        string
	temperature  float64
}

// NewService builds a Service from the environment. NOVELSCOPE_PROVIDER
// selects the provider (default gemini); the per-provider model env vars
// follow the provider defaults.
func NewService() (*Service, error) {
	providerName := os.Getenv("NOVELSCOPE_PROVIDER")
	if providerName == "" {
		providerName = "gemini"
	}

	s := &Service{providerName: providerName, temperature: defaultTemperature}

	switch providerName {
	case "gemini":
		s.provider = gemini.New()
		s.model = envOrDefault("GEMINI_MODEL", "gemini-1.5-flash-latest")
	case "ollama":
		s.provider = ollama.New()
		s.model = envOrDefault("OLLAMA_MODEL", "mistral-small3.2:24b")
	case "openai":
		s.provider = openai.New()
		s.model = envOrDefault("OPENAI_MODEL", "gpt-4o")
	default:
		return nil, fmt.Errorf("unsupported provider: %s", providerName)
	}

	return s, nil
}

// NewServiceWith builds a Service around an explicit provider
func NewServiceWith(provider providers.Provider, model string, temperature float64) *Service {
	return &Service{provider: provider, model: model, temperature: temperature}
}

// Model returns the model the service will call
func (s *Service) Model() string {
	return s.model
}

// CheckCredentials verifies the configured provider's credential is
// present. A missing credential is a fatal startup condition.
func (s *Service) CheckCredentials() error {
	switch s.providerName {
	case "gemini":
		_, err := gemini.APIKey()
		return err
	case "openai":
		if os.Getenv("OPENAI_API_KEY") == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		return nil
	default:
		return nil
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// generate issues one blocking oracle call and rejects empty responses
func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	response, err := s.provider.GenerateText(ctx, providers.Config{
		Model:       s.model,
		Temperature: s.temperature,
		Prompt:      prompt,
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(response) == "" {
		return "", fmt.Errorf("model returned an empty response")
	}
	return response, nil
}

// Summarize generates the base plot summary. Triggering it resets every
// downstream artifact first, returning the pipeline to the summarized
// stage; the selected source text survives.
func (s *Service) Summarize(ctx context.Context, session *models.AnalysisSession) error {
	if strings.TrimSpace(session.NovelText) == "" {
		return ErrNoNovelText
	}

	session.ResetAnalysis()

	slog.Info("Generating plot summary", "session_id", session.ID, "novel_length", len(session.NovelText))
	summary, err := s.generate(ctx, SummaryPrompt(session.NovelText))
	if err != nil {
		return fmt.Errorf("summary generation failed: %w", err)
	}

	session.BaseSummary = summary
	return nil
}

// TranslateSummary translates the base summary into Korean
func (s *Service) TranslateSummary(ctx context.Context, session *models.AnalysisSession) error {
	if session.BaseSummary == "" {
		return ErrNoSummary
	}

	translated, err := s.generate(ctx, TranslateSummaryPrompt(session.BaseSummary))
	if err != nil {
		return fmt.Errorf("summary translation failed: %w", err)
	}

	session.TranslatedSummary = translated
	return nil
}

// ExtractCharacters asks the model for the main characters. When the
// response contains no parsable array the character list is left empty and
// the returned flag is true; the user may enter a name manually.
func (s *Service) ExtractCharacters(ctx context.Context, session *models.AnalysisSession) (fallback bool, err error) {
	if session.BaseSummary == "" {
		return false, ErrNoSummary
	}

	response, err := s.generate(ctx, CharactersPrompt(session.BaseSummary))
	if err != nil {
		return false, fmt.Errorf("character extraction failed: %w", err)
	}

	characters, ok := ExtractStringArray(response)
	if !ok {
		slog.Warn("No character array found in model response", "session_id", session.ID)
		session.Characters = []string{}
		return true, nil
	}

	session.Characters = characters
	return false, nil
}

// InferPersonality asks the model for a Big Five profile of one character.
// A parse failure surfaces the raw response for diagnosis via
// RawResponseError.
func (s *Service) InferPersonality(ctx context.Context, session *models.AnalysisSession, characterName string) error {
	if session.BaseSummary == "" {
		return ErrNoSummary
	}
	if strings.TrimSpace(characterName) == "" {
		return ErrNoCharacterName
	}

	response, err := s.generate(ctx, PersonalityPrompt(characterName, session.BaseSummary))
	if err != nil {
		return fmt.Errorf("personality inference failed: %w", err)
	}

	profile, err := ParsePersonality(response)
	if err != nil {
		return err
	}

	session.CharacterName = characterName
	session.Personality = &profile
	return nil
}

// PersonaRewrite retells the story in first person through the character's
// personality. Triggering it resets the narration and final summary.
func (s *Service) PersonaRewrite(ctx context.Context, session *models.AnalysisSession, characterName string, profile models.PersonalityProfile) error {
	if session.BaseSummary == "" {
		return ErrNoSummary
	}
	if strings.TrimSpace(characterName) == "" {
		return ErrNoCharacterName
	}

	session.ResetNarration()
	session.CharacterName = characterName
	session.Personality = &profile

	slog.Info("Generating persona narration", "session_id", session.ID, "character", characterName)
	narration, err := s.generate(ctx, PersonaPrompt(characterName, FormatProfile(profile), session.BaseSummary))
	if err != nil {
		return fmt.Errorf("persona narration failed: %w", err)
	}

	session.PerspectiveText = narration
	return nil
}

// FinalSummarize condenses the persona narration
func (s *Service) FinalSummarize(ctx context.Context, session *models.AnalysisSession) error {
	if session.PerspectiveText == "" {
		return ErrNoPerspective
	}

	summary, err := s.generate(ctx, FinalSummaryPrompt(session.PerspectiveText))
	if err != nil {
		return fmt.Errorf("final summary failed: %w", err)
	}

	session.FinalSummary = summary
	return nil
}
