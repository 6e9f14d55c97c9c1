package translation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/novelscope/novelscope/internal/providers"
)

// Translator translates catalog titles into Korean in a single batch call.
// The oracle is asked for a strictly order-preserving, line-for-line
// translation; anything that breaks that contract is discarded in favor of
// an identity mapping so the catalog always stays usable.
type Translator struct {
	provider    providers.Provider
	model       string
	temperature float64
}

// New creates a Translator backed by the given provider
func New(provider providers.Provider, model string, temperature float64) *Translator {
	return &Translator{provider: provider, model: model, temperature: temperature}
}

// BuildPrompt builds the batch translation prompt for the given titles
func BuildPrompt(titles []string) string {
	var b strings.Builder
	b.WriteString("Translate the following book titles into Korean. Maintain the original order and provide only the translated titles, one per line. Do not add numbers or bullets.\n\n")
	b.WriteString(strings.Join(titles, "\n"))
	return b.String()
}

// Align zips a line-oriented oracle response with the original titles.
// It returns the translated→original map and whether the response was
// usable. A line-count mismatch yields (nil, false).
func Align(titles []string, response string) (map[string]string, bool) {
	lines := strings.Split(strings.TrimSpace(response), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	if len(lines) != len(titles) {
		return nil, false
	}

	translated := make(map[string]string, len(titles))
	for i, title := range titles {
		translated[lines[i]] = title
	}
	return translated, true
}

// IdentityMap maps every title to itself, the degraded-but-safe fallback
func IdentityMap(titles []string) map[string]string {
	m := make(map[string]string, len(titles))
	for _, title := range titles {
		m[title] = title
	}
	return m
}

// TranslateTitles translates the ordered title list. The result is never an
// error: on oracle failure or a count mismatch it falls back to the
// identity map with a warning. The second return value reports whether the
// translation was applied.
func (t *Translator) TranslateTitles(ctx context.Context, titles []string) (map[string]string, bool) {
	if len(titles) == 0 {
		return map[string]string{}, false
	}

	slog.Info("Translating catalog titles", "count", len(titles), "model", t.model)

	response, err := t.provider.GenerateText(ctx, providers.Config{
		Model:       t.model,
		Temperature: t.temperature,
		Prompt:      BuildPrompt(titles),
	})
	if err != nil {
		slog.Warn("Title translation failed, using original titles", "error", err)
		return IdentityMap(titles), false
	}

	translated, ok := Align(titles, response)
	if !ok {
		slog.Warn("Translated title count does not match input, using original titles",
			"titles", len(titles))
		return IdentityMap(titles), false
	}

	slog.Info("Title translation complete", "count", len(translated))
	return translated, true
}
