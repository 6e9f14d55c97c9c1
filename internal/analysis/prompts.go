package analysis

import (
	"fmt"
	"strings"

	"github.com/novelscope/novelscope/internal/models"
)

// SummaryPrompt asks for a detailed plot summary of the novel
func SummaryPrompt(novelText string) string {
	return fmt.Sprintf("Please provide a detailed summary of the key events from the following novel:\n\n%s", novelText)
}

// TranslateSummaryPrompt asks for a Korean translation of the summary
func TranslateSummaryPrompt(summary string) string {
	return fmt.Sprintf("Translate the following English text into Korean:\n\n%s", summary)
}

// CharactersPrompt asks for the main characters as a JSON array of strings
func CharactersPrompt(summary string) string {
	return fmt.Sprintf(`List the main characters that appear in the following plot summary.

Respond with ONLY a JSON array of character names, for example: ["Sherlock Holmes", "Dr. Watson"]
Do not add any commentary before or after the array.

Plot summary:
%s`, summary)
}

// PersonalityPrompt asks for a Big Five profile of one character as JSON
func PersonalityPrompt(characterName, summary string) string {
	return fmt.Sprintf(`Analyze the personality of the character '%s' based on the following plot summary, using the Big 5 (OCEAN) model.

Respond with ONLY a JSON object in the following format, with each score an integer from 0 to 100:

{
  "openness": 50,
  "conscientiousness": 50,
  "extraversion": 50,
  "agreeableness": 50,
  "neuroticism": 50,
  "reasoning": "Brief explanation of the scores"
}

Plot summary:
%s`, characterName, summary)
}

// PersonaPrompt asks for a first-person Korean retelling of the story
// through the character's personality.
func PersonaPrompt(characterName, profileBlock, summary string) string {
	return fmt.Sprintf(`You are the character '%s'.
Your personality is defined by the Big 5 model (OCEAN). Based on the provided plot summary, recount the story as if you personally experienced these events. Your narrative should be a first-person account that strongly reflects your unique personality profile through your inner thoughts, feelings, and reactions.
The story must be written in Korean.

---
**Character's Big 5 Personality Profile:**
%s
---

**Original Plot Summary:**
%s
`, characterName, profileBlock, summary)
}

// FinalSummaryPrompt asks for a short Korean summary of the persona narrative
func FinalSummaryPrompt(perspectiveText string) string {
	return fmt.Sprintf("Summarize the following first-person narrative in a few short paragraphs. Keep the narrator's voice and write the summary in Korean:\n\n%s", perspectiveText)
}

// FormatProfile renders a Big Five profile as the bullet list embedded in
// the persona prompt.
func FormatProfile(p models.PersonalityProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- **Openness:** %s (%d/100)\n", describeScore(p.Openness), p.Openness)
	fmt.Fprintf(&b, "- **Conscientiousness:** %s (%d/100)\n", describeScore(p.Conscientiousness), p.Conscientiousness)
	fmt.Fprintf(&b, "- **Extraversion:** %s (%d/100)\n", describeScore(p.Extraversion), p.Extraversion)
	fmt.Fprintf(&b, "- **Agreeableness:** %s (%d/100)\n", describeScore(p.Agreeableness), p.Agreeableness)
	fmt.Fprintf(&b, "- **Neuroticism (negative emotionality):** %s (%d/100)", describeScore(p.Neuroticism), p.Neuroticism)
	return b.String()
}

func describeScore(score int) string {
	switch {
	case score > 80:
		return "Very High"
	case score > 60:
		return "High"
	case score > 40:
		return "Moderate"
	case score > 20:
		return "Low"
	default:
		return "Very Low"
	}
}
