// Package prompt compiles tuning parameters into system instructions for the
// language model. Everything here is pure and deterministic.
package prompt

import (
	"fmt"
	"strings"

	"github.com/kdduha/slangbot/internal/models"
)

// ExplanationInstruction compiles the system instruction for explaining slang.
// The Markdown Table format switches to the table-only template.
func ExplanationInstruction(p models.ExplanationParameters) string {
	if p.Format == models.FormatMarkdownTable {
		return tableInstruction(p)
	}
	return narrativeInstruction(p)
}

func tableInstruction(p models.ExplanationParameters) string {
	var b strings.Builder
	b.WriteString(tableIntro)
	b.WriteString("\n" + separator + "\n")
	b.WriteString("Parameters for content generation:\n")
	fmt.Fprintf(&b, "- **Tonal Matrix (Tone):** The content in the table should have a %q tone.\n", p.Tone)
	fmt.Fprintf(&b, "- **Recipient Profile (Audience):** The explanation should be tailored for this audience: %q.\n", persona(p))
	fmt.Fprintf(&b, "- **Data Stream (Verbosity):** The required level of detail is %d/11, which means: %q.\n", p.Verbosity, scale(verbosityScale, p.Verbosity))
	fmt.Fprintf(&b, "- **Intel Depth (Complexity):** The required technical depth is %d/11, which means: %q.\n", p.Complexity, scale(complexityScale, p.Complexity))
	fmt.Fprintf(&b, "- **Response Language:** Your entire response, including all table content and headers, must be in **%s**. If 'Auto-Detect', infer the language from the user's slang term.\n", LanguageName(p.Language))
	if p.NegativePrompt != "" {
		fmt.Fprintf(&b, "- **Constraints (Crucial):** You must strictly avoid the following when generating the content: %q.\n", p.NegativePrompt)
	}
	b.WriteString(separator + "\n")
	b.WriteString(tableRules)
	return b.String()
}

func narrativeInstruction(p models.ExplanationParameters) string {
	var b strings.Builder
	b.WriteString(narrativeIntro)
	b.WriteString("\n" + separator + "\n")
	b.WriteString("Parameters for your explanation:\n")
	fmt.Fprintf(&b, "- **Recipient Profile (Audience):** Tailor your explanation for this person: %q.\n", persona(p))
	fmt.Fprintf(&b, "- **Tonal Matrix (Vibe):** Your explanation should have a %q tone.\n", p.Tone)
	fmt.Fprintf(&b, "- **Output Format (Style):** The desired output format is %q. If 'Auto', infer the best format. For 'Bullet Points', make it snappy. For 'Paragraph', make it a smooth read.\n", p.Format)
	fmt.Fprintf(&b, "- **Data Stream (Length):** The required length is %d/11, which means: %q.\n", p.Verbosity, scale(verbosityScale, p.Verbosity))
	fmt.Fprintf(&b, "- **Intel Depth (Complexity):** The required depth is %d/11, which means: %q.\n", p.Complexity, scale(complexityScale, p.Complexity))
	fmt.Fprintf(&b, "- **Response Language:** Your entire response must be in **%s**. If set to 'Auto-Detect', you should infer the most appropriate language based on the slang term provided by the user.\n", LanguageName(p.Language))
	if p.NegativePrompt != "" {
		fmt.Fprintf(&b, "- **No-Go Words (Crucial):** Strictly avoid the following topics or words: %q.\n", p.NegativePrompt)
	}
	b.WriteString(separator + "\n")
	b.WriteString(narrativeRules)
	return b.String()
}

// GenerationInstruction compiles the system instruction for inventing slang.
// The model is always asked for a JSON object with four string keys.
func GenerationInstruction(p models.GenerationParameters) string {
	task := wordTask
	if p.GenerationType == models.GenerationSaying {
		task = sayingTask
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are the \"Slang Synthesizer\" of Slangbot, a creative AI that specializes in coining new, humorous, and imaginative slang. %s\n", task)
	b.WriteString(separator + "\n")
	b.WriteString("Parameters for your invention:\n")
	fmt.Fprintf(&b, "- **Language of Origin:** The slang must be created for the **%s** language and culture. The term/saying itself, its definition, and its example should feel natural for a native speaker of that language.\n", LanguageName(p.Language))
	fmt.Fprintf(&b, "- **Era/Genre:** The slang should sound like it's from the %q era.\n", p.EffectiveEra())
	fmt.Fprintf(&b, "- **Word Style:** The word/saying itself should be %q.\n", p.EffectiveWordStyle())
	fmt.Fprintf(&b, "- **Formality:** The slang should fit a %q context.\n", p.EffectiveFormality())
	fmt.Fprintf(&b, "- **Creativity Level:** The required creativity is %d/11, which means: %q.\n", p.Creativity, scale(creativityScale, p.Creativity))
	fmt.Fprintf(&b, "- **Humor Level:** The desired humor level is %d/11, which means: %q.\n", p.Humor, scale(humorScale, p.Humor))
	if p.GenerationType == models.GenerationSaying {
		b.WriteString(sayingConstraint + "\n")
	}
	b.WriteString(separator + "\n")
	b.WriteString(generationRules)
	return b.String()
}

// Explanation builds the text-mode request for explaining userInput.
func Explanation(userInput string, p models.ExplanationParameters) models.CompletionRequest {
	return models.CompletionRequest{
		SystemInstruction: ExplanationInstruction(p),
		Content:           userInput,
		Mode:              models.ResponseText,
		Sampling:          ExplanationSampling,
	}
}

// Generation builds the JSON-mode request for inventing slang from seed.
func Generation(seed string, p models.GenerationParameters) models.CompletionRequest {
	return models.CompletionRequest{
		SystemInstruction: GenerationInstruction(p),
		Content:           fmt.Sprintf(seedTemplate, seed),
		Mode:              models.ResponseJSON,
		Sampling:          GenerationSampling,
	}
}

func persona(p models.ExplanationParameters) string {
	if v := p.EffectivePersona(); strings.TrimSpace(v) != "" {
		return v
	}
	return defaultPersona
}

// scale looks up a 1..11 phrase, clamping values outside the range.
func scale(table [models.MaxScale + 1]string, v int) string {
	v = min(max(v, models.MinScale), models.MaxScale)
	return table[v]
}
