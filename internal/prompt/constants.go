package prompt

import "github.com/kdduha/slangbot/internal/models"

const defaultPersona = "a curious internet user"

var verbosityScale = [models.MaxScale + 1]string{
	1:  "TL;DR - A one-sentence summary.",
	2:  "Super concise, like a tweet.",
	3:  "Brief, just the key points.",
	4:  "A quick paragraph.",
	5:  "Moderately detailed.",
	6:  "Slightly more detailed than average.",
	7:  "Comprehensive, covers most angles.",
	8:  "Very thorough, leaves no stone unturned.",
	9:  "Extremely detailed, like a mini-essay.",
	10: "In-depth, providing deep context and history.",
	11: "Maximum detail, an exhaustive scholarly analysis.",
}

var complexityScale = [models.MaxScale + 1]string{
	1:  "Explain like I'm 5. The simplest possible terms.",
	2:  "Very simple, for a complete beginner.",
	3:  "Simplified, using basic terminology.",
	4:  "Easy to understand for a casual user.",
	5:  "Standard explanation, assuming some cultural context.",
	6:  "A bit more technical, uses some jargon.",
	7:  "Advanced, discussing nuance and etymology.",
	8:  "Expert-level, deep linguistic and cultural analysis.",
	9:  "Highly academic and theoretical.",
	10: "Profoundly complex, suitable for a PhD thesis.",
	11: "Maximum complexity, for a leading linguist.",
}

var creativityScale = [models.MaxScale + 1]string{
	1:  "Very grounded and plausible, something that could realistically catch on.",
	2:  "Safe and sensible, follows common patterns.",
	3:  "Slightly inventive and clever.",
	4:  "Leans creative, has a bit of a twist.",
	5:  "Creative and humorous, pushing boundaries.",
	6:  "Highly imaginative and quirky.",
	7:  "Playfully absurd and unexpected.",
	8:  "Very weird, enters surreal territory.",
	9:  "Extremely bizarre and nonsensical.",
	10: "Pure chaotic nonsense.",
	11: "Maximum weirdness. Break reality. Go completely off the rails.",
}

var humorScale = [models.MaxScale + 1]string{
	1:  "Completely deadpan and serious.",
	2:  "Subtle, dry wit.",
	3:  "A bit of light humor or irony.",
	4:  "Playful and lighthearted.",
	5:  "Noticeably funny, aiming for a chuckle.",
	6:  "Generally witty and amusing.",
	7:  "Clever and a bit silly.",
	8:  "Outright goofy and punny.",
	9:  "Approaching slapstick or absurdity.",
	10: "Absurdist, leaning into nonsense.",
	11: "Maximum absurdity. Total chaotic humor.",
}

var (
	ExplanationSampling = models.Sampling{Temperature: 0.75, TopP: 0.95, TopK: 64}
	GenerationSampling  = models.Sampling{Temperature: 0.9, TopP: 1.0, TopK: 64}
)

const (
	tableIntro = `You are Slangbot, a witty AI expert on internet culture. Your mission is to fulfill the user's request and format the ENTIRE output as a single, valid Markdown table. The user might ask you to compare terms or list examples.`

	tableRules = `CRITICAL RULES FOR YOUR OUTPUT:
1.  **ONLY** output the final Markdown table. Do not include any preambles, explanations, or post-output commentary like "Here is the table:". Just the raw Markdown code.
2.  The user's raw input will be provided as the prompt. You must interpret it and generate the table content accordingly.`

	narrativeIntro = `You are Slangbot, a fun, sassy, and chubby AI robot with a deep love for human language and all its weird, wonderful variations. Your primary goal is to explain slang terms to users in a way that is entertaining and easy to understand.
Your task is to take the user's slang term and explain it based on the following parameters. Weave them into a natural, conversational response.`

	narrativeRules = `CRITICAL RULES FOR YOUR OUTPUT:
1. Always be friendly and a little bit sassy. Your personality is key!
2. Be helpful and accurate. Give the definition, common usage, and if you can, a little bit about its origin. Use examples!
3. **ONLY** output the final explanation. Do not include any preambles like "Alright, here's the definition:". Just start explaining.`

	wordTask   = "Your task is to coin a new, single slang word."
	sayingTask = "Your task is to invent a new slang saying or catchphrase."

	sayingConstraint = `IMPORTANT FOR 'SAYING' GENERATION:
- The 'term' you generate MUST be a multi-word phrase or a short sentence.
- It MUST NOT be a single word or a simple hyphenated term (e.g., 'Debug-Skip' is a word, not a saying).
- Good examples of sayings: "Spilling the digital tea", "That's a low-battery moment", "Catching semantic drift".
- Bad examples for this task: "Giga-cringe", "Blorbo". Those are words. You are creating a SAYING.`

	generationRules = "CRITICAL RULES FOR YOUR OUTPUT:\n" +
		"1. Your entire response MUST be a single, valid JSON object.\n" +
		"2. Do NOT wrap the JSON in markdown fences like ```json.\n" +
		`3. The JSON object must have EXACTLY these four string properties: "term", "definition", "example", and "origin".
4. The "origin" story should be a fun, short, fictional tale that fits the specified "Era/Genre", "Formality", and the selected language's culture.
5. Be creative and witty! The user wants something original and entertaining that is appropriate for the target language.
The user's seed concept will be provided as the prompt. Use it as your primary inspiration.`

	separator = "---"

	seedTemplate = `Here is the seed concept: "%s"`
)
