package models

// HistoryEntry is one successful explanation kept in the history log.
type HistoryEntry struct {
	ID              int64                 `json:"id" yaml:"id"`
	Timestamp       string                `json:"timestamp" yaml:"timestamp"`
	UserInput       string                `json:"userInput" yaml:"userInput"`
	TuningOptions   ExplanationParameters `json:"tuningOptions" yaml:"tuningOptions"`
	GeneratedPrompt string                `json:"generatedPrompt" yaml:"generatedPrompt"`
}

// SharedRecipe is the payload of a `slang` share link.
type SharedRecipe struct {
	UserInput     string                `json:"userInput" yaml:"userInput"`
	TuningOptions ExplanationParameters `json:"tuningOptions" yaml:"tuningOptions"`
}

// SharedGenerationRecipe is the payload of a `recipe` share link.
type SharedGenerationRecipe struct {
	SeedConcept       string               `json:"seedConcept" yaml:"seedConcept"`
	GenerationOptions GenerationParameters `json:"generationOptions" yaml:"generationOptions"`
}
