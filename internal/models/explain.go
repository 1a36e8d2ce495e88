package models

// ExplainRequest represents request for explain endpoint
type ExplainRequest struct {
	Input string `json:"input" example:"What's the tea with 'rizz'?"`

	// Optional, defaults are used when omitted
	TuningOptions *ExplanationParameters `json:"tuningOptions"`
}

func (r ExplainRequest) Params() ExplanationParameters {
	if r.TuningOptions == nil {
		return DefaultExplanationParameters()
	}
	return *r.TuningOptions
}

type ExplainResponse struct {
	Artifact     Artifact      `json:"artifact"`
	HistoryEntry *HistoryEntry `json:"historyEntry,omitempty"`
}

// GenerateRequest represents request for generate endpoint
type GenerateRequest struct {
	SeedConcept string `json:"seedConcept" example:"The feeling when your code works on the first try"`

	// Optional, defaults are used when omitted
	GenerationOptions *GenerationParameters `json:"generationOptions"`
}

func (r GenerateRequest) Params() GenerationParameters {
	if r.GenerationOptions == nil {
		return DefaultGenerationParameters()
	}
	return *r.GenerationOptions
}

type GenerateResponse struct {
	Artifact Artifact `json:"artifact"`
	CopyText string   `json:"copyText"`
}

// PromptResponse is a compiled system instruction preview.
type PromptResponse struct {
	SystemInstruction string `json:"systemInstruction"`
	ResponseMode      string `json:"responseMode" example:"text"`
}

type ErrorResponse struct {
	Code    string `json:"code" example:"VALIDATION"`
	Message string `json:"message"`
}
