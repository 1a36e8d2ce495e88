package main

import "time"

type ExplainRequest struct {
	Input         string         `json:"input"`
	TuningOptions *TuningOptions `json:"tuningOptions,omitempty"`
}

type TuningOptions struct {
	Tone           string `json:"tone"`
	Format         string `json:"format"`
	Verbosity      int    `json:"verbosity"`
	Complexity     int    `json:"complexity"`
	Persona        string `json:"persona"`
	NegativePrompt string `json:"negativePrompt"`
	Language       string `json:"language"`
}

type GenerateRequest struct {
	SeedConcept string `json:"seedConcept"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type BenchResult struct {
	Endpoint string
	Case     string
	Duration time.Duration
	Bytes    int
	Err      error
}

type Agg struct {
	Count      int
	Failed     int
	Total      time.Duration
	TotalBytes int64
}
