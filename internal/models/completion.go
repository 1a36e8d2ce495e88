package models

// ResponseMode tells the gateway whether free text or a JSON object is expected.
type ResponseMode string

const (
	ResponseText ResponseMode = "text"
	ResponseJSON ResponseMode = "json"
)

// Sampling holds generation knobs forwarded to the upstream model.
type Sampling struct {
	Temperature float64
	TopP        float64
	TopK        int
}

// CompletionRequest is one round trip to the language model.
type CompletionRequest struct {
	SystemInstruction string
	Content           string
	Mode              ResponseMode
	Sampling          Sampling
}
