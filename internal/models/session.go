package models

type Mode string

const (
	ModeExplain  Mode = "explain"
	ModeGenerate Mode = "generate"
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
)

// SessionSnapshot is a read-only copy of the session controller state.
type SessionSnapshot struct {
	State             State                 `json:"state"`
	Mode              Mode                  `json:"mode"`
	Input             string                `json:"input"`
	TuningOptions     ExplanationParameters `json:"tuningOptions"`
	SeedConcept       string                `json:"seedConcept"`
	GenerationOptions GenerationParameters  `json:"generationOptions"`
	Artifact          *Artifact             `json:"artifact,omitempty"`
	Error             string                `json:"error,omitempty"`
}

type ModeRequest struct {
	Mode Mode `json:"mode" example:"generate"`
}

type SoundPreference struct {
	Enabled bool `json:"enabled"`
}

// ShareResponse carries a shareable deep link for the current session.
type ShareResponse struct {
	URL   string `json:"url"`
	Param string `json:"param" example:"slang"`
	Token string `json:"token"`
}
