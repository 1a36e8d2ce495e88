package models

import "fmt"

type ArtifactKind string

const (
	ArtifactText  ArtifactKind = "text"
	ArtifactSlang ArtifactKind = "slang"
)

// NewSlangResult is an invented term. All four fields are required.
type NewSlangResult struct {
	Term       string `json:"term" yaml:"term"`
	Definition string `json:"definition" yaml:"definition"`
	Example    string `json:"example" yaml:"example"`
	Origin     string `json:"origin" yaml:"origin"`
}

// MissingFields lists required fields that are empty.
func (r NewSlangResult) MissingFields() []string {
	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{"term", r.Term},
		{"definition", r.Definition},
		{"example", r.Example},
		{"origin", r.Origin},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Artifact is what a submission produced. Kind tells which value is set.
type Artifact struct {
	Kind  ArtifactKind    `json:"kind" yaml:"kind"`
	Text  string          `json:"text,omitempty" yaml:"text,omitempty"`
	Slang *NewSlangResult `json:"slang,omitempty" yaml:"slang,omitempty"`
}

func TextArtifact(text string) Artifact {
	return Artifact{Kind: ArtifactText, Text: text}
}

func SlangArtifact(result NewSlangResult) Artifact {
	return Artifact{Kind: ArtifactSlang, Slang: &result}
}

// CopyText formats the artifact for the clipboard. The label of a slang
// result follows the generation type that produced it.
func (a Artifact) CopyText(generationType GenerationType) string {
	switch a.Kind {
	case ArtifactText:
		return a.Text
	case ArtifactSlang:
		if a.Slang == nil {
			return ""
		}
		label := "Word"
		if generationType == GenerationSaying {
			label = "Saying"
		}
		return fmt.Sprintf("%s: %s\nDefinition: %s\nExample: \"%s\"\nOrigin: %s",
			label, a.Slang.Term, a.Slang.Definition, a.Slang.Example, a.Slang.Origin)
	default:
		return ""
	}
}
