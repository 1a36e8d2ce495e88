package models

import (
	"fmt"
	"slices"
)

// CustomPreset activates the paired freeform field of a preset parameter.
const CustomPreset = "Custom..."

const (
	MinScale = 1
	MaxScale = 11
)

type Tone string

const (
	ToneSassy      Tone = "Sassy & Fun"
	ToneScholarly  Tone = "Scholarly"
	ToneSimple     Tone = "Simple & Clear"
	ToneLikeImFive Tone = "Like I'm 5"
	ToneDramatic   Tone = "Dramatic & Theatrical"
	ToneCryptic    Tone = "Cryptic & Mysterious"
)

var Tones = []Tone{ToneSassy, ToneScholarly, ToneSimple, ToneLikeImFive, ToneDramatic, ToneCryptic}

type Format string

const (
	FormatAuto          Format = "Auto"
	FormatParagraph     Format = "Paragraph"
	FormatBulletPoints  Format = "Bullet Points"
	FormatJSON          Format = "JSON"
	FormatMarkdownTable Format = "Markdown Table"
)

var Formats = []Format{FormatAuto, FormatParagraph, FormatBulletPoints, FormatJSON, FormatMarkdownTable}

type GenerationType string

const (
	GenerationWord   GenerationType = "Word"
	GenerationSaying GenerationType = "Saying"
)

var GenerationTypes = []GenerationType{GenerationWord, GenerationSaying}

// Languages carry a decorative marker; prompt.LanguageName strips it.
var Languages = []string{
	"🇬🇧 English",
	"🇪🇸 Spanish",
	"🇫🇷 French",
	"🇩🇪 German",
	"🇯🇵 Japanese",
	"🤖 Auto-Detect",
}

var Personas = []string{
	"A Confused Parent",
	"A Fellow Gamer",
	"Your Best Friend",
	"A Marketing Executive",
	"A Time Traveler from 1890",
	"A History Professor",
	"A Sassy AI Assistant",
	CustomPreset,
}

var Eras = []string{
	"Modern Internet",
	"1990s Skater",
	"1980s Valley Girl",
	"1960s Hippie",
	"1920s Flapper",
	"Victorian Era",
	"Roaring Twenties",
	"Shakespearean",
	"Futuristic Cyberpunk",
	CustomPreset,
}

var WordStyles = []string{
	"Catchy & Short",
	"Weird & Complex",
	"Professional Buzzword",
	"Scientific Jargon",
	"Whimsical & Poetic",
	CustomPreset,
}

var FormalityStyles = []string{
	"Casual Street Slang",
	"Ironic Corporate Buzzword",
	"Poetic & Flowery",
	"Blunt & Direct",
	CustomPreset,
}

// ExplanationParameters tune how a slang term gets explained.
type ExplanationParameters struct {
	Tone           Tone   `json:"tone" yaml:"tone" example:"Simple & Clear"`
	Format         Format `json:"format" yaml:"format" example:"Auto"`
	Verbosity      int    `json:"verbosity" yaml:"verbosity" example:"5"`
	Complexity     int    `json:"complexity" yaml:"complexity" example:"5"`
	Persona        string `json:"persona" yaml:"persona" example:"A Confused Parent"`
	CustomPersona  string `json:"customPersona,omitempty" yaml:"customPersona,omitempty"`
	NegativePrompt string `json:"negativePrompt" yaml:"negativePrompt"`
	Language       string `json:"language" yaml:"language" example:"🇬🇧 English"`
}

// GenerationParameters tune how a new slang term gets invented.
type GenerationParameters struct {
	Era             string         `json:"era" yaml:"era" example:"Modern Internet"`
	CustomEra       string         `json:"customEra,omitempty" yaml:"customEra,omitempty"`
	WordStyle       string         `json:"wordStyle" yaml:"wordStyle" example:"Catchy & Short"`
	CustomWordStyle string         `json:"customWordStyle,omitempty" yaml:"customWordStyle,omitempty"`
	Formality       string         `json:"formality" yaml:"formality" example:"Casual Street Slang"`
	CustomFormality string         `json:"customFormality,omitempty" yaml:"customFormality,omitempty"`
	Creativity      int            `json:"creativity" yaml:"creativity" example:"5"`
	Humor           int            `json:"humor" yaml:"humor" example:"5"`
	Language        string         `json:"language" yaml:"language" example:"🇬🇧 English"`
	GenerationType  GenerationType `json:"generationType" yaml:"generationType" example:"Word"`
}

func DefaultExplanationParameters() ExplanationParameters {
	return ExplanationParameters{
		Tone:       ToneSimple,
		Format:     FormatAuto,
		Verbosity:  5,
		Complexity: 5,
		Persona:    "A Confused Parent",
		Language:   "🇬🇧 English",
	}
}

func DefaultGenerationParameters() GenerationParameters {
	return GenerationParameters{
		Era:            "Modern Internet",
		WordStyle:      "Catchy & Short",
		Formality:      "Casual Street Slang",
		Creativity:     5,
		Humor:          5,
		Language:       "🇬🇧 English",
		GenerationType: GenerationWord,
	}
}

// ResolvePreset returns the freeform value when the preset is the custom sentinel.
func ResolvePreset(preset, custom string) string {
	if preset == CustomPreset {
		return custom
	}
	return preset
}

func (p ExplanationParameters) EffectivePersona() string {
	return ResolvePreset(p.Persona, p.CustomPersona)
}

func (p GenerationParameters) EffectiveEra() string {
	return ResolvePreset(p.Era, p.CustomEra)
}

func (p GenerationParameters) EffectiveWordStyle() string {
	return ResolvePreset(p.WordStyle, p.CustomWordStyle)
}

func (p GenerationParameters) EffectiveFormality() string {
	return ResolvePreset(p.Formality, p.CustomFormality)
}

// Validate checks enumerations and scale ranges. Persona accepts any text
// so older clients that stored the freeform value directly keep working.
func (p ExplanationParameters) Validate() error {
	if !slices.Contains(Tones, p.Tone) {
		return fmt.Errorf("unknown tone %q", p.Tone)
	}
	if !slices.Contains(Formats, p.Format) {
		return fmt.Errorf("unknown format %q", p.Format)
	}
	if err := validateScale("verbosity", p.Verbosity); err != nil {
		return err
	}
	if err := validateScale("complexity", p.Complexity); err != nil {
		return err
	}
	if !slices.Contains(Languages, p.Language) {
		return fmt.Errorf("unknown language %q", p.Language)
	}
	return nil
}

func (p GenerationParameters) Validate() error {
	if err := validateScale("creativity", p.Creativity); err != nil {
		return err
	}
	if err := validateScale("humor", p.Humor); err != nil {
		return err
	}
	if !slices.Contains(Languages, p.Language) {
		return fmt.Errorf("unknown language %q", p.Language)
	}
	if !slices.Contains(GenerationTypes, p.GenerationType) {
		return fmt.Errorf("unknown generation type %q", p.GenerationType)
	}
	return nil
}

func validateScale(name string, v int) error {
	if v < MinScale || v > MaxScale {
		return fmt.Errorf("%s must be within %d..%d, got %d", name, MinScale, MaxScale, v)
	}
	return nil
}
