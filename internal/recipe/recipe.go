// Package recipe encodes explanation and generation inputs into compact
// URL-safe tokens for share links, and consumes those links again.
package recipe

import (
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"

	apperrors "github.com/kdduha/slangbot/internal/errors"
	"github.com/kdduha/slangbot/internal/models"
)

// Query parameters carrying a token.
const (
	ParamSlang  = "slang"
	ParamRecipe = "recipe"
)

// Encode serializes an explanation recipe into a token.
func Encode(r models.SharedRecipe) (string, error) {
	return encode(r)
}

// EncodeGeneration serializes a generation recipe into a token.
func EncodeGeneration(r models.SharedGenerationRecipe) (string, error) {
	return encode(r)
}

func encode(v any) (string, error) {
	data, err := sonic.Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

type wireRecipe struct {
	UserInput     *string                       `json:"userInput"`
	TuningOptions *models.ExplanationParameters `json:"tuningOptions"`
}

type wireGenerationRecipe struct {
	SeedConcept       *string                      `json:"seedConcept"`
	GenerationOptions *models.GenerationParameters `json:"generationOptions"`
}

// Decode parses a `slang` token.
func Decode(token string) (models.SharedRecipe, error) {
	var w wireRecipe
	if err := decode(token, &w); err != nil {
		return models.SharedRecipe{}, err
	}
	if w.UserInput == nil || w.TuningOptions == nil {
		return models.SharedRecipe{}, apperrors.NewDecode("share link is missing userInput or tuningOptions", nil)
	}
	if err := w.TuningOptions.Validate(); err != nil {
		return models.SharedRecipe{}, apperrors.NewDecode("share link carries invalid tuningOptions", err)
	}
	return models.SharedRecipe{UserInput: *w.UserInput, TuningOptions: *w.TuningOptions}, nil
}

// DecodeGeneration parses a `recipe` token.
func DecodeGeneration(token string) (models.SharedGenerationRecipe, error) {
	var w wireGenerationRecipe
	if err := decode(token, &w); err != nil {
		return models.SharedGenerationRecipe{}, err
	}
	if w.SeedConcept == nil || w.GenerationOptions == nil {
		return models.SharedGenerationRecipe{}, apperrors.NewDecode("share link is missing seedConcept or generationOptions", nil)
	}
	if err := w.GenerationOptions.Validate(); err != nil {
		return models.SharedGenerationRecipe{}, apperrors.NewDecode("share link carries invalid generationOptions", err)
	}
	return models.SharedGenerationRecipe{SeedConcept: *w.SeedConcept, GenerationOptions: *w.GenerationOptions}, nil
}

func decode(token string, v any) error {
	data, err := decodeBase64(strings.TrimSpace(token))
	if err != nil {
		return apperrors.NewDecode("share link token is not valid base64", err)
	}
	if err := sonic.Unmarshal(data, v); err != nil {
		return apperrors.NewDecode("share link token is not valid JSON", err)
	}
	return nil
}

// decodeBase64 accepts the URL-safe alphabet we emit and the padded standard
// alphabet older links were made with. An unescaped `+` in a standard token
// arrives as a space after query decoding, so spaces are read back as `+`.
func decodeBase64(token string) ([]byte, error) {
	if token == "" {
		return nil, base64.CorruptInputError(0)
	}
	token = strings.ReplaceAll(token, " ", "+")
	if strings.ContainsAny(token, "+/=") {
		return base64.StdEncoding.DecodeString(token)
	}
	return base64.RawURLEncoding.DecodeString(token)
}

// Link is a consumed share link. Exactly one recipe is set, matching Mode.
type Link struct {
	Mode       models.Mode
	Explain    *models.SharedRecipe
	Generation *models.SharedGenerationRecipe
}

// ParseQuery consumes at most one share link from query. `slang` wins over
// `recipe`. found is false when neither parameter is present.
func ParseQuery(query url.Values) (link Link, found bool, err error) {
	if token := query.Get(ParamSlang); token != "" {
		r, err := Decode(token)
		if err != nil {
			return Link{}, true, err
		}
		return Link{Mode: models.ModeExplain, Explain: &r}, true, nil
	}
	if token := query.Get(ParamRecipe); token != "" {
		r, err := DecodeGeneration(token)
		if err != nil {
			return Link{}, true, err
		}
		return Link{Mode: models.ModeGenerate, Generation: &r}, true, nil
	}
	return Link{}, false, nil
}

// URL joins base with a single share parameter.
func URL(base, param, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	u.RawQuery = url.Values{param: {token}}.Encode()
	return u.String(), nil
}
