package recipe

import (
	"encoding/base64"
	"net/url"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/kdduha/slangbot/internal/errors"
	"github.com/kdduha/slangbot/internal/models"
)

func explanationCombos() []models.ExplanationParameters {
	var out []models.ExplanationParameters
	for i, persona := range models.Personas {
		p := models.DefaultExplanationParameters()
		p.Persona = persona
		p.Tone = models.Tones[i%len(models.Tones)]
		p.Format = models.Formats[i%len(models.Formats)]
		p.Language = models.Languages[i%len(models.Languages)]
		p.Verbosity = 1 + i%models.MaxScale
		p.Complexity = models.MaxScale - i%models.MaxScale
		if persona == models.CustomPreset {
			p.CustomPersona = ""
		}
		out = append(out, p)
	}
	custom := models.DefaultExplanationParameters()
	custom.Persona = models.CustomPreset
	custom.CustomPersona = `My "cool" aunt & <friends> 🦄`
	custom.NegativePrompt = "no slurs, no memes"
	return append(out, custom)
}

func generationCombos() []models.GenerationParameters {
	var out []models.GenerationParameters
	for i, era := range models.Eras {
		p := models.DefaultGenerationParameters()
		p.Era = era
		p.WordStyle = models.WordStyles[i%len(models.WordStyles)]
		p.Formality = models.FormalityStyles[i%len(models.FormalityStyles)]
		p.Language = models.Languages[i%len(models.Languages)]
		p.GenerationType = models.GenerationTypes[i%len(models.GenerationTypes)]
		p.Creativity = 1 + i
		p.Humor = models.MaxScale - i
		out = append(out, p)
	}
	custom := models.DefaultGenerationParameters()
	custom.Era, custom.CustomEra = models.CustomPreset, ""
	custom.WordStyle, custom.CustomWordStyle = models.CustomPreset, "Pirate"
	custom.Formality, custom.CustomFormality = models.CustomPreset, ""
	return append(out, custom)
}

func TestRoundTrip_Explanation(t *testing.T) {
	for _, in := range []string{"", "rizz", "What's the tea with 'rizz'? ✨\nnewline"} {
		for _, p := range explanationCombos() {
			r := models.SharedRecipe{UserInput: in, TuningOptions: p}

			token, err := Encode(r)
			require.NoError(t, err)
			assert.NotContains(t, token, "+")
			assert.NotContains(t, token, "/")
			assert.NotContains(t, token, "=")

			got, err := Decode(token)
			require.NoError(t, err)
			assert.Equal(t, r, got)
		}
	}
}

func TestRoundTrip_Generation(t *testing.T) {
	for _, p := range generationCombos() {
		r := models.SharedGenerationRecipe{SeedConcept: "code works first try", GenerationOptions: p}

		token, err := EncodeGeneration(r)
		require.NoError(t, err)

		got, err := DecodeGeneration(token)
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
}

func TestDecode_AcceptsStandardBase64(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte(`{"userInput":"sus","tuningOptions":{"tone":"Scholarly","format":"Auto","verbosity":3,"complexity":4,"persona":"A Fellow Gamer","negativePrompt":"","language":"🇫🇷 French"}}`))

	got, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "sus", got.UserInput)
	assert.Equal(t, models.ToneScholarly, got.TuningOptions.Tone)
	assert.Equal(t, "🇫🇷 French", got.TuningOptions.Language)
}

func TestDecode_Failures(t *testing.T) {
	b64 := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }
	tests := map[string]string{
		"empty":           "",
		"bad base64":      "%%%not-base64%%%",
		"bad json":        b64("{nope"),
		"missing options": b64(`{"userInput":"x"}`),
		"missing input":   b64(`{"tuningOptions":{}}`),
		"null options":    b64(`{"userInput":"x","tuningOptions":null}`),
		"empty options":   b64(`{"userInput":"x","tuningOptions":{}}`),
		"scale too high":  b64(`{"userInput":"x","tuningOptions":{"tone":"Scholarly","format":"Auto","verbosity":99,"complexity":4,"language":"🇫🇷 French"}}`),
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(token)
			assert.True(t, apperrors.Is(err, apperrors.KindDecode), "got %v", err)
		})
	}

	_, err := DecodeGeneration(b64(`{"seedConcept":"x"}`))
	assert.True(t, apperrors.Is(err, apperrors.KindDecode))

	_, err = DecodeGeneration(b64(`{"seedConcept":"x","generationOptions":{}}`))
	assert.True(t, apperrors.Is(err, apperrors.KindDecode))
}

func TestParseQuery(t *testing.T) {
	slangToken, err := Encode(models.SharedRecipe{UserInput: "rizz", TuningOptions: models.DefaultExplanationParameters()})
	require.NoError(t, err)
	recipeToken, err := EncodeGeneration(models.SharedGenerationRecipe{SeedConcept: "tea", GenerationOptions: models.DefaultGenerationParameters()})
	require.NoError(t, err)

	link, found, err := ParseQuery(url.Values{ParamRecipe: {recipeToken}})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.ModeGenerate, link.Mode)
	require.NotNil(t, link.Generation)
	assert.Equal(t, "tea", link.Generation.SeedConcept)
	assert.Nil(t, link.Explain)

	link, found, err = ParseQuery(url.Values{ParamSlang: {slangToken}, ParamRecipe: {recipeToken}})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.ModeExplain, link.Mode)
	assert.Nil(t, link.Generation)

	_, found, err = ParseQuery(url.Values{"other": {"1"}})
	require.NoError(t, err)
	assert.False(t, found)

	var stdToken string
	for i := range 64 {
		data, err := sonic.Marshal(models.SharedRecipe{UserInput: "sus" + strings.Repeat("~", i), TuningOptions: models.DefaultExplanationParameters()})
		require.NoError(t, err)
		if tok := base64.StdEncoding.EncodeToString(data); strings.Contains(tok, "+") {
			stdToken = tok
			break
		}
	}
	require.NotEmpty(t, stdToken, "no standard token with a plus sign")

	// A pasted link leaves `+` unescaped, which query decoding turns into a space.
	query, err := url.ParseQuery(ParamSlang + "=" + stdToken)
	require.NoError(t, err)
	require.Contains(t, query.Get(ParamSlang), " ")
	link, found, err = ParseQuery(query)
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, link.Explain)
	assert.Equal(t, models.DefaultExplanationParameters(), link.Explain.TuningOptions)

	_, found, err = ParseQuery(url.Values{ParamSlang: {"garbage!"}})
	assert.True(t, found)
	assert.True(t, apperrors.Is(err, apperrors.KindDecode))
}

func TestURL(t *testing.T) {
	got, err := URL("https://slangbot.example/app?utm=1", ParamSlang, "abc_-")
	require.NoError(t, err)
	assert.Equal(t, "https://slangbot.example/app?slang=abc_-", got)
}
