package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kdduha/slangbot/internal/models"
)

var entries = []models.HistoryEntry{
	{ID: 2, Timestamp: "2025-01-01T00:00:02Z", UserInput: "sus", TuningOptions: models.DefaultExplanationParameters(), GeneratedPrompt: "suspicious"},
	{ID: 1, Timestamp: "2025-01-01T00:00:01Z", UserInput: "rizz", TuningOptions: models.DefaultExplanationParameters(), GeneratedPrompt: "charisma"},
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "xml")
	assert.Error(t, err)

	p, err := New(&bytes.Buffer{}, "")
	require.NoError(t, err)
	assert.Equal(t, FormatText, p.format)
}

func TestArtifact_PlainText(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(&buf, FormatText)
	require.NoError(t, err)

	require.NoError(t, p.Artifact(models.TextArtifact("**rizz** is charm"), models.GenerationWord))
	assert.Equal(t, "**rizz** is charm\n", buf.String())
}

func TestArtifact_SlangCard(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(&buf, FormatText, WithWidth(60))
	require.NoError(t, err)

	a := models.SlangArtifact(models.NewSlangResult{Term: "glitchy", Definition: "almost working", Example: "so glitchy", Origin: "dev talk"})
	require.NoError(t, p.Artifact(a, models.GenerationSaying))

	out := buf.String()
	for _, want := range []string{"Saying", "glitchy", "almost working", `"so glitchy"`, "dev talk"} {
		assert.Contains(t, out, want)
	}
}

func TestHistory_YAML(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(&buf, FormatYAML)
	require.NoError(t, err)
	require.NoError(t, p.History(entries))

	var got []models.HistoryEntry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, entries, got)
}

func TestHistory_JSON(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(&buf, FormatJSON)
	require.NoError(t, err)
	require.NoError(t, p.History(entries))

	assert.Contains(t, buf.String(), `"userInput": "sus"`)
	assert.Contains(t, buf.String(), `"generatedPrompt": "charisma"`)
}

func TestHistory_Text(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(&buf, FormatText)
	require.NoError(t, err)

	require.NoError(t, p.History(nil))
	assert.Contains(t, buf.String(), "No history yet.")

	buf.Reset()
	require.NoError(t, p.History(entries))
	assert.Contains(t, buf.String(), "sus")
	assert.Contains(t, buf.String(), "rizz")
}

func TestCopy(t *testing.T) {
	orig := clipboardWriteAll
	t.Cleanup(func() { clipboardWriteAll = orig })

	var copied string
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}

	require.NoError(t, Copy("Word: yeet"))
	assert.Equal(t, "Word: yeet", copied)

	clipboardWriteAll = func(string) error { return errors.New("no clipboard") }
	assert.Error(t, Copy("x"))
}
