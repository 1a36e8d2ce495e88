package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/kdduha/slangbot/internal/errors"
	"github.com/kdduha/slangbot/internal/models"
)

func TestJSON_FenceWrapped(t *testing.T) {
	raw := "```json\n{\"term\":\"a\",\"definition\":\"b\",\"example\":\"c\",\"origin\":\"d\"}\n```"

	got, err := JSON(raw)

	require.NoError(t, err)
	assert.Equal(t, models.NewSlangResult{Term: "a", Definition: "b", Example: "c", Origin: "d"}, got)
}

func TestJSON_Variants(t *testing.T) {
	want := models.NewSlangResult{Term: "Giga-cringe", Definition: "b", Example: "c", Origin: "d"}
	body := `{"term":"Giga-cringe","definition":"b","example":"c","origin":"d"}`

	tests := map[string]string{
		"bare":              body,
		"padded":            "\n\t  " + body + "  \n",
		"fence without tag": "```\n" + body + "\n```",
		"fence single line": "```" + body + "```",
		"fence with spaces": "  ```JSON  \n" + body + "\n  ```  ",
		"extra keys":        `{"term":"Giga-cringe","definition":"b","example":"c","origin":"d","mood":"chaotic"}`,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := JSON(raw)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestJSON_Failures(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"whitespace":     "   \n ",
		"empty fence":    "```json\n```",
		"not json":       "Here is your slang: yeet",
		"array":          `[{"term":"a"}]`,
		"missing keys":   `{"term":"a"}`,
		"empty value":    `{"term":"a","definition":"","example":"c","origin":"d"}`,
		"blank value":    `{"term":"a","definition":"b","example":"   ","origin":"d"}`,
		"non-string":     `{"term":"a","definition":"b","example":"c","origin":42}`,
		"truncated json": `{"term":"a","definition":"b"`,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := JSON(raw)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.KindMalformedResponse), "got %v", err)
		})
	}
}

func TestJSON_MissingKeysMessage(t *testing.T) {
	_, err := JSON(`{"term":"a"}`)

	e, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, msgIncomplete, e.Message)
}

func TestText(t *testing.T) {
	got, err := Text("  **rizz** means charisma \n")
	require.NoError(t, err)
	assert.Equal(t, "**rizz** means charisma", got)

	_, err = Text(" \n\t")
	assert.True(t, apperrors.Is(err, apperrors.KindEmptyResponse))
}

func TestStripFence_LeavesInnerBackticks(t *testing.T) {
	assert.Equal(t, "plain `code` text", StripFence("plain `code` text"))
}
