package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Run("loads embedded extraction prompt", func(t *testing.T) {
		template, err := Get("extraction.json", "extract_requirements")
		require.NoError(t, err)
		assert.Contains(t, template, "requiredSkills")
		assert.Contains(t, template, "{{.Posting}}")
	})

	t.Run("unknown key is an error", func(t *testing.T) {
		_, err := Get("extraction.json", "no_such_prompt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no_such_prompt")
	})

	t.Run("unknown file is an error", func(t *testing.T) {
		_, err := Get("missing.json", "extract_requirements")
		require.Error(t, err)
	})
}

func TestMustGet(t *testing.T) {
	assert.NotPanics(t, func() {
		MustGet("extraction.json", "extract_requirements")
	})
	assert.Panics(t, func() {
		MustGet("extraction.json", "no_such_prompt")
	})
}

func TestFormat(t *testing.T) {
	template := "Posting:\n{{.Posting}}\nTitle: {{.Title}}"
	got := Format(template, map[string]string{
		"Posting": "Backend engineer wanted",
		"Title":   "Backend Engineer",
	})
	assert.Equal(t, "Posting:\nBackend engineer wanted\nTitle: Backend Engineer", got)
}
