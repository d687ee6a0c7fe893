package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveMode(t *testing.T) {
	out := &bytes.Buffer{}

	// Auto resolves to markdown when not writing to a terminal.
	r := NewRenderer(out, out, ModeAuto)
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())

	assert.Equal(t, ModeJSON, NewRenderer(out, out, ModeJSON).EffectiveMode())
	assert.Equal(t, ModeText, NewRenderer(out, out, ModeText).EffectiveMode())
	assert.Equal(t, ModeMarkdown, NewRenderer(out, out, "").EffectiveMode())
}

func TestRendererWrites(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	r := NewRenderer(out, errOut, ModeText)

	r.Printf("a %d", 1)
	r.Println("b")
	r.Success("done")
	r.Errorf("boom %s", "x")

	assert.Equal(t, "a 1b\ndone\n", out.String())
	assert.Equal(t, "boom x", errOut.String())
}

func TestRendererJSON(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRenderer(out, out, ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"n": 1}))

	var got map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 1, got["n"])
}
