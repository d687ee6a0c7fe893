package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	c := NewConfig()

	assert.False(t, c.IsDisabled("CV06"))
	assert.Equal(t, SeverityWarning, c.GetSeverity("CV06", SeverityWarning))
	assert.Nil(t, c.GetRuleOptions("CV06"))
}

func TestConfigOverrides(t *testing.T) {
	c := NewConfig().
		Disable("CV06").
		SetSeverity("OR01", SeverityError).
		SetRuleOptions("CV06", map[string]any{"multiline_newline": true})

	assert.True(t, c.IsDisabled("CV06"))
	assert.False(t, c.IsDisabled("OR01"))
	assert.Equal(t, SeverityError, c.GetSeverity("OR01", SeverityWarning))
	assert.Equal(t, map[string]any{"multiline_newline": true}, c.GetRuleOptions("CV06"))
}

func TestConfigNilSafe(t *testing.T) {
	var c *Config

	assert.False(t, c.IsDisabled("CV06"))
	assert.Equal(t, SeverityHint, c.GetSeverity("CV06", SeverityHint))
	assert.Nil(t, c.GetRuleOptions("CV06"))
}

func TestBoolOption(t *testing.T) {
	opts := map[string]any{"on": true, "off": false, "mistyped": "yes"}

	assert.True(t, BoolOption(opts, "on", false))
	assert.False(t, BoolOption(opts, "off", true))
	assert.True(t, BoolOption(opts, "mistyped", true), "mistyped value falls back")
	assert.True(t, BoolOption(opts, "missing", true))
	assert.False(t, BoolOption(nil, "on", false))
}
