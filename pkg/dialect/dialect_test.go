package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBuiltins(t *testing.T) {
	for _, name := range []string{"ansi", "duckdb", "postgres", "snowflake", "databricks", "oracle"} {
		d, ok := Get(name)
		require.True(t, ok, name)
		assert.Equal(t, name, d.GetName())
	}

	_, ok := Get("mssql")
	assert.False(t, ok)
}

func TestGetCaseInsensitive(t *testing.T) {
	d, ok := Get("Oracle")
	require.True(t, ok)
	assert.Equal(t, "oracle", d.Name)
}

func TestTerminators(t *testing.T) {
	ansi, _ := Get("ansi")
	assert.Equal(t, []string{";"}, ansi.Terminators())

	oracle, _ := Get("oracle")
	assert.Equal(t, []string{";", "/"}, oracle.Terminators())
	assert.Equal(t, []string{"/"}, oracle.ExtraTerminators)
}

func TestList(t *testing.T) {
	names := List()
	assert.Contains(t, names, "ansi")
	assert.Contains(t, names, "oracle")
	assert.IsIncreasing(t, names)
}
