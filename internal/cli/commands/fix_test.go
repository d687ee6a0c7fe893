package commands

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixCommandRewritesFiles(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.sql", "SELECT 1 ;\n")
	good := writeFile(t, dir, "good.sql", "SELECT 2;\n")

	out, err := executeCommand(t, NewFixCommand, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "fixed")
	assert.Contains(t, out, "1 of 2 files fixed")

	data, err := os.ReadFile(bad)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;\n", string(data))

	data, err = os.ReadFile(good)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 2;\n", string(data), "clean file untouched")
}

func TestFixCommandConvergesMultiplePasses(t *testing.T) {
	dir := t.TempDir()
	// Repeated semicolons need one pass to collapse and one to relocate.
	path := writeFile(t, dir, "multi.sql", "SELECT 1 ;;\n")

	_, err := executeCommand(t, NewFixCommand, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;\n", string(data))
}

func TestFixCommandDryRun(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.sql", "SELECT 1 ;\n")

	out, err := executeCommand(t, NewFixCommand, "--dry-run", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "would fix")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 ;\n", string(data), "dry run writes nothing")
}

func TestFixCommandNothingToFix(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.sql", "SELECT 1;\n")

	out, err := executeCommand(t, NewFixCommand, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to fix")
}

func TestFixCommandDisableRule(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.sql", "SELECT 1 ;\n")

	_, err := executeCommand(t, NewFixCommand, "--disable", "CV06", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 ;\n", string(data))
}
