package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootVersionFlag(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := executeRoot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlfix")
	assert.Contains(t, out, Version)
}

func TestRootRejectsUnknownDialect(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := executeRoot(t, "-d", "mssql", "lint")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dialect")
}

func TestRootLintWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "sqlfix.yaml"), []byte(`
lint:
  rules:
    CV06:
      require_final_semicolon: true
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "q.sql"), []byte("SELECT 1\n"), 0o644))

	out, err := executeRoot(t, "lint", ".")
	require.Error(t, err, "missing final terminator is reported")
	assert.Contains(t, out, "CV06")

	// The same file passes once the option is off.
	require.NoError(t, os.Remove(filepath.Join(dir, "sqlfix.yaml")))
	out, err = executeRoot(t, "lint", ".")
	require.NoError(t, err)
	assert.Contains(t, out, "No lint issues found")
}

func TestRootFixAppliesConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "sqlfix.yaml"), []byte(`
lint:
  rules:
    CV06:
      multiline_newline: true
`), 0o644))
	path := filepath.Join(dir, "q.sql")
	require.NoError(t, os.WriteFile(path, []byte("SELECT a\nFROM foo;\n"), 0o644))

	_, err := executeRoot(t, "fix", ".")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT a\nFROM foo\n;\n", string(data))
}
