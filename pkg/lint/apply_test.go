package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlfix/pkg/cst"
)

func diagWith(edits ...Edit) []Diagnostic {
	return []Diagnostic{{Fixes: []Fix{{Edits: edits}}}}
}

func TestApplyNoEdits(t *testing.T) {
	file := cst.Parse("SELECT 1 ;")
	assert.Equal(t, "SELECT 1 ;", Apply(file, nil))
}

func TestApplyLeafEdits(t *testing.T) {
	file := cst.Parse("SELECT 1 ;")
	// children: statement, whitespace, terminator, meta
	ws := file.Children[1]
	term := file.Children[2]
	require.Equal(t, cst.KindWhitespace, ws.Kind)
	require.Equal(t, cst.KindTerminator, term.Kind)

	t.Run("delete", func(t *testing.T) {
		out := Apply(file, diagWith(Delete(ws)))
		assert.Equal(t, "SELECT 1;", out)
	})

	t.Run("replace", func(t *testing.T) {
		out := Apply(file, diagWith(Replace(ws, cst.NewTerminator(";")), Delete(term)))
		assert.Equal(t, "SELECT 1;", out)
	})

	t.Run("insert before", func(t *testing.T) {
		out := Apply(file, diagWith(InsertBefore(term, cst.NewNewline())))
		assert.Equal(t, "SELECT 1 \n;", out)
	})

	t.Run("insert after multiple nodes", func(t *testing.T) {
		out := Apply(file, diagWith(InsertAfter(term, cst.NewNewline(), cst.NewTerminator(";"))))
		assert.Equal(t, "SELECT 1 ;\n;", out)
	})
}

func TestApplyStatementAnchor(t *testing.T) {
	// An insert anchored on a whole statement lands after its last leaf.
	file := cst.Parse("SELECT 1\n")
	stmt := file.Children[0]
	require.Equal(t, cst.KindStatement, stmt.Kind)

	out := Apply(file, diagWith(InsertAfter(stmt, cst.NewTerminator(";"))))
	assert.Equal(t, "SELECT 1;\n", out)
}

func TestApplyLeavesTreeUntouched(t *testing.T) {
	file := cst.Parse("SELECT 1 ;")
	ws := file.Children[1]

	Apply(file, diagWith(Delete(ws)))
	assert.Equal(t, "SELECT 1 ;", file.Text())
}
