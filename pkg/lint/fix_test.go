package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/sqlfix/pkg/cst"
)

func TestConflictingEdits(t *testing.T) {
	a := cst.NewTerminator(";")
	b := cst.NewNewline()

	tests := []struct {
		name     string
		edits    []Edit
		conflict bool
	}{
		{
			name:  "empty",
			edits: nil,
		},
		{
			name:  "insert and delete on different anchors",
			edits: []Edit{InsertAfter(a, cst.NewTerminator(";")), Delete(b)},
		},
		{
			name:  "two deletes on one anchor",
			edits: []Edit{Delete(a), Delete(a)},
		},
		{
			name:     "delete plus insert on one anchor",
			edits:    []Edit{Delete(a), InsertAfter(a, cst.NewTerminator(";"))},
			conflict: true,
		},
		{
			name:     "delete plus replace on one anchor",
			edits:    []Edit{Replace(a, cst.NewNewline()), Delete(a)},
			conflict: true,
		},
		{
			name:  "replace without delete",
			edits: []Edit{Replace(a, cst.NewNewline()), Delete(b)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.conflict, ConflictingEdits(tt.edits))
		})
	}
}

func TestFixable(t *testing.T) {
	assert.False(t, Diagnostic{}.Fixable())
	assert.True(t, Diagnostic{Fixes: []Fix{{}}}.Fixable())
}

func TestEditOpString(t *testing.T) {
	assert.Equal(t, "insert_after", EditInsertAfter.String())
	assert.Equal(t, "insert_before", EditInsertBefore.String())
	assert.Equal(t, "replace", EditReplace.String())
	assert.Equal(t, "delete", EditDelete.String())
}
