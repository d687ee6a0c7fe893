package segments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlfix/pkg/cst"
	"github.com/leapstack-labs/sqlfix/pkg/token"
)

func leaf(kind cst.Kind, raw string) *cst.Node {
	return cst.NewLeaf(kind, raw, token.Position{})
}

// stream builds: word, ws, newline, comment, ws, terminator, meta.
func stream() []*cst.Node {
	return []*cst.Node{
		leaf(cst.KindWord, "x"),
		leaf(cst.KindWhitespace, " "),
		leaf(cst.KindNewline, "\n"),
		leaf(cst.KindInlineComment, "-- c"),
		leaf(cst.KindWhitespace, "  "),
		leaf(cst.KindTerminator, ";"),
		leaf(cst.KindMeta, ""),
	}
}

func TestReversed(t *testing.T) {
	nodes := stream()
	rev := Reversed(nodes)

	require.Len(t, rev, len(nodes))
	assert.Equal(t, nodes[len(nodes)-1], rev[0])
	assert.Equal(t, nodes[0], rev.Last())

	// The original slice is untouched.
	assert.Equal(t, cst.KindWord, nodes[0].Kind)
}

func TestTakeWhileFrom(t *testing.T) {
	nodes := stream()
	rev := Reversed(nodes)
	term := nodes[5]

	// Everything between the terminator and the preceding code, scanning
	// backward: ws, comment, newline, ws.
	run := rev.TakeWhileFrom(term, Not(IsCode()))
	require.Len(t, run, 4)
	assert.Equal(t, "  ", run[0].Raw)
	assert.Equal(t, " ", run.Last().Raw)

	// The run stops at the first code node.
	ws := run.TakeWhile(IsWhitespace())
	require.Len(t, ws, 1)
	assert.Equal(t, "  ", ws[0].Raw)
}

func TestFirstFrom(t *testing.T) {
	nodes := stream()
	rev := Reversed(nodes)
	term := nodes[5]

	code := rev.FirstFrom(term, IsCode())
	require.NotNil(t, code)
	assert.Equal(t, "x", code.Raw)

	assert.Nil(t, rev.FirstFrom(nodes[0], IsCode()), "nothing before the first node")
}

func TestWhereAndUpTo(t *testing.T) {
	nodes := stream()
	s := Segments(nodes)

	nonMeta := s.Where(Not(IsMeta()))
	assert.Len(t, nonMeta, 6)

	prefix := s.UpTo(nodes[3])
	require.Len(t, prefix, 3)
	assert.Equal(t, "\n", prefix.Last().Raw)

	// UpTo with an absent node keeps everything.
	assert.Len(t, s.UpTo(leaf(cst.KindWord, "y")), len(nodes))
}

func TestContainsAndIndex(t *testing.T) {
	nodes := stream()
	s := Segments(nodes)

	assert.True(t, s.Contains(nodes[2]))
	assert.Equal(t, 2, s.Index(nodes[2]))
	assert.False(t, s.Contains(leaf(cst.KindWord, "y")))
	assert.Nil(t, Segments{}.Last())
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsWhitespace()(leaf(cst.KindNewline, "\n")))
	assert.True(t, IsWhitespace()(leaf(cst.KindWhitespace, " ")))
	assert.False(t, IsWhitespace()(leaf(cst.KindInlineComment, "-- c")))

	assert.True(t, OfKind(cst.KindWord, cst.KindLiteral)(leaf(cst.KindLiteral, "1")))
	assert.False(t, OfKind(cst.KindWord)(leaf(cst.KindSymbol, "/")))
}
