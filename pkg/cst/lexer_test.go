package cst

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexerKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []Kind
		raws  []string
	}{
		{
			name:  "simple statement",
			input: "SELECT 1;",
			kinds: []Kind{KindWord, KindWhitespace, KindLiteral, KindTerminator},
			raws:  []string{"SELECT", " ", "1", ";"},
		},
		{
			name:  "newline and whitespace are separate nodes",
			input: "a\n  b",
			kinds: []Kind{KindWord, KindNewline, KindWhitespace, KindWord},
			raws:  []string{"a", "\n", "  ", "b"},
		},
		{
			name:  "crlf is one newline",
			input: "a\r\nb",
			kinds: []Kind{KindWord, KindNewline, KindWord},
			raws:  []string{"a", "\r\n", "b"},
		},
		{
			name:  "inline comment stops before newline",
			input: "-- hello\nx",
			kinds: []Kind{KindInlineComment, KindNewline, KindWord},
			raws:  []string{"-- hello", "\n", "x"},
		},
		{
			name:  "block comment keeps newlines",
			input: "/* a\nb */;",
			kinds: []Kind{KindBlockComment, KindTerminator},
			raws:  []string{"/* a\nb */", ";"},
		},
		{
			name:  "string literal with escaped quote",
			input: "'it''s'",
			kinds: []Kind{KindLiteral},
			raws:  []string{"'it''s'"},
		},
		{
			name:  "quoted identifier",
			input: `"My Table"`,
			kinds: []Kind{KindWord},
			raws:  []string{`"My Table"`},
		},
		{
			name:  "symbols are single chars",
			input: "a/b",
			kinds: []Kind{KindWord, KindSymbol, KindWord},
			raws:  []string{"a", "/", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := NewLexer(tt.input).Scan()
			require.Len(t, nodes, len(tt.kinds))
			for i, n := range nodes {
				assert.Equal(t, tt.kinds[i], n.Kind, "node %d", i)
				assert.Equal(t, tt.raws[i], n.Raw, "node %d", i)
			}
		})
	}
}

func TestLexerLossless(t *testing.T) {
	inputs := []string{
		"",
		"SELECT a, b FROM t WHERE x = 'y';\n",
		"-- comment\nSELECT 1;\n\n/* block */ SELECT 2 ;;",
		"SELECT 1 FROM dual;\n/",
		"a\r\nb\rc",
	}
	for _, input := range inputs {
		var sb strings.Builder
		for _, n := range NewLexer(input).Scan() {
			sb.WriteString(n.Raw)
		}
		assert.Equal(t, input, sb.String())
	}
}

func TestLexerPositions(t *testing.T) {
	nodes := NewLexer("ab c\nde").Scan()
	require.Len(t, nodes, 5)

	assert.Equal(t, "1:1", nodes[0].Pos.String()) // ab
	assert.Equal(t, "1:4", nodes[2].Pos.String()) // c
	assert.Equal(t, 5, nodes[4].Pos.Offset)       // de
	assert.Equal(t, 2, nodes[4].Pos.Line)
	assert.Equal(t, 1, nodes[4].Pos.Column)
}

func TestLexerNewlinePositions(t *testing.T) {
	// A newline node belongs to the line it ends; the following token
	// starts the next line.
	nodes := NewLexer("a\nb").Scan()
	require.Len(t, nodes, 3)

	nl := nodes[1]
	require.Equal(t, KindNewline, nl.Kind)
	assert.Equal(t, 1, nl.Pos.Line)
	assert.Equal(t, 2, nl.Pos.Column)
	assert.Equal(t, 1, nl.Pos.Offset)
	assert.Equal(t, 2, nodes[2].Pos.Line)

	// Same contract for a leading newline and for CRLF.
	nodes = NewLexer("\nx").Scan()
	assert.Equal(t, "1:1", nodes[0].Pos.String())

	nodes = NewLexer("ab\r\ncd").Scan()
	require.Equal(t, KindNewline, nodes[1].Kind)
	assert.Equal(t, 1, nodes[1].Pos.Line)
	assert.Equal(t, 3, nodes[1].Pos.Column)
	assert.Equal(t, 2, nodes[2].Pos.Line)
}
