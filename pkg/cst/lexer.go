package cst

import (
	"github.com/leapstack-labs/sqlfix/pkg/token"
)

// Lexer scans SQL input into leaf nodes, keeping every byte of the
// source: whitespace, newlines and comments come out as nodes of their
// own instead of being skipped.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character. A newline belongs to the
// line it ends, so the line counter advances when moving past it, not
// on arrival.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.col++
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// Scan returns all leaf nodes of the input in source order.
func (l *Lexer) Scan() []*Node {
	var nodes []*Node
	for {
		n := l.next()
		if n == nil {
			return nodes
		}
		nodes = append(nodes, n)
	}
}

// next returns the next leaf node, or nil at end of input.
func (l *Lexer) next() *Node {
	if l.ch == 0 {
		return nil
	}

	pos := l.currentPos()

	switch {
	case l.ch == '\n':
		l.readChar()
		return NewLeaf(KindNewline, "\n", pos)
	case l.ch == '\r':
		// Treat \r\n as a single newline node; a lone \r is whitespace.
		if l.peekChar() == '\n' {
			l.readChar()
			l.readChar()
			return NewLeaf(KindNewline, "\r\n", pos)
		}
		l.readChar()
		return NewLeaf(KindWhitespace, "\r", pos)
	case l.ch == ' ' || l.ch == '\t':
		return l.readWhitespace(pos)
	case l.ch == '-' && l.peekChar() == '-':
		return l.readLineComment(pos)
	case l.ch == '/' && l.peekChar() == '*':
		return l.readBlockComment(pos)
	case l.ch == ';':
		l.readChar()
		return NewLeaf(KindTerminator, ";", pos)
	case l.ch == '\'':
		return l.readString(pos)
	case l.ch == '"':
		return l.readQuotedIdentifier(pos)
	case isDigit(l.ch):
		return l.readNumber(pos)
	case isLetter(l.ch) || l.ch == '_':
		return l.readWord(pos)
	default:
		raw := string(l.ch)
		l.readChar()
		return NewLeaf(KindSymbol, raw, pos)
	}
}

// readWhitespace reads a run of spaces and tabs.
func (l *Lexer) readWhitespace(pos token.Position) *Node {
	start := l.pos
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}
	return NewLeaf(KindWhitespace, l.input[start:l.pos], pos)
}

// readLineComment reads a -- comment up to (not including) the newline.
func (l *Lexer) readLineComment(pos token.Position) *Node {
	start := l.pos
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	return NewLeaf(KindInlineComment, l.input[start:l.pos], pos)
}

// readBlockComment reads a /* ... */ comment, including any embedded
// newlines. An unterminated comment runs to end of input.
func (l *Lexer) readBlockComment(pos token.Position) *Node {
	start := l.pos
	l.readChar() // consume '/'
	l.readChar() // consume '*'
	for l.ch != 0 {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			break
		}
		l.readChar()
	}
	return NewLeaf(KindBlockComment, l.input[start:l.pos], pos)
}

// readString reads a single-quoted string literal with '' escapes.
func (l *Lexer) readString(pos token.Position) *Node {
	start := l.pos
	l.readChar() // consume opening quote
	for l.ch != 0 {
		if l.ch == '\'' {
			if l.peekChar() == '\'' {
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar()
			break
		}
		l.readChar()
	}
	return NewLeaf(KindLiteral, l.input[start:l.pos], pos)
}

// readQuotedIdentifier reads a double-quoted identifier.
func (l *Lexer) readQuotedIdentifier(pos token.Position) *Node {
	start := l.pos
	l.readChar() // consume opening quote
	for l.ch != '"' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == '"' {
		l.readChar()
	}
	return NewLeaf(KindWord, l.input[start:l.pos], pos)
}

// readNumber reads a numeric literal.
func (l *Lexer) readNumber(pos token.Position) *Node {
	start := l.pos
	for isDigit(l.ch) || l.ch == '.' || l.ch == 'e' || l.ch == 'E' {
		l.readChar()
	}
	return NewLeaf(KindLiteral, l.input[start:l.pos], pos)
}

// readWord reads an identifier or keyword.
func (l *Lexer) readWord(pos token.Position) *Node {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return NewLeaf(KindWord, l.input[start:l.pos], pos)
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
