package cst

import (
	"strings"

	"github.com/leapstack-labs/sqlfix/pkg/token"
)

// statementStarters are keywords that begin a new top-level statement.
// Used to split unterminated statements: a starter on a fresh line at
// paren depth zero closes the statement before it.
var statementStarters = map[string]bool{
	"SELECT": true, "WITH": true, "INSERT": true, "UPDATE": true,
	"DELETE": true, "MERGE": true, "CREATE": true, "DROP": true,
	"ALTER": true, "TRUNCATE": true, "GRANT": true, "REVOKE": true,
	"BEGIN": true, "COMMIT": true, "ROLLBACK": true, "SET": true,
	"USE": true, "EXPLAIN": true, "VACUUM": true, "ANALYZE": true,
	"COPY": true,
}

// Parse builds a file tree from SQL source using the standard `;`
// terminator. Parsing is total: any input produces a tree.
func Parse(input string) *Node {
	return ParseWithTerminators(input, nil)
}

// ParseWithTerminators builds a file tree from SQL source. The extra
// terminator symbols (e.g. Oracle's "/") are recognized on top of `;`,
// but only at a statement boundary: a "/" inside statement code stays a
// division operator.
//
// Top-level children are statements, terminators and the trivia between
// them. A statement spans its first through last code token, with
// interior trivia kept inside; leading and trailing trivia stay at file
// level. The tree ends with a zero-width end-of-file marker.
func ParseWithTerminators(input string, extra []string) *Node {
	tokens := NewLexer(input).Scan()

	file := &Node{Kind: KindFile, Pos: token.Position{Line: 1, Column: 1, Offset: 0}}

	var stmt *Node
	var pending []*Node
	var prevCode *Node
	parenDepth := 0

	flush := func(to *Node) {
		for _, p := range pending {
			to.AppendChild(p)
		}
		pending = nil
	}

	pendingHasNewline := func() bool {
		for _, p := range pending {
			if p.Kind == KindNewline {
				return true
			}
		}
		return false
	}

	for _, tok := range tokens {
		if tok.IsTrivia() {
			pending = append(pending, tok)
			continue
		}

		isTerminator := tok.Kind == KindTerminator
		if !isTerminator && stmt == nil && tok.Kind == KindSymbol {
			// At a statement boundary an extra terminator symbol closes
			// the preceding statement rather than starting a new one.
			for _, sym := range extra {
				if tok.Raw == sym {
					tok.Kind = KindTerminator
					isTerminator = true
					break
				}
			}
		}

		if isTerminator {
			stmt = nil
			prevCode = tok
			flush(file)
			file.AppendChild(tok)
			continue
		}

		if stmt != nil && startsNewStatement(tok, prevCode, parenDepth, pendingHasNewline()) {
			stmt = nil
		}

		switch tok.Raw {
		case "(":
			parenDepth++
		case ")":
			if parenDepth > 0 {
				parenDepth--
			}
		}

		if stmt == nil {
			flush(file)
			stmt = &Node{Kind: KindStatement, Pos: tok.Pos}
			file.AppendChild(stmt)
		} else {
			flush(stmt)
		}
		stmt.AppendChild(tok)
		prevCode = tok
	}

	flush(file)
	file.AppendChild(NewLeaf(KindMeta, "", endPosition(input)))
	return file
}

// startsNewStatement decides whether a code token opens a new statement
// while the previous one is still unterminated. This is a heuristic: a
// statement-starting keyword on a fresh line, outside parentheses, and
// not continuing an expression (after a comma, an opening paren, AS, or
// a CTE's closing paren) is taken as a boundary.
func startsNewStatement(tok, prevCode *Node, parenDepth int, onFreshLine bool) bool {
	if parenDepth > 0 || !onFreshLine || tok.Kind != KindWord {
		return false
	}
	if !statementStarters[strings.ToUpper(tok.Raw)] {
		return false
	}
	if prevCode != nil {
		switch prevCode.Raw {
		case ",", "(", ")":
			// "WITH x AS (...)\nSELECT" continues the same statement.
			return false
		}
		if strings.EqualFold(prevCode.Raw, "AS") {
			return false
		}
	}
	return true
}

// endPosition computes the position one past the last byte of input.
func endPosition(input string) token.Position {
	line := 1 + strings.Count(input, "\n")
	lastNL := strings.LastIndexByte(input, '\n')
	return token.Position{
		Line:   line,
		Column: len(input) - lastNL,
		Offset: len(input),
	}
}
