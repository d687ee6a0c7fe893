// Package cst provides a concrete syntax tree for SQL files.
//
// Unlike an AST, the tree keeps every byte of the source: whitespace,
// newlines and comments are first-class nodes. Lint rules navigate the
// tree read-only and describe fixes as edits against existing nodes; the
// tree itself is never mutated after construction.
package cst

import (
	"fmt"

	"github.com/leapstack-labs/sqlfix/pkg/token"
)

// Kind classifies a syntax tree node.
type Kind int

// Node kinds. The set is closed so analyzer branches can switch
// exhaustively; anything the lexer cannot classify becomes KindOther.
const (
	KindFile Kind = iota
	KindStatement
	KindTerminator
	KindWord
	KindSymbol
	KindLiteral
	KindWhitespace
	KindNewline
	KindInlineComment
	KindBlockComment
	KindMeta
	KindOther
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindStatement:
		return "statement"
	case KindTerminator:
		return "statement_terminator"
	case KindWord:
		return "word"
	case KindSymbol:
		return "symbol"
	case KindLiteral:
		return "literal"
	case KindWhitespace:
		return "whitespace"
	case KindNewline:
		return "newline"
	case KindInlineComment:
		return "inline_comment"
	case KindBlockComment:
		return "block_comment"
	case KindMeta:
		return "meta"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Node is a node in the concrete syntax tree. Leaf nodes carry raw source
// text; container nodes (file, statement) own an ordered child list.
type Node struct {
	Kind     Kind
	Raw      string
	Pos      token.Position
	Children []*Node

	parent *Node
}

// NewLeaf creates a leaf node with the given kind, text and position.
func NewLeaf(kind Kind, raw string, pos token.Position) *Node {
	return &Node{Kind: kind, Raw: raw, Pos: pos}
}

// NewTerminator creates a detached terminator node for use in fixes.
func NewTerminator(symbol string) *Node {
	return &Node{Kind: KindTerminator, Raw: symbol}
}

// NewNewline creates a detached newline node for use in fixes.
func NewNewline() *Node {
	return &Node{Kind: KindNewline, Raw: "\n"}
}

// String returns a short description of the node for logs and test output.
func (n *Node) String() string {
	if len(n.Children) > 0 {
		return fmt.Sprintf("<%s: %d children @%s>", n.Kind, len(n.Children), n.Pos)
	}
	return fmt.Sprintf("<%s: %q @%s>", n.Kind, n.Raw, n.Pos)
}

// Parent returns the node's parent, or nil for the root and for detached
// nodes created by fixes.
func (n *Node) Parent() *Node {
	return n.parent
}

// AppendChild adds a child to the node and sets its parent pointer.
func (n *Node) AppendChild(child *Node) {
	child.parent = n
	n.Children = append(n.Children, child)
}

// IsCode returns true if the node is real code rather than trivia or a
// synthetic marker. Statements and terminators count as code.
func (n *Node) IsCode() bool {
	switch n.Kind {
	case KindWhitespace, KindNewline, KindInlineComment, KindBlockComment, KindMeta:
		return false
	default:
		return true
	}
}

// IsComment returns true for inline and block comments.
func (n *Node) IsComment() bool {
	return n.Kind == KindInlineComment || n.Kind == KindBlockComment
}

// IsTrivia returns true for whitespace, newlines and comments.
func (n *Node) IsTrivia() bool {
	switch n.Kind {
	case KindWhitespace, KindNewline, KindInlineComment, KindBlockComment:
		return true
	default:
		return false
	}
}

// IsMeta returns true for zero-width synthetic marker nodes.
func (n *Node) IsMeta() bool {
	return n.Kind == KindMeta
}

// IndexOf returns the index of the given direct child, or -1 if the node
// is not a direct child.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// PathTo returns the chain of ancestors from n down to (but excluding)
// target, or nil if target is not in n's subtree. n itself is the first
// element when a path exists.
func (n *Node) PathTo(target *Node) []*Node {
	if n == target {
		return nil
	}
	for _, c := range n.Children {
		if c == target {
			return []*Node{n}
		}
		if sub := c.PathTo(target); sub != nil {
			return append([]*Node{n}, sub...)
		}
	}
	return nil
}

// RecursiveCrawl returns all nodes in the subtree (pre-order, excluding n
// itself) whose kind matches one of the given kinds.
func (n *Node) RecursiveCrawl(kinds ...Kind) []*Node {
	var out []*Node
	var walk func(node *Node)
	walk = func(node *Node) {
		for _, c := range node.Children {
			for _, k := range kinds {
				if c.Kind == k {
					out = append(out, c)
					break
				}
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// Leaves returns the flattened leaf nodes of the subtree in source order.
// For a file node this is the full raw token stream, trivia included.
func (n *Node) Leaves() []*Node {
	var out []*Node
	var walk func(node *Node)
	walk = func(node *Node) {
		if len(node.Children) == 0 {
			out = append(out, node)
			return
		}
		for _, c := range node.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

// Text returns the raw source text of the subtree.
func (n *Node) Text() string {
	if len(n.Children) == 0 {
		return n.Raw
	}
	var out string
	for _, c := range n.Children {
		out += c.Text()
	}
	return out
}

// StatementOf returns the statement that owns target: target itself when
// it is a statement, otherwise the nearest statement ancestor on the path
// from n. Returns nil when no statement encloses target.
func StatementOf(n, target *Node) *Node {
	if target.Kind == KindStatement {
		return target
	}
	path := n.PathTo(target)
	for i := len(path) - 1; i >= 0; i-- {
		if path[i].Kind == KindStatement {
			return path[i]
		}
	}
	return nil
}
