// Package segments provides small combinators for scanning ordered node
// sequences under predicates. Rules use it to answer questions like
// "collect everything backward from here until the first code node".
package segments

import (
	"github.com/leapstack-labs/sqlfix/pkg/cst"
)

// Predicate tests one node.
type Predicate func(*cst.Node) bool

// IsCode matches code nodes (anything but trivia and meta markers).
func IsCode() Predicate {
	return func(n *cst.Node) bool { return n.IsCode() }
}

// IsMeta matches zero-width synthetic markers.
func IsMeta() Predicate {
	return func(n *cst.Node) bool { return n.IsMeta() }
}

// IsWhitespace matches whitespace and newline nodes.
func IsWhitespace() Predicate {
	return func(n *cst.Node) bool {
		return n.Kind == cst.KindWhitespace || n.Kind == cst.KindNewline
	}
}

// OfKind matches nodes of any of the given kinds.
func OfKind(kinds ...cst.Kind) Predicate {
	return func(n *cst.Node) bool {
		for _, k := range kinds {
			if n.Kind == k {
				return true
			}
		}
		return false
	}
}

// Not negates a predicate.
func Not(p Predicate) Predicate {
	return func(n *cst.Node) bool { return !p(n) }
}

// Segments is an ordered sequence of nodes. A Segments value built with
// Reversed iterates back-to-front relative to the source; selections
// keep that orientation, so results compared against forward-oriented
// structures must be re-reversed by the caller.
type Segments []*cst.Node

// Reversed returns a reversed copy of the node sequence.
func Reversed(nodes []*cst.Node) Segments {
	out := make(Segments, len(nodes))
	for i, n := range nodes {
		out[len(nodes)-1-i] = n
	}
	return out
}

// Index returns the position of n in the sequence, or -1.
func (s Segments) Index(n *cst.Node) int {
	for i, e := range s {
		if e == n {
			return i
		}
	}
	return -1
}

// Contains reports whether n is in the sequence.
func (s Segments) Contains(n *cst.Node) bool {
	return s.Index(n) >= 0
}

// Last returns the final element, or nil for an empty sequence.
func (s Segments) Last() *cst.Node {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// TakeWhile returns the maximal prefix whose elements all satisfy p.
func (s Segments) TakeWhile(p Predicate) Segments {
	for i, n := range s {
		if !p(n) {
			return s[:i]
		}
	}
	return s
}

// TakeWhileFrom returns the maximal run of elements after start that all
// satisfy p. When start is not in the sequence the scan covers the whole
// sequence from the beginning.
func (s Segments) TakeWhileFrom(start *cst.Node, p Predicate) Segments {
	rest := s.from(start)
	return rest.TakeWhile(p)
}

// FirstFrom returns the first element after start that satisfies p, or
// nil if none does.
func (s Segments) FirstFrom(start *cst.Node, p Predicate) *cst.Node {
	for _, n := range s.from(start) {
		if p(n) {
			return n
		}
	}
	return nil
}

// Where returns the elements satisfying p, keeping their order.
func (s Segments) Where(p Predicate) Segments {
	var out Segments
	for _, n := range s {
		if p(n) {
			out = append(out, n)
		}
	}
	return out
}

// UpTo returns the prefix strictly before n. When n is absent the whole
// sequence is returned.
func (s Segments) UpTo(n *cst.Node) Segments {
	if i := s.Index(n); i >= 0 {
		return s[:i]
	}
	return s
}

// from returns the suffix after start, or the whole sequence when start
// is nil or absent.
func (s Segments) from(start *cst.Node) Segments {
	if start == nil {
		return s
	}
	if i := s.Index(start); i >= 0 {
		return s[i+1:]
	}
	return s
}
