package lint

import (
	"github.com/leapstack-labs/sqlfix/pkg/cst"
)

// EditOp is the kind of tree edit an Edit performs.
type EditOp int

// Edit operations.
const (
	// EditInsertAfter inserts Nodes immediately after Anchor.
	EditInsertAfter EditOp = iota
	// EditInsertBefore inserts Nodes immediately before Anchor.
	EditInsertBefore
	// EditReplace replaces Anchor with Nodes.
	EditReplace
	// EditDelete removes Anchor.
	EditDelete
)

// String returns the operation name.
func (op EditOp) String() string {
	switch op {
	case EditInsertAfter:
		return "insert_after"
	case EditInsertBefore:
		return "insert_before"
	case EditReplace:
		return "replace"
	case EditDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Edit is a single tree edit. Anchor is always a node of the analyzed
// tree; Nodes are detached nodes created by the rule.
type Edit struct {
	Op     EditOp
	Anchor *cst.Node
	Nodes  []*cst.Node
}

// InsertAfter builds an insert-after edit.
func InsertAfter(anchor *cst.Node, nodes ...*cst.Node) Edit {
	return Edit{Op: EditInsertAfter, Anchor: anchor, Nodes: nodes}
}

// InsertBefore builds an insert-before edit.
func InsertBefore(anchor *cst.Node, nodes ...*cst.Node) Edit {
	return Edit{Op: EditInsertBefore, Anchor: anchor, Nodes: nodes}
}

// Replace builds a replace edit.
func Replace(anchor *cst.Node, nodes ...*cst.Node) Edit {
	return Edit{Op: EditReplace, Anchor: anchor, Nodes: nodes}
}

// Delete builds a delete edit.
func Delete(anchor *cst.Node) Edit {
	return Edit{Op: EditDelete, Anchor: anchor}
}

// Fix is a suggested correction: an ordered list of edits that realize
// one placement decision.
type Fix struct {
	Description string
	Edits       []Edit
}

// ConflictingEdits reports whether the edit list both deletes and
// inserts/replaces at the same anchor node. Such a set is ambiguous for
// the apply phase and must never leave a rule.
func ConflictingEdits(edits []Edit) bool {
	deleted := make(map[*cst.Node]bool)
	touched := make(map[*cst.Node]bool)
	for _, e := range edits {
		if e.Op == EditDelete {
			deleted[e.Anchor] = true
		} else {
			touched[e.Anchor] = true
		}
	}
	for n := range deleted {
		if touched[n] {
			return true
		}
	}
	return false
}
