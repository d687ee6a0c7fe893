package lint

import (
	"strings"

	"github.com/leapstack-labs/sqlfix/pkg/cst"
)

// Apply renders the file's source text with every fix from the given
// diagnostics applied. The tree itself is left untouched; callers that
// need an updated tree re-parse the returned text.
//
// Edits from one evaluation pass are internally consistent (the analyzer
// enforces the anchor-conflict invariant), so application order does not
// matter within a fix. Anchors may be leaves or whole statement nodes;
// an insert after a statement lands after its last leaf.
func Apply(file *cst.Node, diagnostics []Diagnostic) string {
	deletes := make(map[*cst.Node]bool)
	replaces := make(map[*cst.Node][]*cst.Node)
	before := make(map[*cst.Node][]*cst.Node)
	after := make(map[*cst.Node][]*cst.Node)

	for _, d := range diagnostics {
		for _, fix := range d.Fixes {
			for _, e := range fix.Edits {
				switch e.Op {
				case EditDelete:
					deletes[e.Anchor] = true
				case EditReplace:
					replaces[e.Anchor] = e.Nodes
				case EditInsertBefore:
					before[e.Anchor] = append(e.Nodes, before[e.Anchor]...)
				case EditInsertAfter:
					after[e.Anchor] = append(after[e.Anchor], e.Nodes...)
				}
			}
		}
	}

	var out strings.Builder
	var render func(n *cst.Node)
	render = func(n *cst.Node) {
		for _, ins := range before[n] {
			out.WriteString(ins.Text())
		}
		switch {
		case replaces[n] != nil:
			for _, r := range replaces[n] {
				out.WriteString(r.Text())
			}
		case deletes[n]:
			// dropped
		case len(n.Children) > 0:
			for _, c := range n.Children {
				render(c)
			}
		default:
			out.WriteString(n.Raw)
		}
		for _, ins := range after[n] {
			out.WriteString(ins.Text())
		}
	}
	for _, c := range file.Children {
		render(c)
	}
	return out.String()
}
