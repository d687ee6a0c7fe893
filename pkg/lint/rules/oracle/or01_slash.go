package oracle

import (
	"strings"

	"github.com/leapstack-labs/sqlfix/pkg/cst"
	"github.com/leapstack-labs/sqlfix/pkg/lint"
)

func init() {
	lint.Register(SlashTerminator)
}

// SlashTerminator requires Oracle's slash terminator to sit on its own
// line; SQL*Plus only executes the buffer for a slash at the start of a
// line.
var SlashTerminator = lint.RuleDef{
	ID:          "OR01",
	Name:        "oracle.slash_terminator",
	Group:       "oracle",
	Description: "Slash terminator should be on a new line.",
	Severity:    lint.SeverityWarning,
	Check:       checkSlashTerminator,
	Dialects:    []string{"oracle"},
	BadExample:  "SELECT 1 FROM dual; /",
	GoodExample: "SELECT 1 FROM dual;\n/",
}

func checkSlashTerminator(file *cst.Node, dialect lint.DialectInfo, _ map[string]any) []lint.Diagnostic {
	if dialect.GetName() != "oracle" {
		return nil
	}

	var diagnostics []lint.Diagnostic
	for _, term := range file.RecursiveCrawl(cst.KindTerminator) {
		if d := checkSlash(term); d != nil {
			diagnostics = append(diagnostics, *d)
		}
	}
	return diagnostics
}

func checkSlash(term *cst.Node) *lint.Diagnostic {
	if strings.TrimSpace(term.Raw) != "/" {
		return nil
	}
	if term.Pos.Offset == 0 {
		return nil
	}

	parent := term.Parent()
	if parent == nil {
		return nil
	}
	idx := parent.IndexOf(term)
	if idx <= 0 {
		return nil
	}

	prev := parent.Children[idx-1]
	if prev.Kind == cst.KindNewline {
		return nil
	}
	if prev.Kind == cst.KindWhitespace && strings.Contains(prev.Raw, "\n") {
		return nil
	}

	return &lint.Diagnostic{
		Message: "Slash terminator should be on a new line.",
		Pos:     term.Pos,
		Fixes: []lint.Fix{{
			Description: "Move slash onto its own line",
			Edits: []lint.Edit{
				lint.InsertBefore(term, cst.NewNewline()),
			},
		}},
	}
}
