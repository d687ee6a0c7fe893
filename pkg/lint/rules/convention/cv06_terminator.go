package convention

import (
	"github.com/leapstack-labs/sqlfix/pkg/cst"
	"github.com/leapstack-labs/sqlfix/pkg/lint"
	"github.com/leapstack-labs/sqlfix/pkg/lint/internal/segments"
)

func init() {
	lint.Register(Terminator)
}

// Terminator normalizes statement terminator placement: every statement
// ends with exactly one semicolon, directly after the statement (or on
// its own line for multi-line statements when multiline_newline is set).
var Terminator = lint.RuleDef{
	ID:          "CV06",
	Name:        "convention.terminator",
	Group:       "convention",
	Description: "Statements must end with a semicolon.",
	Severity:    lint.SeverityWarning,
	Check:       checkTerminator,
	ConfigKeys:  []string{"multiline_newline", "require_final_semicolon"},
	Rationale: "A consistent terminator style keeps multi-statement files " +
		"unambiguous and diff-friendly, and some runners require every " +
		"statement to be terminated.",
	BadExample:  "SELECT a\nFROM foo\n\n;\n\nSELECT b\nFROM bar  ;",
	GoodExample: "SELECT a\nFROM foo;\n\nSELECT b\nFROM bar;",
}

// moveContext is everything needed to decide where a terminator belongs:
// the node edits attach to, whether the owning statement fits on one
// line, the trivia between the last code node and the terminator
// (reversed order, terminator side first), and the subset of that trivia
// eligible for deletion.
type moveContext struct {
	anchor              *cst.Node
	oneLine             bool
	before              segments.Segments
	whitespaceDeletions segments.Segments
}

func checkTerminator(file *cst.Node, _ lint.DialectInfo, opts map[string]any) []lint.Diagnostic {
	if file.Kind != cst.KindFile {
		return nil
	}
	multilineNewline := lint.BoolOption(opts, "multiline_newline", false)
	requireFinal := lint.BoolOption(opts, "require_final_semicolon", false)

	var diagnostics []lint.Diagnostic
	var pending []*cst.Node

	for idx, seg := range file.Children {
		var d *lint.Diagnostic

		switch {
		case seg.Kind == cst.KindStatement:
			pending = append(pending, seg)
		case seg.Kind == cst.KindTerminator:
			d = handleTerminator(seg, file, multilineNewline)
			if len(pending) > 0 {
				pending = pending[:len(pending)-1]
			}
		}

		if seg.Kind != cst.KindTerminator && requireFinal && idx == len(file.Children)-1 {
			d = ensureFinalTerminator(file, multilineNewline)
		}

		if d != nil {
			diagnostics = append(diagnostics, *d)
		}
	}

	if requireFinal {
		lastStatement := lastChildOfKind(file, cst.KindStatement)
		for _, stmt := range pending {
			if stmt == lastStatement {
				// The end-of-file check above already covers the final
				// statement.
				continue
			}
			if d := handleMissingTerminator(stmt, file, multilineNewline); d != nil {
				diagnostics = append(diagnostics, *d)
			}
		}
	}

	return diagnostics
}

// handleTerminator checks the placement of one existing semicolon.
func handleTerminator(target, file *cst.Node, multilineNewline bool) *lint.Diagnostic {
	// Only handle actual semicolons; other terminators such as Oracle's
	// slash have their own conventions.
	if target.Raw != ";" {
		return nil
	}

	// A semicolon with another semicolon before it (whitespace apart) is
	// part of a run already reported at the run's head.
	if partOfRepeatedRun(target, file) {
		return nil
	}

	if d := handleRepeatedTerminators(target, file); d != nil {
		return d
	}

	info := terminatorContext(target, file)
	if multilineNewline && !info.oneLine {
		return handleTerminatorNewline(target, file, info)
	}
	return handleTerminatorSameLine(target, file, info)
}

// terminatorContext scans backward from the terminator over the file's
// raw leaf stream to find the end of the preceding statement.
func terminatorContext(target, file *cst.Node) moveContext {
	reversed := segments.Reversed(file.Leaves())

	beforeCode := reversed.TakeWhileFrom(target, segments.Not(segments.IsCode()))
	before := beforeCode.Where(segments.Not(segments.IsMeta()))

	// The last element of the reversed run is the trivia node adjacent
	// to the preceding code; that is where edits attach.
	anchor := target
	if last := beforeCode.Last(); last != nil {
		anchor = last
	}

	oneLine := false
	if firstCode := reversed.FirstFrom(target, segments.IsCode()); firstCode != nil {
		oneLine = isOneLineStatement(file, firstCode)
	}

	// Whitespace between the terminator and the preceding code or
	// comment may be tidied up. Comment spacing is left alone.
	whitespaceDeletions := before.TakeWhile(segments.IsWhitespace())

	return moveContext{
		anchor:              anchor,
		oneLine:             oneLine,
		before:              before,
		whitespaceDeletions: whitespaceDeletions,
	}
}

// handleTerminatorSameLine moves the semicolon directly after the
// statement's last code node.
func handleTerminatorSameLine(target, file *cst.Node, info moveContext) *lint.Diagnostic {
	if len(info.before) == 0 {
		return nil
	}

	edits := placeTerminatorEdits(target, file, info.anchor, info.whitespaceDeletions,
		cst.NewTerminator(";"))
	return &lint.Diagnostic{
		Message: "Semicolon should directly follow the end of the statement.",
		Pos:     info.anchor.Pos,
		Fixes: []lint.Fix{{
			Description: "Move semicolon next to the statement",
			Edits:       edits,
		}},
	}
}

// handleTerminatorNewline moves the semicolon onto its own line after a
// multi-line statement.
func handleTerminatorNewline(target, file *cst.Node, info moveContext) *lint.Diagnostic {
	before, anchor := protectPrecedingInlineComments(info.before, info.anchor)

	// A single newline between statement and terminator means the
	// semicolon is already correctly isolated.
	if len(before) == 1 && before[0].Kind == cst.KindNewline {
		return nil
	}

	anchor = protectTrailingInlineComments(file, anchor)

	var edits []lint.Edit
	if anchor == target {
		edits = []lint.Edit{
			lint.Replace(target, cst.NewNewline(), cst.NewTerminator(";")),
		}
	} else {
		edits = placeTerminatorEdits(target, file, anchor, info.whitespaceDeletions,
			cst.NewNewline(), cst.NewTerminator(";"))
	}
	return &lint.Diagnostic{
		Message: "Semicolon should be placed on its own line.",
		Pos:     anchor.Pos,
		Fixes: []lint.Fix{{
			Description: "Move semicolon onto its own line",
			Edits:       edits,
		}},
	}
}

// placeTerminatorEdits builds the edits that relocate a terminator:
// insert the new nodes after the anchor, delete the original terminator
// and clean up surplus whitespace. When the anchor itself is one of the
// whitespace nodes slated for deletion the insert and delete collapse
// into a single replace, so no node ever carries both operations.
func placeTerminatorEdits(target, file, anchor *cst.Node,
	whitespaceDeletions segments.Segments, create ...*cst.Node,
) []lint.Edit {
	anchor = resolveAnchor(file, anchor)

	insert := lint.InsertAfter(anchor, create...)
	if whitespaceDeletions.Contains(anchor) {
		insert = lint.Replace(anchor, create...)
		whitespaceDeletions = whitespaceDeletions.Where(func(n *cst.Node) bool {
			return n != anchor
		})
	}

	edits := []lint.Edit{insert, lint.Delete(target)}
	for _, ws := range whitespaceDeletions {
		edits = append(edits, lint.Delete(ws))
	}
	return edits
}

// handleRepeatedTerminators collapses runs of consecutive semicolons,
// optionally separated by whitespace, down to the first one.
func handleRepeatedTerminators(target, file *cst.Node) *lint.Diagnostic {
	children := file.Children
	currentIdx := file.IndexOf(target)
	if currentIdx < 0 {
		return nil
	}

	consecutive := []*cst.Node{target}
	searchIdx := currentIdx + 1

	for searchIdx < len(children) {
		seg := children[searchIdx]
		switch {
		case isSemicolon(seg):
			consecutive = append(consecutive, seg)
			searchIdx++
		case seg.Kind == cst.KindWhitespace:
			// Whitespace only separates the run if another semicolon
			// follows it.
			next := searchIdx + 1
			for next < len(children) && children[next].Kind == cst.KindWhitespace {
				next++
			}
			if next < len(children) && isSemicolon(children[next]) {
				searchIdx++
			} else {
				searchIdx = len(children)
			}
		default:
			searchIdx = len(children)
		}
	}

	if len(consecutive) < 2 {
		return nil
	}

	var edits []lint.Edit
	for _, extra := range consecutive[1:] {
		edits = append(edits, lint.Delete(extra))
	}
	for idx := currentIdx + 1; idx < searchIdx && idx < len(children); idx++ {
		if children[idx].Kind == cst.KindWhitespace {
			edits = append(edits, lint.Delete(children[idx]))
		}
	}

	return &lint.Diagnostic{
		Message: "Repeated statement terminator.",
		Pos:     target.Pos,
		Fixes: []lint.Fix{{
			Description: "Remove repeated semicolons",
			Edits:       edits,
		}},
	}
}

// ensureFinalTerminator checks that the file's last statement is
// terminated at all.
func ensureFinalTerminator(file *cst.Node, multilineNewline bool) *lint.Diagnostic {
	children := file.Children

	var lastCode *cst.Node
	for i := len(children) - 1; i >= 0; i-- {
		if children[i].IsCode() {
			lastCode = children[i]
			break
		}
	}
	if lastCode == nil {
		return nil
	}

	for _, seg := range children {
		if seg.Kind == cst.KindTerminator {
			// Already terminated; placement is handled elsewhere.
			return nil
		}
	}

	oneLine := isOneLineStatement(file, lastCode)

	// Walk back over the file tail to find the insertion anchor (the
	// last code node) and the trivia trailing it.
	var trailing segments.Segments
	anchor := children[len(children)-1]
	trigger := children[len(children)-1]
	for i := len(children) - 1; i >= 0; i-- {
		anchor = children[i]
		if anchor.IsCode() {
			break
		}
		if !anchor.IsMeta() {
			trailing = append(trailing, anchor)
		}
		trigger = anchor
	}

	var edits []lint.Edit
	if multilineNewline && !oneLine {
		_, anchor = protectPrecedingInlineComments(trailing, anchor)
		edits = []lint.Edit{
			lint.InsertAfter(resolveAnchor(file, anchor), cst.NewNewline(), cst.NewTerminator(";")),
		}
	} else {
		edits = []lint.Edit{
			lint.InsertAfter(resolveAnchor(file, anchor), cst.NewTerminator(";")),
		}
	}

	return &lint.Diagnostic{
		Message: "Statements must end with a semicolon.",
		Pos:     trigger.Pos,
		Fixes: []lint.Fix{{
			Description: "Add missing semicolon",
			Edits:       edits,
		}},
	}
}

// handleMissingTerminator fixes a mid-file statement with no terminator
// of its own, anchoring after the statement so following statements are
// never merged into it.
func handleMissingTerminator(stmt, file *cst.Node, multilineNewline bool) *lint.Diagnostic {
	var lastNonMeta *cst.Node
	for i := len(stmt.Children) - 1; i >= 0; i-- {
		if !stmt.Children[i].IsMeta() {
			lastNonMeta = stmt.Children[i]
			break
		}
	}
	if lastNonMeta == nil {
		return nil
	}

	oneLine := isOneLineStatement(file, stmt)
	anchor := protectTrailingInlineComments(file, lastNonMeta)

	create := []*cst.Node{cst.NewTerminator(";")}
	if multilineNewline && !oneLine {
		create = []*cst.Node{cst.NewNewline(), cst.NewTerminator(";")}
	}

	return &lint.Diagnostic{
		Message: "Statements must end with a semicolon.",
		Pos:     lastNonMeta.Pos,
		Fixes: []lint.Fix{{
			Description: "Add missing semicolon",
			Edits: []lint.Edit{
				lint.InsertAfter(resolveAnchor(file, anchor), create...),
			},
		}},
	}
}

// protectPrecedingInlineComments keeps inline comments that share a line
// with the preceding code where they are: such a comment becomes the new
// anchor and the trivia run is truncated before it. Inline comments may
// carry suppression directives and must never be relocated.
func protectPrecedingInlineComments(before segments.Segments, anchor *cst.Node,
) (segments.Segments, *cst.Node) {
	anchorLine := lastLeaf(anchor).Pos.Line
	for _, seg := range before {
		if seg.Kind == cst.KindInlineComment && seg.Pos.Line == anchorLine {
			return before.UpTo(seg), seg
		}
	}
	return before, anchor
}

// protectTrailingInlineComments shifts the anchor onto any inline
// comment that shares the anchor's line, so the comment stays adjacent
// to the code it annotates.
func protectTrailingInlineComments(file, anchor *cst.Node) *cst.Node {
	for _, comment := range file.RecursiveCrawl(cst.KindInlineComment) {
		if comment.Pos.Line == lastLeaf(anchor).Pos.Line {
			anchor = comment
		}
	}
	return anchor
}

// isOneLineStatement reports whether the statement owning the given node
// starts and ends on the same line, i.e. its subtree holds no newline.
// Without a statement owner nothing special is attempted.
func isOneLineStatement(file, node *cst.Node) bool {
	stmt := cst.StatementOf(file, node)
	if stmt == nil {
		return false
	}
	return len(stmt.RecursiveCrawl(cst.KindNewline)) == 0
}

// resolveAnchor moves an insertion anchor off zero-width synthetic
// markers onto the nearest real sibling.
func resolveAnchor(file, anchor *cst.Node) *cst.Node {
	if !anchor.IsMeta() {
		return anchor
	}
	leaves := file.Leaves()
	idx := -1
	for i, leaf := range leaves {
		if leaf == anchor {
			idx = i
			break
		}
	}
	if idx < 0 {
		return anchor
	}
	for i := idx - 1; i >= 0; i-- {
		if !leaves[i].IsMeta() {
			return leaves[i]
		}
	}
	for i := idx + 1; i < len(leaves); i++ {
		if !leaves[i].IsMeta() {
			return leaves[i]
		}
	}
	return anchor
}

// partOfRepeatedRun reports whether the semicolon's nearest preceding
// non-whitespace sibling is another semicolon.
func partOfRepeatedRun(target, file *cst.Node) bool {
	idx := file.IndexOf(target)
	for i := idx - 1; i >= 0; i-- {
		if file.Children[i].Kind == cst.KindWhitespace {
			continue
		}
		return isSemicolon(file.Children[i])
	}
	return false
}

func isSemicolon(n *cst.Node) bool {
	return n.Kind == cst.KindTerminator && n.Raw == ";"
}

func lastLeaf(n *cst.Node) *cst.Node {
	leaves := n.Leaves()
	return leaves[len(leaves)-1]
}

func lastChildOfKind(n *cst.Node, kind cst.Kind) *cst.Node {
	for i := len(n.Children) - 1; i >= 0; i-- {
		if n.Children[i].Kind == kind {
			return n.Children[i]
		}
	}
	return nil
}
