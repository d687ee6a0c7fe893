// Package lint provides the rule engine for SQL linting over concrete
// syntax trees.
//
// Rules are data-driven RuleDef values registered from init() functions
// in rule packages. An Analyzer runs the registered rules for the active
// dialect over one file tree at a time and returns diagnostics. Each
// diagnostic may carry a Fix: an ordered list of tree edits that Apply
// can render back into corrected source text.
//
// The engine guarantees that an applied fix never sees a conflicting
// instruction: an edit set that both deletes and inserts at the same
// anchor node is rejected before it reaches the caller.
package lint
