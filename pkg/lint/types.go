package lint

import (
	"github.com/leapstack-labs/sqlfix/pkg/cst"
	"github.com/leapstack-labs/sqlfix/pkg/token"
)

// DialectInfo is a minimal interface to avoid importing the full dialect
// package. Implemented by dialect.Dialect.
type DialectInfo interface {
	GetName() string
	Terminators() []string
}

// RuleDef is a data-driven rule definition. Rules are stateless - all
// context comes via the Check function parameters.
type RuleDef struct {
	ID          string    // Unique identifier, e.g., "CV06"
	Name        string    // Human-readable name, e.g., "convention.terminator"
	Group       string    // Category, e.g., "convention", "oracle"
	Description string    // Human-readable description
	Severity    Severity  // Default severity
	Check       CheckFunc // The check function
	ConfigKeys  []string  // Configuration keys this rule accepts
	Dialects    []string  // Restrict to specific dialects; nil/empty means all dialects

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
}

// CheckFunc analyzes one file tree and returns diagnostics. The file
// parameter is always a KindFile root. The opts parameter contains
// rule-specific options from configuration, keyed by ConfigKeys.
type CheckFunc func(file *cst.Node, dialect DialectInfo, opts map[string]any) []Diagnostic

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string
	Severity Severity
	Message  string
	Pos      token.Position
	Fixes    []Fix // Optional: suggested fixes
}

// Fixable returns true if the diagnostic carries at least one fix.
func (d Diagnostic) Fixable() bool {
	return len(d.Fixes) > 0
}

// RuleInfo provides metadata about a rule for documentation/tooling.
type RuleInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Group           string   `json:"group"`
	Description     string   `json:"description"`
	DefaultSeverity Severity `json:"default_severity"`
	ConfigKeys      []string `json:"config_keys,omitempty"`
	Dialects        []string `json:"dialects,omitempty"`

	// Documentation fields
	Rationale   string `json:"rationale,omitempty"`
	BadExample  string `json:"bad_example,omitempty"`
	GoodExample string `json:"good_example,omitempty"`
}

// GetRuleInfo extracts metadata from a RuleDef for documentation/tooling.
func GetRuleInfo(r RuleDef) RuleInfo {
	return RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		ConfigKeys:      r.ConfigKeys,
		Dialects:        r.Dialects,
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
	}
}

// BoolOption reads a boolean rule option with a default for missing or
// mistyped values.
func BoolOption(opts map[string]any, key string, def bool) bool {
	if opts == nil {
		return def
	}
	if v, ok := opts[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}
