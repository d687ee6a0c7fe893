package lint

import (
	"log/slog"

	"github.com/leapstack-labs/sqlfix/pkg/cst"
)

// Analyzer runs registered rules over parsed file trees.
type Analyzer struct {
	config *Config
	logger *slog.Logger
}

// NewAnalyzer creates an analyzer with the given configuration.
// A nil config means all rules enabled with defaults.
func NewAnalyzer(config *Config) *Analyzer {
	return &Analyzer{
		config: config,
		logger: slog.Default(),
	}
}

// AnalyzeFile runs all rules applicable to the dialect over one file
// tree and returns the diagnostics, in rule registration order.
//
// The file tree is treated as immutable: rules describe fixes as edits,
// they never mutate nodes. A rule result whose edit set violates the
// anchor-conflict invariant is dropped with a warning rather than handed
// to the apply phase.
func (a *Analyzer) AnalyzeFile(file *cst.Node, dialect DialectInfo) []Diagnostic {
	var diagnostics []Diagnostic

	for _, rule := range GetByDialect(dialect.GetName()) {
		if a.config.IsDisabled(rule.ID) {
			continue
		}
		if rule.Check == nil {
			continue
		}

		opts := a.config.GetRuleOptions(rule.ID)
		for _, d := range rule.Check(file, dialect, opts) {
			if d.RuleID == "" {
				d.RuleID = rule.ID
			}
			d.Severity = a.config.GetSeverity(rule.ID, rule.Severity)

			if dropConflicting(a.logger, &d) {
				continue
			}
			diagnostics = append(diagnostics, d)
		}
	}

	return diagnostics
}

// dropConflicting reports whether the diagnostic carries a fix with a
// conflicting edit set and must be discarded.
func dropConflicting(logger *slog.Logger, d *Diagnostic) bool {
	for _, fix := range d.Fixes {
		if ConflictingEdits(fix.Edits) {
			logger.Warn("dropping diagnostic with conflicting edits",
				"rule", d.RuleID,
				"pos", d.Pos.String(),
			)
			return true
		}
	}
	return false
}
