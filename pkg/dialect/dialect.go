// Package dialect describes the per-dialect conventions the linter cares
// about: the dialect name and its statement terminator symbols.
package dialect

// Dialect holds the lexical conventions for one SQL dialect.
type Dialect struct {
	// Name is the canonical lowercase dialect name, e.g. "duckdb".
	Name string

	// ExtraTerminators are terminator symbols beyond the standard `;`,
	// e.g. Oracle's `/`. Recognized only at statement boundaries.
	ExtraTerminators []string
}

// GetName returns the dialect name. Satisfies lint.DialectInfo.
func (d *Dialect) GetName() string {
	return d.Name
}

// Terminators returns all terminator symbols for the dialect, `;` first.
func (d *Dialect) Terminators() []string {
	return append([]string{";"}, d.ExtraTerminators...)
}
