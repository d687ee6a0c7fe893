// Package config loads CLI configuration from sqlfix.yaml, environment
// variables and command-line flags.
package config

// Config is the resolved CLI configuration.
type Config struct {
	// Dialect is the SQL dialect files are parsed as.
	Dialect string `koanf:"dialect"`

	// OutputFormat selects the renderer mode (auto|text|markdown|json).
	OutputFormat string `koanf:"output"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`

	// Lint configures the rule engine.
	Lint *LintConfig `koanf:"lint"`
}

// LintConfig configures which rules run and how.
type LintConfig struct {
	// Disabled lists rule IDs to skip.
	Disabled []string `koanf:"disabled"`

	// Severity overrides default rule severities, keyed by rule ID.
	Severity map[string]string `koanf:"severity"`

	// Rules holds rule-specific options keyed by rule ID, e.g.
	//   rules:
	//     CV06:
	//       multiline_newline: true
	//       require_final_semicolon: true
	Rules map[string]map[string]any `koanf:"rules"`
}
