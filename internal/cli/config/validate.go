package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlfix/pkg/dialect"
	"github.com/leapstack-labs/sqlfix/pkg/lint"
)

// Validate checks the resolved configuration for values that would fail
// later in confusing ways.
func Validate(cfg *Config) error {
	if _, ok := dialect.Get(cfg.Dialect); !ok {
		return fmt.Errorf("unknown dialect %q (available: %s)",
			cfg.Dialect, strings.Join(dialect.List(), ", "))
	}

	switch cfg.OutputFormat {
	case "", "auto", "text", "markdown", "json":
	default:
		return fmt.Errorf("unknown output format %q (expected auto, text, markdown or json)", cfg.OutputFormat)
	}

	if cfg.Lint != nil {
		for id, sev := range cfg.Lint.Severity {
			if _, ok := lint.ParseSeverity(sev); !ok {
				return fmt.Errorf("invalid severity %q for rule %s", sev, id)
			}
		}
	}
	return nil
}

// BuildLintConfig translates the CLI configuration into a rule engine
// configuration, applying extra rule IDs to disable on top (CLI flags
// take precedence over the config file).
func BuildLintConfig(cfg *Config, disable []string) *lint.Config {
	lintCfg := lint.NewConfig()

	if cfg != nil && cfg.Lint != nil {
		for _, id := range cfg.Lint.Disabled {
			lintCfg.Disable(strings.TrimSpace(id))
		}
		for id, sev := range cfg.Lint.Severity {
			if s, ok := lint.ParseSeverity(sev); ok {
				lintCfg.SetSeverity(id, s)
			}
		}
		for id, opts := range cfg.Lint.Rules {
			lintCfg.SetRuleOptions(id, opts)
		}
	}

	for _, id := range disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	return lintCfg
}
