// Package commands implements the sqlfix subcommands.
package commands

import (
	"github.com/leapstack-labs/sqlfix/internal/cli/config"
	"github.com/leapstack-labs/sqlfix/internal/cli/output"
	"github.com/spf13/cobra"
)

// ConfigKey stores the loaded config in the command context.
type ConfigKey struct{}

// RendererKey stores the renderer in the command context.
type RendererKey struct{}

// CommandContext bundles what every command needs.
type CommandContext struct {
	Cfg      *config.Config
	Renderer *output.Renderer
}

// NewCommandContext extracts config and renderer from the command
// context, falling back to defaults when the root command's setup was
// skipped (e.g. in tests).
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := &CommandContext{}
	if cfg, ok := cmd.Context().Value(ConfigKey{}).(*config.Config); ok {
		ctx.Cfg = cfg
	} else {
		ctx.Cfg = &config.Config{Dialect: "ansi", OutputFormat: "auto"}
	}
	if r, ok := cmd.Context().Value(RendererKey{}).(*output.Renderer); ok {
		ctx.Renderer = r
	} else {
		ctx.Renderer = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ModeAuto)
	}
	return ctx
}
