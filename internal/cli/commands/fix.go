package commands

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/sqlfix/internal/cli/config"
	"github.com/leapstack-labs/sqlfix/pkg/cst"
	"github.com/leapstack-labs/sqlfix/pkg/dialect"
	"github.com/leapstack-labs/sqlfix/pkg/lint"
	_ "github.com/leapstack-labs/sqlfix/pkg/lint/rules/convention" // register convention rules
	_ "github.com/leapstack-labs/sqlfix/pkg/lint/rules/oracle"     // register oracle rules
	"github.com/spf13/cobra"
)

// maxFixPasses caps fix/relint cycles per file so a misbehaving rule can
// never loop forever.
const maxFixPasses = 10

// FixOptions holds options for the fix command.
type FixOptions struct {
	Paths   []string // Files or directories
	Disable []string // Rule IDs to disable
	DryRun  bool     // Report what would change without writing
}

// NewFixCommand creates the fix command.
func NewFixCommand() *cobra.Command {
	opts := &FixOptions{}
	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Apply suggested fixes to SQL files",
		Long: `Apply the fixes suggested by lint rules and rewrite the files.

Each file is fixed and re-linted until no fixable issue remains, so
fixes that expose follow-up issues (like a relocated terminator that
leaves stray whitespace) converge in one run.`,
		Example: `  # Fix the current directory
  sqlfix fix

  # Show what would change without writing
  sqlfix fix --dry-run queries/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runFix(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report what would change without writing")

	return cmd
}

func runFix(cmd *cobra.Command, opts *FixOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	d, ok := dialect.Get(cfg.Dialect)
	if !ok {
		return fmt.Errorf("unknown dialect %q", cfg.Dialect)
	}

	lintCfg := config.BuildLintConfig(cfg, opts.Disable)
	analyzer := lint.NewAnalyzer(lintCfg)

	files, err := discoverSQLFiles(opts.Paths)
	if err != nil {
		return err
	}

	fixedFiles := 0
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		fixed, passes := fixToFixedPoint(string(data), d, analyzer)
		if fixed == string(data) {
			continue
		}

		fixedFiles++
		if opts.DryRun {
			r.Printf("would fix %s (%d passes)\n", path, passes)
			continue
		}
		if err := os.WriteFile(path, []byte(fixed), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		r.Printf("fixed %s\n", path)
	}

	if fixedFiles == 0 {
		r.Success("Nothing to fix")
	} else if opts.DryRun {
		r.Printf("%d of %d files would change\n", fixedFiles, len(files))
	} else {
		r.Printf("%d of %d files fixed\n", fixedFiles, len(files))
	}
	return nil
}

// fixToFixedPoint applies fixable diagnostics and re-lints until the
// source stops changing, returning the final text and pass count.
func fixToFixedPoint(source string, d *dialect.Dialect, analyzer *lint.Analyzer) (string, int) {
	passes := 0
	for i := 0; i < maxFixPasses; i++ {
		file := cst.ParseWithTerminators(source, d.ExtraTerminators)

		var fixable []lint.Diagnostic
		for _, diag := range analyzer.AnalyzeFile(file, d) {
			if diag.Fixable() {
				fixable = append(fixable, diag)
			}
		}
		if len(fixable) == 0 {
			break
		}

		next := lint.Apply(file, fixable)
		passes++
		if next == source {
			break
		}
		source = next
	}
	return source, passes
}
