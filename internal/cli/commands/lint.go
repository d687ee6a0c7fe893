package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/sqlfix/internal/cli/config"
	"github.com/leapstack-labs/sqlfix/internal/cli/output"
	"github.com/leapstack-labs/sqlfix/pkg/dialect"
	"github.com/leapstack-labs/sqlfix/pkg/lint"
	_ "github.com/leapstack-labs/sqlfix/pkg/lint/rules/convention" // register convention rules
	_ "github.com/leapstack-labs/sqlfix/pkg/lint/rules/oracle"     // register oracle rules
	"github.com/spf13/cobra"
)

// LintOptions holds options for the lint command.
type LintOptions struct {
	Paths    []string // Files or directories
	Format   string   // Output format: text, markdown, json
	Disable  []string // Rule IDs to disable
	Severity string   // Minimum severity: error, warning, info, hint
	Rules    []string // Run only specific rules
	Watch    bool     // Re-lint on file changes
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint SQL files for terminator issues",
		Long: `Analyze SQL files and report statement terminator violations.

Each finding comes with a suggested fix; run 'sqlfix fix' to apply them.
Rules can be configured in sqlfix.yaml.`,
		Example: `  # Lint the current directory
  sqlfix lint

  # Lint specific paths
  sqlfix lint queries/ migrations/001_init.sql

  # Output as JSON
  sqlfix lint --format json

  # Disable a rule
  sqlfix lint --disable OR01

  # Re-lint whenever a file changes
  sqlfix lint --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runLint(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "hint", "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-lint on file changes")

	return cmd
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	d, ok := dialect.Get(cfg.Dialect)
	if !ok {
		return fmt.Errorf("unknown dialect %q", cfg.Dialect)
	}

	lintCfg := buildLintConfig(cfg, opts)

	runOnce := func() (bool, error) {
		files, err := discoverSQLFiles(opts.Paths)
		if err != nil {
			return false, err
		}
		results, err := analyzeFiles(files, d, lintCfg)
		if err != nil {
			return false, err
		}
		results = filterBySeverity(results, opts.Severity)
		return renderLintResults(r, results), nil
	}

	if opts.Watch {
		return watchAndLint(cmd, opts.Paths, runOnce)
	}

	hasIssues, err := runOnce()
	if err != nil {
		return err
	}
	if hasIssues {
		return fmt.Errorf("lint issues found")
	}
	return nil
}

func buildLintConfig(cfg *config.Config, opts *LintOptions) *lint.Config {
	lintCfg := config.BuildLintConfig(cfg, opts.Disable)

	// If --rule specified, disable all others
	if len(opts.Rules) > 0 {
		enabled := make(map[string]bool)
		for _, id := range opts.Rules {
			enabled[strings.TrimSpace(id)] = true
		}
		for _, rule := range lint.GetAll() {
			if !enabled[rule.ID] {
				lintCfg.Disable(rule.ID)
			}
		}
	}

	return lintCfg
}

// watchAndLint re-runs the lint pass whenever a watched file changes.
func watchAndLint(cmd *cobra.Command, paths []string, runOnce func() (bool, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	watchPaths := paths
	if len(watchPaths) == 0 {
		watchPaths = []string{"."}
	}
	for _, p := range watchPaths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			p = filepath.Dir(p)
		}
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
	}

	if _, err := runOnce(); err != nil {
		return err
	}

	// Small settle delay so editors that write in multiple events only
	// trigger one re-lint.
	const settle = 200 * time.Millisecond
	var pending *time.Timer
	rerun := make(chan struct{}, 1)

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(ev.Name), ".sql") {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(settle, func() {
				select {
				case rerun <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "err", err)
		case <-rerun:
			if _, err := runOnce(); err != nil {
				return err
			}
		}
	}
}

// LintSummary aggregates issue counts for output.
type LintSummary struct {
	FilesAnalyzed int `json:"files_analyzed"`
	TotalIssues   int `json:"total_issues"`
	Errors        int `json:"errors"`
	Warnings      int `json:"warnings"`
	Info          int `json:"info"`
	Hints         int `json:"hints"`
}

// LintDiagnostic is the JSON form of one finding.
type LintDiagnostic struct {
	RuleID   string `json:"rule_id"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Fixable  bool   `json:"fixable"`
}

// LintFileResult is the JSON form of one file's findings.
type LintFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []LintDiagnostic `json:"diagnostics"`
}

// LintOutput is the JSON output document.
type LintOutput struct {
	Summary LintSummary      `json:"summary"`
	Files   []LintFileResult `json:"files,omitempty"`
}

func renderLintResults(r *output.Renderer, results []fileResult) bool {
	// Only files with findings are shown.
	var flagged []fileResult
	summary := LintSummary{}
	for _, res := range results {
		if len(res.Diagnostics) == 0 {
			continue
		}
		flagged = append(flagged, res)
		summary.TotalIssues += len(res.Diagnostics)
		for _, d := range res.Diagnostics {
			switch d.Severity {
			case lint.SeverityError:
				summary.Errors++
			case lint.SeverityWarning:
				summary.Warnings++
			case lint.SeverityInfo:
				summary.Info++
			case lint.SeverityHint:
				summary.Hints++
			}
		}
	}
	summary.FilesAnalyzed = len(results)

	if r.EffectiveMode() == output.ModeJSON {
		doc := LintOutput{Summary: summary}
		for _, res := range flagged {
			fileOut := LintFileResult{Path: res.Path}
			for _, d := range res.Diagnostics {
				fileOut.Diagnostics = append(fileOut.Diagnostics, LintDiagnostic{
					RuleID:   d.RuleID,
					Severity: d.Severity.String(),
					Message:  d.Message,
					Line:     d.Pos.Line,
					Column:   d.Pos.Column,
					Fixable:  d.Fixable(),
				})
			}
			doc.Files = append(doc.Files, fileOut)
		}
		_ = r.JSON(doc)
		return len(flagged) > 0
	}

	if len(flagged) == 0 {
		r.Success("No lint issues found")
		return false
	}

	for _, res := range flagged {
		r.Println(r.Styles().FilePath.Render(res.Path))
		for _, d := range res.Diagnostics {
			loc := fmt.Sprintf("%d:%d", d.Pos.Line, d.Pos.Column)
			if d.Pos.Line == 0 {
				loc = "-"
			}
			r.Printf("  %s  %s  %s  %s\n",
				r.Styles().Muted.Render(fmt.Sprintf("%-6s", loc)),
				severityStyle(r, d.Severity),
				r.Styles().Bold.Render(d.RuleID),
				d.Message,
			)
		}
		r.Println("")
	}

	summaryParts := []string{fmt.Sprintf("%d issues", summary.TotalIssues)}
	if summary.Errors > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d hints", summary.Hints))
	}
	r.Printf("Summary: %s in %d files\n", strings.Join(summaryParts, ", "), summary.FilesAnalyzed)

	return true
}

func severityStyle(r *output.Renderer, sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return r.Styles().Error.Render("error  ")
	case lint.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case lint.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	case lint.SeverityHint:
		return r.Styles().Muted.Render("hint   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}
