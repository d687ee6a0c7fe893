package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/sqlfix/internal/cli/output"
	"github.com/leapstack-labs/sqlfix/pkg/lint"
	_ "github.com/leapstack-labs/sqlfix/pkg/lint/rules/convention" // register convention rules
	_ "github.com/leapstack-labs/sqlfix/pkg/lint/rules/oracle"     // register oracle rules
	"github.com/spf13/cobra"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group  string // Filter by group
	Format string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List all available lint rules with their documentation.

Pass a rule ID to see its full documentation, including examples.`,
		Example: `  # List all rules
  sqlfix rules

  # Show details for a specific rule
  sqlfix rules CV06

  # List rules in the oracle group
  sqlfix rules --group oracle

  # Output as JSON
  sqlfix rules --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := rulesRenderer(cmd, opts)

	rules := lint.GetAll()
	if opts.Group != "" {
		rules = lint.GetByGroup(opts.Group)
	}

	if r.EffectiveMode() == output.ModeJSON {
		infos := make([]lint.RuleInfo, 0, len(rules))
		for _, rule := range rules {
			infos = append(infos, lint.GetRuleInfo(rule))
		}
		return r.JSON(infos)
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"ID", "Name", "Group", "Severity", "Dialects", "Description"})
	for _, rule := range rules {
		dialects := "all"
		if len(rule.Dialects) > 0 {
			dialects = strings.Join(rule.Dialects, ", ")
		}
		t.AppendRow(table.Row{
			rule.ID, rule.Name, rule.Group, rule.Severity.String(), dialects, rule.Description,
		})
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(t.RenderMarkdown())
	} else {
		r.Println(t.Render())
	}
	return nil
}

func showRule(cmd *cobra.Command, id string, opts *RulesOptions) error {
	r := rulesRenderer(cmd, opts)

	rule, ok := lint.GetByID(strings.ToUpper(strings.TrimSpace(id)))
	if !ok {
		return fmt.Errorf("unknown rule %q", id)
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(lint.GetRuleInfo(rule))
	}

	r.Println(r.Styles().Bold.Render(fmt.Sprintf("%s: %s", rule.ID, rule.Name)))
	r.Println("")
	r.Println(rule.Description)
	if rule.Rationale != "" {
		r.Println("")
		r.Println(rule.Rationale)
	}
	if len(rule.ConfigKeys) > 0 {
		r.Println("")
		r.Printf("Config keys: %s\n", strings.Join(rule.ConfigKeys, ", "))
	}
	if len(rule.Dialects) > 0 {
		r.Printf("Dialects: %s\n", strings.Join(rule.Dialects, ", "))
	}
	if rule.BadExample != "" {
		r.Println("")
		r.Println(r.Styles().Bold.Render("Anti-pattern:"))
		r.Println(indent(rule.BadExample))
	}
	if rule.GoodExample != "" {
		r.Println("")
		r.Println(r.Styles().Bold.Render("Best practice:"))
		r.Println(indent(rule.GoodExample))
	}
	return nil
}

func rulesRenderer(cmd *cobra.Command, opts *RulesOptions) *output.Renderer {
	r := NewCommandContext(cmd).Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}
	return r
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
