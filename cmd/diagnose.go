package cmd

import (
	"fmt"

	"github.com/ecomet/investor-dashboard/internal/calculation"
	"github.com/ecomet/investor-dashboard/internal/domain"
	"github.com/ecomet/investor-dashboard/internal/output"
	"github.com/spf13/cobra"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Check the dataset for unreadable values and inconsistent totals",
	Long: `Lists dataset fields that could not be read as numbers and totals that
disagree with their breakdowns. Findings never change the exit status.`,
	RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
		return printIssues(cmd, calculation.Inspect(s.dataset))
	}),
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)
}

func printIssues(cmd *cobra.Command, issues []domain.Issue) error {
	w := cmd.OutOrStdout()
	if len(issues) == 0 {
		_, err := fmt.Fprintln(w, "  No issues found.")
		return err
	}
	warnings := 0
	for _, is := range issues {
		if is.Severity == domain.SeverityWarning {
			warnings++
		}
		if _, err := fmt.Fprintf(w, "%s [%s]\n", output.RenderWarning(is.Path, is.Message), is.Severity); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n  %d issue(s), %d warning(s)\n", len(issues), warnings)
	return err
}
