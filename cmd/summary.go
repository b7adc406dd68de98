package cmd

import (
	"github.com/ecomet/investor-dashboard/internal/output"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Full dashboard in the terminal (default)",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

var runSummary = withSession(func(cmd *cobra.Command, _ []string, s *session) error {
	dash, err := s.dashboard()
	if err != nil {
		return err
	}
	return output.GenerateReport(cmd.OutOrStdout(), dash, "console", s.locale)
})
