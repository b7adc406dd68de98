package cmd

import (
	"fmt"

	"github.com/ecomet/investor-dashboard/internal/config"
	"github.com/spf13/cobra"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Inspect or copy the reporting dataset",
}

var datasetDumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Write the loaded dataset as YAML, keeping the exchange keys",
	Args:  cobra.ExactArgs(1),
	RunE: withSession(func(cmd *cobra.Command, args []string, s *session) error {
		if err := config.SaveDataset(s.dataset, args[0]); err != nil {
			return fmt.Errorf("dump dataset: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  wrote %s\n", args[0])
		return nil
	}),
}

func init() {
	datasetCmd.AddCommand(datasetDumpCmd)
	rootCmd.AddCommand(datasetCmd)
}
