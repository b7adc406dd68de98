package cmd

import (
	"fmt"

	"github.com/ecomet/investor-dashboard/internal/output"
	"github.com/spf13/cobra"
)

var (
	flagFormat string
	flagOutDir string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the dashboard as console, csv, dataset-csv, json, yaml or html",
	Long: `Renders the dashboard in the requested format. Output goes to stdout unless
--out-dir is set, in which case a timestamped file is written there.
--format all writes every format to --out-dir.`,
	RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
		format := flagFormat
		if format == "" {
			format = s.settings.General.Format
		}
		dash, err := s.dashboard()
		if err != nil {
			return err
		}
		if flagOutDir == "" {
			if output.NormalizeFormatName(format) == output.FormatAll {
				return fmt.Errorf("--format all requires --out-dir")
			}
			return output.GenerateReport(cmd.OutOrStdout(), dash, format, s.locale)
		}
		paths, err := output.WriteReport(flagOutDir, dash, format, s.locale)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "  wrote %s\n", p)
		}
		return nil
	}),
}

func init() {
	exportCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Output format (default from settings)")
	exportCmd.Flags().StringVarP(&flagOutDir, "out-dir", "o", "", "Write report files to this directory")
	rootCmd.AddCommand(exportCmd)
}
