package cmd

import (
	"fmt"

	"github.com/ecomet/investor-dashboard/internal/output"
	"github.com/spf13/cobra"
)

var projectionCmd = &cobra.Command{
	Use:   "projection",
	Short: "Capital growth projection table",
	RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
		dash, err := s.dashboard()
		if err != nil {
			return err
		}
		v := output.NewViews(s.locale)
		_, err = fmt.Fprintln(cmd.OutOrStdout(), v.Projection(dash))
		return err
	}),
}

var funnelCmd = &cobra.Command{
	Use:   "funnel",
	Short: "Reconciliation funnel and sales quality",
	RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
		dash, err := s.dashboard()
		if err != nil {
			return err
		}
		v := output.NewViews(s.locale)
		_, err = fmt.Fprintln(cmd.OutOrStdout(), v.KPIs(dash)+"\n"+v.Funnel(dash, 30)+"\n"+v.SalesQuality(dash))
		return err
	}),
}

func init() {
	rootCmd.AddCommand(projectionCmd)
	rootCmd.AddCommand(funnelCmd)
}
