package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ecomet/investor-dashboard/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive tabbed dashboard",
	RunE: withSession(func(_ *cobra.Command, _ []string, s *session) error {
		dash, err := s.dashboard()
		if err != nil {
			return err
		}
		app := tui.NewApp(dash, s.locale, tui.ThemeByName(s.settings.Display.Theme))
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
