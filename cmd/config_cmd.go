package cmd

import (
	"fmt"
	"os"

	"github.com/ecomet/investor-dashboard/internal/config"
	"github.com/spf13/cobra"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadSettings(flagConfig)
		if err != nil {
			return err
		}
		path := settingsPath()
		w := cmd.OutOrStdout()

		fmt.Fprintf(w, "  Settings file: %s\n", path)
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintln(w, "  Status: loaded")
		} else {
			fmt.Fprintln(w, "  Status: using defaults (no settings file)")
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  [General]")
		if cfg.General.DataFile != "" {
			fmt.Fprintf(w, "    Data file: %s\n", cfg.General.DataFile)
		} else {
			fmt.Fprintln(w, "    Data file: bundled snapshot")
		}
		fmt.Fprintf(w, "    Format:    %s\n", cfg.General.Format)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  [Display]")
		fmt.Fprintf(w, "    Locale:    %s\n", cfg.Display.Locale)
		fmt.Fprintf(w, "    Theme:     %s\n", cfg.Display.Theme)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the default values",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := settingsPath()
		if _, err := os.Stat(path); err == nil && !flagForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.SaveSettings(path, config.DefaultSettings()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  wrote %s\n", path)
		return nil
	},
}

func settingsPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.SettingsPath()
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing settings file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
