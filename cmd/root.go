// Package cmd implements the ecomet CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/ecomet/investor-dashboard/internal/calculation"
	"github.com/ecomet/investor-dashboard/internal/config"
	"github.com/ecomet/investor-dashboard/internal/dataset"
	"github.com/ecomet/investor-dashboard/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var (
	flagData    string
	flagConfig  string
	flagLocale  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "ecomet",
	Short:         "Ecomet investor dashboard",
	Long:          "Render the Ecomet seller snapshot and the capital growth projection.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagData, "data", "d", "", "Dataset file (YAML or JSON); defaults to the bundled snapshot")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Settings file (default $XDG_CONFIG_HOME/ecomet/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&flagLocale, "locale", "l", "", "Number formatting locale, e.g. en-US or de-DE")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// newLogger builds the CLI logger: warnings and above on stderr, or debug
// with --verbose.
func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return l.Sugar(), nil
}

// session is the shared state every command loads before rendering.
type session struct {
	settings config.Settings
	locale   language.Tag
	logger   calculation.Logger
	dataset  *domain.Dataset
}

// loadSession resolves settings, the locale and the dataset.
func loadSession(logger calculation.Logger) (*session, error) {
	settings, err := config.LoadSettings(flagConfig)
	if err != nil {
		return nil, err
	}
	s := &session{settings: settings, locale: settings.Language(), logger: logger}
	if flagLocale != "" {
		tag, err := language.Parse(flagLocale)
		if err != nil {
			return nil, fmt.Errorf("--locale %q: %w", flagLocale, err)
		}
		s.locale = tag
	}

	parser := config.NewInputParser(logger)
	path := flagData
	if path == "" {
		path = settings.General.DataFile
	}
	if path == "" {
		logger.Debugf("using bundled snapshot")
		if s.dataset, err = dataset.Default(); err == nil {
			parser.NormalizeDataset(s.dataset)
		}
	} else {
		logger.Debugf("loading dataset from %s", path)
		s.dataset, _, err = parser.LoadDataset(path)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// dashboard runs the projection engine over the session dataset.
func (s *session) dashboard() (*domain.Dashboard, error) {
	engine := calculation.NewProjectionEngine()
	engine.SetLogger(s.logger)
	return engine.BuildDashboard(s.dataset, domain.DefaultProjectionConfig())
}

// withSession wraps a command body with logger and session setup.
func withSession(run func(cmd *cobra.Command, args []string, s *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(flagVerbose)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		s, err := loadSession(logger)
		if err != nil {
			return err
		}
		return run(cmd, args, s)
	}
}
