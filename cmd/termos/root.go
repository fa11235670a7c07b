package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/TermOS/internal/config"
	"github.com/GriffinCanCode/TermOS/internal/logging"
	"github.com/GriffinCanCode/TermOS/internal/shell"
)

var (
	flagStateDir string
	flagColor    string
	flagLogLevel string

	rootCmd = &cobra.Command{
		Use:           "termos",
		Short:         "A toy shell over a persistent virtual filesystem",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, _, err := newSession()
			if err != nil {
				return err
			}
			return sh.Run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStateDir, "state-dir", "", "state directory (default ~/.termos)")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "color mode: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(restoreCmd)
}

// loadConfig resolves configuration with flags taking precedence over
// environment and rc file.
func loadConfig() (*config.Config, error) {
	if flagStateDir != "" {
		// The rc file lives in the state dir, so this must win before
		// config.Load reads it.
		os.Setenv("TERMOS_STATE_DIR", flagStateDir)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagColor != "" {
		cfg.Shell.Color = flagColor
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if err := os.MkdirAll(cfg.State.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{cfg.LogPath()},
	})
}

func newSession() (*shell.Shell, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	sh, err := shell.New(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return sh, cfg, nil
}
