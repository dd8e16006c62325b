package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/linesplit/internal/config"
	"github.com/nguyentantai21042004/linesplit/internal/logger"
	"github.com/nguyentantai21042004/linesplit/internal/processor"
	"github.com/nguyentantai21042004/linesplit/pkg/executor"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "linesplit",
	Short: "Split long transcript sentences into subtitle-sized lines",
	Long: `linesplit cleans transcript text, optionally restores its punctuation,
and recursively breaks long sentences at punctuation and conjunctions so that
every output line fits on screen.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yaml (defaults when empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level")

	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(watchCmd)
}

// app holds what every subcommand needs.
type app struct {
	cfg  *config.Config
	log  logger.Logger
	proc processor.Processor
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	log, err := logger.NewWithConfig(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
		MaxAge: cfg.Logging.MaxAge,
	})
	if err != nil {
		return nil, err
	}

	proc, err := processor.New(cfg, executor.New(), log)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: log, proc: proc}, nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
