package main

import (
	"context"
	"errors"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/linesplit/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Split every transcript dropped into paths.input",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a.log.Info(ctx, "System: %s/%s, CPU cores: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
		a.log.Info(ctx, "Max concurrent files: %d, split workers: %d", a.cfg.Performance.MaxConcurrent, a.cfg.Performance.Workers)
		a.log.Info(ctx, "Punctuation backend: %s, formats: %v", a.cfg.Punctuation.Backend, a.cfg.Output.Formats)

		if err := ensureDirectories(a.cfg); err != nil {
			return err
		}

		w, err := watcher.New(a.cfg.Paths.Input, a.proc.Process, a.log, a.cfg.Performance.MaxConcurrent)
		if err != nil {
			return err
		}
		defer w.Stop()

		a.log.Info(ctx, "Monitoring: %s -> %s. Press Ctrl+C to stop", a.cfg.Paths.Input, a.cfg.Paths.Output)
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		a.log.Info(context.Background(), "Shutdown complete")
		return nil
	},
}
