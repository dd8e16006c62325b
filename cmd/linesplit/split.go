package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split [files...]",
	Short: "Split transcript files once",
	Long: `Split the given transcript files into paths.output in every configured
format and move them to paths.archived. Without files, stdin is split and
the lines are printed to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		if len(args) == 0 {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			lines, stats, err := a.proc.ProcessText(ctx, string(data))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, l := range lines {
				fmt.Fprintln(out, l)
			}
			a.log.Debug(ctx, "%s", stats)
			return nil
		}

		if err := ensureDirectories(a.cfg); err != nil {
			return err
		}
		failed := 0
		for _, path := range args {
			if _, err := os.Stat(path); err != nil {
				a.log.Error(ctx, "Skipping %s: %v", path, err)
				failed++
				continue
			}
			if err := a.proc.Process(ctx, path); err != nil {
				a.log.Error(ctx, "Failed to process %s: %v", path, err)
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed", failed, len(args))
		}
		return nil
	},
}
