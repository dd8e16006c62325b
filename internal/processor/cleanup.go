package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToOutput moves a finished file from the temp folder to the output folder
func (p *implProcessor) moveToOutput(ctx context.Context, path string) (string, error) {
	dest := filepath.Join(p.cfg.Paths.Output, filepath.Base(path))

	p.logger.Debug(ctx, "Moving to output: %s -> %s", path, dest)

	if err := moveFile(path, dest); err != nil {
		return "", fmt.Errorf("move to output: %w", err)
	}
	return dest, nil
}

// moveToArchived moves the processed input out of the watched folder
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))

	p.logger.Debug(ctx, "Archiving: %s -> %s", path, dest)

	if err := moveFile(path, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}

// moveFile renames src to dst, copying when they sit on different devices.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
