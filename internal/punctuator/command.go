package punctuator

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/linesplit/internal/logger"
	"github.com/nguyentantai21042004/linesplit/pkg/executor"
)

// implCommand pipes text through an external restorer reading stdin.
type implCommand struct {
	executor executor.Executor
	command  string
	args     []string
	logger   logger.Logger
}

func (p *implCommand) Restore(ctx context.Context, text string) (string, error) {
	p.logger.Debug(ctx, "Restoring punctuation with %s", p.command)

	out, err := p.executor.ExecuteWithInput(ctx, text, p.command, p.args...)
	if err != nil {
		return "", fmt.Errorf("run restorer: %w", err)
	}
	return guard(ctx, p.logger, text, strings.TrimSpace(out)), nil
}
