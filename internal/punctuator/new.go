package punctuator

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/linesplit/internal/config"
	"github.com/nguyentantai21042004/linesplit/internal/logger"
	"github.com/nguyentantai21042004/linesplit/pkg/executor"
)

// New returns the backend selected by cfg.Backend. Gemini needs at least one API key.
func New(cfg config.PunctuationConfig, apiKeys []string, exec executor.Executor, log logger.Logger) (Punctuator, error) {
	switch cfg.Backend {
	case "", config.BackendNone:
		return implNone{}, nil
	case config.BackendCommand:
		return &implCommand{
			executor: exec,
			command:  cfg.Command,
			args:     cfg.Args,
			logger:   log,
		}, nil
	case config.BackendGemini:
		if len(apiKeys) == 0 {
			return nil, fmt.Errorf("gemini backend needs API keys in $%s", cfg.APIKeyEnv)
		}
		g := &implGemini{
			apiKeys: apiKeys,
			model:   cfg.Model,
			logger:  log,
		}
		g.generate = g.callGemini
		return g, nil
	default:
		return nil, fmt.Errorf("unknown punctuation backend %q", cfg.Backend)
	}
}

type implNone struct{}

func (implNone) Restore(_ context.Context, text string) (string, error) {
	return text, nil
}
