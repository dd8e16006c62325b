package processor

import (
	"fmt"

	"github.com/nguyentantai21042004/linesplit/internal/cleaner"
	"github.com/nguyentantai21042004/linesplit/internal/config"
	"github.com/nguyentantai21042004/linesplit/internal/logger"
	"github.com/nguyentantai21042004/linesplit/internal/punctuator"
	"github.com/nguyentantai21042004/linesplit/internal/splitter"
	"github.com/nguyentantai21042004/linesplit/internal/writer"
	"github.com/nguyentantai21042004/linesplit/pkg/executor"
)

type implProcessor struct {
	cfg        *config.Config
	cleaner    cleaner.Cleaner
	punctuator punctuator.Punctuator
	splitter   splitter.Splitter
	writers    []writer.Writer
	logger     logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Processor, error) {
	vocab := cfg.Vocabulary()

	sp, err := splitter.New(cfg.SplitterOptions(), vocab)
	if err != nil {
		return nil, fmt.Errorf("create splitter: %w", err)
	}
	cl, err := cleaner.New(cfg.Cleaning.Steps, vocab.Abbreviations)
	if err != nil {
		return nil, fmt.Errorf("create cleaner: %w", err)
	}
	pu, err := punctuator.New(cfg.Punctuation, cfg.APIKeys(), exec, log)
	if err != nil {
		return nil, fmt.Errorf("create punctuator: %w", err)
	}
	ws, err := writer.NewAll(cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("create writers: %w", err)
	}

	return &implProcessor{
		cfg:        cfg,
		cleaner:    cl,
		punctuator: pu,
		splitter:   sp,
		writers:    ws,
		logger:     log,
	}, nil
}
