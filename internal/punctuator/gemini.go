package punctuator

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/linesplit/internal/logger"
)

const restorePrompt = `You restore punctuation and capitalization in speech transcripts.

Rules:
- Add periods, commas, question marks, semicolons and colons where a careful editor would
- Fix sentence-initial capitalization
- Do NOT add, remove, reorder or translate any word
- Return only the restored text, no commentary

Transcript:
---
%s
---`

type implGemini struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
	generate   func(ctx context.Context, key, prompt string) (string, error)
}

// Restore sends the text to Gemini. Rotates API keys on 429 / quota errors.
func (g *implGemini) Restore(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(restorePrompt, text)

	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		key, idx := g.key()

		out, err := g.generate(ctx, key, prompt)
		if err != nil {
			if isRateLimited(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				g.rotateKey(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}
		return guard(ctx, g.logger, text, strings.TrimSpace(out)), nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *implGemini) callGemini(ctx context.Context, key, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			text.WriteString(part.Text)
		}
		return text.String(), nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

func (g *implGemini) key() (string, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apiKeys[g.currentKey], g.currentKey
}

// rotateKey moves past idx unless another caller already did.
func (g *implGemini) rotateKey(idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == idx {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
