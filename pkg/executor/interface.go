package executor

import "context"

// Executor runs external commands.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// ExecuteWithInput feeds input to the command's stdin.
	ExecuteWithInput(ctx context.Context, input string, name string, args ...string) (string, error)
}
