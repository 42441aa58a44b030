package git

import (
	"context"
	"fmt"
)

// Commit creates a commit with the given message from the staged changes.
// git refuses to create an empty commit, which is reported as an error.
func (r *CommandRunner) Commit(ctx context.Context, message string) error {
	if _, err := r.Run(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
