package git

import (
	"context"
	"fmt"
)

// PushUpstream pushes branchName to remote and sets it as the upstream.
// Output is streamed so git can prompt for credentials.
func (r *CommandRunner) PushUpstream(ctx context.Context, remote, branchName string) error {
	if err := r.RunAttached(ctx, "push", "-u", remote, branchName); err != nil {
		return fmt.Errorf("failed to push branch %s: %w", branchName, err)
	}
	return nil
}
