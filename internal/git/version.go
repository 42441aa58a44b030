package git

import (
	"context"
	"fmt"

	gitlauncherrors "gitlaunch.dev/gitlaunch/internal/errors"
)

// Version returns the output of `git --version`.
func (r *CommandRunner) Version(ctx context.Context) (string, error) {
	return r.Run(ctx, "--version")
}

// EnsureAvailable checks that the git executable can be run.
// The returned error wraps ErrGitNotFound.
func (r *CommandRunner) EnsureAvailable(ctx context.Context) error {
	if _, err := r.Version(ctx); err != nil {
		return fmt.Errorf("%w: %w", gitlauncherrors.ErrGitNotFound, err)
	}
	return nil
}
