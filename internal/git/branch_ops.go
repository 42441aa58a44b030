package git

import (
	"context"
	"fmt"
)

// DefaultBranch is the branch name the first push publishes
const DefaultBranch = "main"

// RenameCurrentBranch force-renames the current branch to name (`git branch -M`).
func (r *CommandRunner) RenameCurrentBranch(ctx context.Context, name string) error {
	if _, err := r.Run(ctx, "branch", "-M", name); err != nil {
		return fmt.Errorf("failed to rename current branch to %s: %w", name, err)
	}
	return nil
}

// CurrentBranch returns the short name of the checked out branch
func (r *CommandRunner) CurrentBranch(ctx context.Context) (string, error) {
	branch, err := r.Run(ctx, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return branch, nil
}
