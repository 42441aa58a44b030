package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// HasMetadata reports whether dir itself holds git metadata, either a .git
// directory or the .git file of a linked worktree. Parent directories are not
// searched.
func HasMetadata(dir string) (bool, error) {
	_, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          false,
		EnableDotGitCommonDir: true,
	})
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return false, nil
	}
	return false, fmt.Errorf("failed to open repository: %w", err)
}

// Init runs `git init` in the runner's working directory.
func (r *CommandRunner) Init(ctx context.Context) error {
	if _, err := r.Run(ctx, "init"); err != nil {
		return fmt.Errorf("failed to init repository: %w", err)
	}
	return nil
}
