package git

import (
	"context"
	"fmt"
	"slices"
)

// DefaultRemote is the remote name used for publishing
const DefaultRemote = "origin"

// ListRemotes returns the configured remote names.
// git resolves linked worktrees and included config files.
func (r *CommandRunner) ListRemotes(ctx context.Context) ([]string, error) {
	remotes, err := r.RunLines(ctx, "remote")
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	return remotes, nil
}

// RemoteExists reports whether a remote with the given name is configured
func (r *CommandRunner) RemoteExists(ctx context.Context, name string) (bool, error) {
	remotes, err := r.ListRemotes(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(remotes, name), nil
}

// GetRemoteURL returns the URL of the named remote
func (r *CommandRunner) GetRemoteURL(ctx context.Context, name string) (string, error) {
	url, err := r.Run(ctx, "remote", "get-url", name)
	if err != nil {
		return "", fmt.Errorf("failed to get url of remote %s: %w", name, err)
	}
	return url, nil
}

// AddRemote adds a new remote
func (r *CommandRunner) AddRemote(ctx context.Context, name, url string) error {
	if _, err := r.Run(ctx, "remote", "add", name, url); err != nil {
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}

// SetRemoteURL points an existing remote at url
func (r *CommandRunner) SetRemoteURL(ctx context.Context, name, url string) error {
	if _, err := r.Run(ctx, "remote", "set-url", name, url); err != nil {
		return fmt.Errorf("failed to set url of remote %s: %w", name, err)
	}
	return nil
}
