package git

import (
	"context"
	"fmt"
)

// Global identity keys.
const (
	UserNameKey  = "user.name"
	UserEmailKey = "user.email"
)

// GetGlobalConfig returns the value of key from the user's global git config.
// An unset key is reported as an error by git (exit status 1).
func (r *CommandRunner) GetGlobalConfig(ctx context.Context, key string) (string, error) {
	value, err := r.Run(ctx, "config", "--global", key)
	if err != nil {
		return "", fmt.Errorf("failed to read global %s: %w", key, err)
	}
	return value, nil
}

// SetGlobalConfig writes key=value to the user's global git config.
func (r *CommandRunner) SetGlobalConfig(ctx context.Context, key, value string) error {
	if _, err := r.Run(ctx, "config", "--global", key, value); err != nil {
		return fmt.Errorf("failed to set global %s: %w", key, err)
	}
	return nil
}
