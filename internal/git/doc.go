// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Repository setup (metadata detection, init)
//   - Global identity configuration
//   - Remote management (lookup, add, set-url)
//   - Publishing (stage, commit, branch rename, push)
//
// Metadata detection uses go-git. Everything else shells out to git so that
// linked worktrees and included config files resolve the way git sees them.
package git
