// Package errors provides sentinel errors and custom error types for the gitlaunch application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrGitNotFound indicates that the git executable could not be run.
	// It is the only condition that aborts a run.
	ErrGitNotFound = errors.New("git not found in PATH")

	// ErrNoPublicKey indicates that no public key file exists at the expected path
	ErrNoPublicKey = errors.New("public key not found")

	// ErrNoAgent indicates that no ssh agent socket is configured
	ErrNoAgent = errors.New("SSH_AUTH_SOCK is not set")
)

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// APIError represents a failed call to the hosting service API
type APIError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GitHub API %d (%s): %v", e.StatusCode, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("GitHub API (%s): %v", e.Endpoint, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new APIError
func NewAPIError(endpoint string, statusCode int, err error) *APIError {
	return &APIError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Err:        err,
	}
}
