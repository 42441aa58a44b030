package git

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	gitlauncherrors "gitlaunch.dev/gitlaunch/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
	env        []string
	stdout     io.Writer
	stderr     io.Writer
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{
		workingDir: workingDir,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// WithEnv returns a copy of the runner that appends env to every command's environment.
func (r *CommandRunner) WithEnv(env ...string) *CommandRunner {
	clone := *r
	clone.env = append(append([]string{}, r.env...), env...)
	return &clone
}

// WithOutput returns a copy of the runner whose attached commands write to stdout and stderr.
func (r *CommandRunner) WithOutput(stdout, stderr io.Writer) *CommandRunner {
	clone := *r
	clone.stdout = stdout
	clone.stderr = stderr
	return &clone
}

// Run executes a git command with the given context and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, true, args...)
}

// RunLines executes a git command and returns output as lines
func (r *CommandRunner) RunLines(ctx context.Context, args ...string) ([]string, error) {
	output, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

func (r *CommandRunner) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}
	return cmd
}

// runInternal is the internal implementation that handles directory and environment
func (r *CommandRunner) runInternal(ctx context.Context, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := r.command(ctx, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", gitlauncherrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", gitlauncherrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}

// RunAttached executes a git command with stdin connected to the terminal and
// output streamed to the runner's writers, so git can prompt for credentials.
// Stderr is also captured and reported in the returned error.
func (r *CommandRunner) RunAttached(ctx context.Context, args ...string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	out, errOut := r.stdout, r.stderr
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	cmd := r.command(ctx, args...)
	var stderr bytes.Buffer
	cmd.Stdin = os.Stdin
	cmd.Stdout = out
	cmd.Stderr = io.MultiWriter(errOut, &stderr)

	if err := cmd.Run(); err != nil {
		return gitlauncherrors.NewGitCommandError("git", args, "", stderr.String(), err)
	}
	return nil
}
