package runtime

import (
	"context"
	"os"
	"time"

	"gitlaunch.dev/gitlaunch/internal/git"
	"gitlaunch.dev/gitlaunch/internal/github"
	"gitlaunch.dev/gitlaunch/internal/output"
	"gitlaunch.dev/gitlaunch/internal/sshkey"
)

// Context provides access to collaborators and output for actions
type Context struct {
	Context context.Context
	Splog   *output.Splog
	WorkDir string
	HomeDir string
	Git     *git.CommandRunner
	Keys    *sshkey.Provisioner

	// NewGitHubClient builds the hosted API client once a token is known
	NewGitHubClient github.ClientFactory
	// Now returns the current time (license year)
	Now func() time.Time
	// Hostname returns the local hostname (key title)
	Hostname func() (string, error)
}

// NewContext creates a context wired to the real git executable, the
// filesystem under homeDir and the GitHub API.
func NewContext(ctx context.Context, workDir, homeDir string, splog *output.Splog) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if splog == nil {
		splog = output.NewSplog()
	}
	return &Context{
		Context:         ctx,
		Splog:           splog,
		WorkDir:         workDir,
		HomeDir:         homeDir,
		Git:             git.NewCommandRunner(workDir),
		Keys:            sshkey.NewProvisioner(homeDir),
		NewGitHubClient: github.NewRealClient,
		Now:             time.Now,
		Hostname:        os.Hostname,
	}
}
