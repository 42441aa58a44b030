package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRepo represents a Git working directory for testing purposes.
// Commands inherit the scene's isolated environment.
type GitRepo struct {
	Dir string
}

// Init runs `git init` with main as the initial branch and sets a local identity.
func (r *GitRepo) Init() error {
	if err := r.runGitCommand("-c", "init.defaultBranch=main", "init"); err != nil {
		return fmt.Errorf("failed to init repo: %w", err)
	}
	if err := r.runGitCommand("config", "user.name", "Test User"); err != nil {
		return err
	}
	return r.runGitCommand("config", "user.email", "test@example.com")
}

// runGitCommand executes a git command in the repository directory.
func (r *GitRepo) runGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	if os.Getenv("DEBUG") != "" {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}

// RunGitCommand executes a git command and returns an error if it fails.
func (r *GitRepo) RunGitCommand(args ...string) error {
	return r.runGitCommand(args...)
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CreateChangeAndCommit writes a file and commits it.
func (r *GitRepo) CreateChangeAndCommit(textValue, prefix string) error {
	name := filepath.Join(r.Dir, prefix+"_test.txt")
	if err := os.WriteFile(name, []byte(textValue), 0o644); err != nil {
		return err
	}
	if err := r.runGitCommand("add", "-A"); err != nil {
		return err
	}
	return r.runGitCommand("commit", "-m", textValue)
}

// CurrentBranchName returns the current branch name.
func (r *GitRepo) CurrentBranchName() (string, error) {
	return r.RunGitCommandAndGetOutput("symbolic-ref", "--short", "HEAD")
}

// ListCommitMessages returns the subjects of all commits reachable from HEAD.
func (r *GitRepo) ListCommitMessages() ([]string, error) {
	output, err := r.RunGitCommandAndGetOutput("log", "--format=%s")
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// RemoteURL returns the URL of the named remote.
func (r *GitRepo) RemoteURL(name string) (string, error) {
	return r.RunGitCommandAndGetOutput("remote", "get-url", name)
}

// Remotes returns the configured remote names.
func (r *GitRepo) Remotes() ([]string, error) {
	output, err := r.RunGitCommandAndGetOutput("remote")
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// CreateBareRemote creates a bare repository at root/owner/repo.git, where a
// hosted remote URL can be redirected with RedirectHost.
func CreateBareRemote(root, owner, repo string) (string, error) {
	bareDir := filepath.Join(root, owner, repo+".git")
	if err := os.MkdirAll(filepath.Dir(bareDir), 0o755); err != nil {
		return "", err
	}

	cmd := exec.Command("git", "init", "--bare", bareDir)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to create bare repo: %w", err)
	}
	return bareDir, nil
}

// RedirectHost adds a global url.<root>.insteadOf rule so that git operations
// against prefix (for example "https://github.com/") hit directories under root.
func RedirectHost(root, prefix string) error {
	base := strings.TrimSuffix(filepath.ToSlash(root), "/") + "/"
	cmd := exec.Command("git", "config", "--global", "--add", "url."+base+".insteadOf", prefix)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to add insteadOf rule: %w, output: %s", err, string(output))
	}
	return nil
}

// BareBranchSHA returns the SHA of branch in a bare repository, or an error when missing.
func BareBranchSHA(bareDir, branch string) (string, error) {
	cmd := exec.Command("git", "--git-dir", bareDir, "rev-parse", "--verify", "refs/heads/"+branch)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("branch %s not found in %s: %w", branch, bareDir, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// GlobalConfigValue reads a key from the isolated global git config.
func GlobalConfigValue(key string) string {
	output, err := exec.Command("git", "config", "--global", key).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}
