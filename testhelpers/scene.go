package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// Scene represents a test scene: an empty working directory plus an isolated
// home directory and global git configuration.
//
// NewScene sets process environment variables, so tests that use it cannot
// run in parallel.
type Scene struct {
	Dir          string
	Home         string
	GlobalConfig string
	Repo         *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene and changes into its working directory.
// Everything is removed by t.Cleanup().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, "work")
	home := filepath.Join(root, "home")
	for _, d := range []string{dir, home} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("Failed to create %s: %v", d, err)
		}
	}

	globalConfig := filepath.Join(home, ".gitconfig")
	if err := os.WriteFile(globalConfig, nil, 0o644); err != nil {
		t.Fatalf("Failed to write global config: %v", err)
	}

	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("GIT_CONFIG_GLOBAL", globalConfig)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_TERMINAL_PROMPT", "0")
	t.Setenv("SSH_AUTH_SOCK", "")
	t.Chdir(dir)

	scene := &Scene{
		Dir:          dir,
		Home:         home,
		GlobalConfig: globalConfig,
		Repo:         &GitRepo{Dir: dir},
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// InitRepoSetup initializes git metadata in the scene directory with a local identity.
func InitRepoSetup(scene *Scene) error {
	return scene.Repo.Init()
}

// WriteFile writes content to a path relative to the scene directory.
func (s *Scene) WriteFile(name, content string) error {
	path := filepath.Join(s.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// ReadFile reads a path relative to the scene directory.
func (s *Scene) ReadFile(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FileExists reports whether a path relative to the scene directory exists.
func (s *Scene) FileExists(name string) bool {
	_, err := os.Stat(filepath.Join(s.Dir, name))
	return err == nil
}
