package actions_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gitlaunch.dev/gitlaunch/internal/actions"
	"gitlaunch.dev/gitlaunch/internal/config"
	gitlauncherrors "gitlaunch.dev/gitlaunch/internal/errors"
	"gitlaunch.dev/gitlaunch/internal/git"
	"gitlaunch.dev/gitlaunch/internal/github"
	"gitlaunch.dev/gitlaunch/internal/output"
	"gitlaunch.dev/gitlaunch/internal/runtime"
	"gitlaunch.dev/gitlaunch/internal/sshkey"
	"gitlaunch.dev/gitlaunch/testhelpers"
)

const (
	testUser  = "alice"
	testEmail = "alice@example.com"
	testRepo  = "demo"
)

// syncBuffer is a bytes.Buffer safe for the concurrent API goroutines
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// launchScene is a scene whose github.com remotes resolve to a local bare repository
type launchScene struct {
	*testhelpers.Scene
	Bare string
	Out  *syncBuffer
	Ctx  *runtime.Context
}

func newLaunchScene(t *testing.T, setup testhelpers.SceneSetup) *launchScene {
	t.Helper()
	scene := testhelpers.NewScene(t, setup)

	remotes := filepath.Join(filepath.Dir(scene.Dir), "remotes")
	bare, err := testhelpers.CreateBareRemote(remotes, testUser, testRepo)
	require.NoError(t, err)
	require.NoError(t, testhelpers.RedirectHost(remotes, "https://github.com/"))
	require.NoError(t, testhelpers.RedirectHost(remotes, "git@github.com:"))

	output.UsePlainStyle()
	out := &syncBuffer{}
	splog := output.NewSplogWithWriter(out)
	ctx := runtime.NewContext(context.Background(), scene.Dir, scene.Home, splog)
	ctx.Git = ctx.Git.WithOutput(out, out)
	ctx.Keys.Agent = nil
	ctx.Now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }
	ctx.Hostname = func() (string, error) { return "devbox", nil }
	ctx.NewGitHubClient = func(context.Context, string, string) (github.Client, error) {
		t.Fatal("GitHub client must not be created without a token")
		return nil, nil
	}

	return &launchScene{Scene: scene, Bare: bare, Out: out, Ctx: ctx}
}

// useMockGitHub routes API calls to a mock server
func (s *launchScene) useMockGitHub(t *testing.T, cfg *testhelpers.MockGitHubServerConfig) {
	t.Helper()
	server := testhelpers.NewMockGitHubServer(t, cfg)
	s.Ctx.NewGitHubClient = func(ctx context.Context, token, _ string) (github.Client, error) {
		return github.NewRealClientWithBaseURL(ctx, token, server.URL)
	}
}

func baseOptions() config.Options {
	opts := config.DefaultOptions()
	opts.Repo = testRepo
	opts.User = testUser
	opts.Email = testEmail
	opts.Transport = config.TransportHTTPS
	return opts
}

func TestAction_PublishesNewRepository(t *testing.T) {
	s := newLaunchScene(t, nil)

	report, err := actions.Action(s.Ctx, baseOptions())
	require.NoError(t, err)

	require.True(t, report.Initialized)
	require.ElementsMatch(t, []string{"user.name", "user.email"}, report.IdentitySet)
	require.Equal(t, testUser, testhelpers.GlobalConfigValue("user.name"))
	require.Equal(t, testEmail, testhelpers.GlobalConfigValue("user.email"))

	readme, err := s.ReadFile("README.md")
	require.NoError(t, err)
	require.Equal(t, "# demo\n\nCreated by automated setup.", readme)
	require.True(t, s.FileExists(".gitignore"))
	license, err := s.ReadFile("LICENSE")
	require.NoError(t, err)
	require.Contains(t, license, "Copyright (c) 2024 alice")

	url, err := s.Repo.RemoteURL("origin")
	require.NoError(t, err)
	require.Equal(t, "https://github.com/alice/demo.git", url)

	branch, err := s.Repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "main", branch)

	messages, err := s.Repo.ListCommitMessages()
	require.NoError(t, err)
	require.Equal(t, []string{"Initial commit"}, messages)

	_, err = testhelpers.BareBranchSHA(s.Bare, "main")
	require.NoError(t, err)

	upstream, err := s.Repo.RunGitCommandAndGetOutput("rev-parse", "--abbrev-ref", "main@{upstream}")
	require.NoError(t, err)
	require.Equal(t, "origin/main", upstream)

	require.True(t, report.Committed)
	require.True(t, report.Pushed)
	require.False(t, report.UseSSH)
	require.Zero(t, report.WarningCount())
	require.Contains(t, s.Out.String(), "Done. Repo: https://github.com/alice/demo")
}

func TestAction_SecondRunIsIdempotent(t *testing.T) {
	s := newLaunchScene(t, nil)
	opts := baseOptions()

	_, err := actions.Action(s.Ctx, opts)
	require.NoError(t, err)
	readmeBefore, err := s.ReadFile("README.md")
	require.NoError(t, err)

	report, err := actions.Action(s.Ctx, opts)
	require.NoError(t, err)

	require.False(t, report.Initialized)
	require.Empty(t, report.IdentitySet)
	require.Empty(t, report.Scaffold.Written)
	require.Len(t, report.Scaffold.Skipped, 3)
	require.False(t, report.Committed)
	require.True(t, report.RemoteUpdated)

	readmeAfter, err := s.ReadFile("README.md")
	require.NoError(t, err)
	require.Equal(t, readmeBefore, readmeAfter)

	remotes, err := s.Repo.Remotes()
	require.NoError(t, err)
	require.Equal(t, []string{"origin"}, remotes)

	messages, err := s.Repo.ListCommitMessages()
	require.NoError(t, err)
	require.Len(t, messages, 1)
}

func TestAction_PreservesExistingState(t *testing.T) {
	t.Run("keeps existing files and identity", func(t *testing.T) {
		s := newLaunchScene(t, testhelpers.InitRepoSetup)
		require.NoError(t, s.WriteFile("README.md", "custom readme\n"))
		require.NoError(t, s.Repo.RunGitCommand("config", "--global", "user.name", "Existing Name"))

		report, err := actions.Action(s.Ctx, baseOptions())
		require.NoError(t, err)

		require.False(t, report.Initialized)
		require.Equal(t, []string{"user.email"}, report.IdentitySet)
		require.Equal(t, "Existing Name", testhelpers.GlobalConfigValue("user.name"))

		readme, err := s.ReadFile("README.md")
		require.NoError(t, err)
		require.Equal(t, "custom readme\n", readme)
		require.Equal(t, []string{"README.md"}, report.Scaffold.Skipped)
	})

	t.Run("re-points an existing origin", func(t *testing.T) {
		s := newLaunchScene(t, testhelpers.InitRepoSetup)
		require.NoError(t, s.Repo.RunGitCommand("remote", "add", "origin", "https://github.com/someone/else.git"))

		report, err := actions.Action(s.Ctx, baseOptions())
		require.NoError(t, err)

		url, err := s.Repo.RemoteURL("origin")
		require.NoError(t, err)
		require.Equal(t, "https://github.com/alice/demo.git", url)
		require.True(t, report.RemoteUpdated)
		require.Contains(t, s.Out.String(), "someone/else")
	})
}

func TestAction_LinkedWorktree(t *testing.T) {
	s := newLaunchScene(t, func(scene *testhelpers.Scene) error {
		if err := scene.Repo.Init(); err != nil {
			return err
		}
		if err := scene.Repo.CreateChangeAndCommit("initial", "init"); err != nil {
			return err
		}
		return scene.Repo.RunGitCommand("remote", "add", "origin", "https://github.com/someone/else.git")
	})
	worktree := filepath.Join(filepath.Dir(s.Dir), "wt")
	require.NoError(t, s.Repo.RunGitCommand("worktree", "add", "-b", "wt", worktree))

	s.Ctx.WorkDir = worktree
	s.Ctx.Git = git.NewCommandRunner(worktree).WithOutput(s.Out, s.Out)

	report, err := actions.Action(s.Ctx, baseOptions())
	require.NoError(t, err)

	require.False(t, report.Initialized)
	require.True(t, report.RemoteUpdated)
	require.Zero(t, report.WarningCount(), report.Warnings)

	url, err := s.Repo.RemoteURL("origin")
	require.NoError(t, err)
	require.Equal(t, "https://github.com/alice/demo.git", url)

	remotes, err := s.Repo.Remotes()
	require.NoError(t, err)
	require.Equal(t, []string{"origin"}, remotes)

	_, err = testhelpers.BareBranchSHA(s.Bare, "main")
	require.NoError(t, err)
}

func TestAction_WithoutStarterFiles(t *testing.T) {
	s := newLaunchScene(t, nil)
	opts := baseOptions()
	opts.SeedFiles = false

	report, err := actions.Action(s.Ctx, opts)
	require.NoError(t, err)

	for _, name := range []string{"README.md", ".gitignore", "LICENSE"} {
		require.False(t, s.FileExists(name), name)
	}
	require.Equal(t, -1, report.EventIndex(actions.EventScaffold))

	// Nothing to commit, so the push has no branch to send
	require.False(t, report.Committed)
	require.False(t, report.Pushed)
	require.Equal(t, 2, report.WarningCount())
	require.Contains(t, report.Warnings[0], "Push failed")
}

func TestAction_Transport(t *testing.T) {
	t.Run("https never touches keys", func(t *testing.T) {
		s := newLaunchScene(t, nil)

		report, err := actions.Action(s.Ctx, baseOptions())
		require.NoError(t, err)

		require.False(t, report.KeyGenerated)
		require.NoFileExists(t, s.Ctx.Keys.Paths.PrivateKey)
		require.NoFileExists(t, s.Ctx.Keys.Paths.PublicKey)
	})

	t.Run("ssh generates a key and uses the ssh url", func(t *testing.T) {
		s := newLaunchScene(t, nil)
		opts := baseOptions()
		opts.Transport = config.TransportSSH

		report, err := actions.Action(s.Ctx, opts)
		require.NoError(t, err)

		require.True(t, report.KeyGenerated)
		require.True(t, report.UseSSH)
		require.FileExists(t, s.Ctx.Keys.Paths.PrivateKey)
		pub, err := os.ReadFile(s.Ctx.Keys.Paths.PublicKey)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(string(pub), "ssh-ed25519 "))

		url, err := s.Repo.RemoteURL("origin")
		require.NoError(t, err)
		require.Equal(t, "git@github.com:alice/demo.git", url)
		require.True(t, report.Pushed)
	})

	t.Run("auto reuses an existing key", func(t *testing.T) {
		s := newLaunchScene(t, nil)
		require.NoError(t, sshkey.Ed25519Generator{}.Generate(s.Ctx.Keys.Paths, "old"))
		before, err := os.ReadFile(s.Ctx.Keys.Paths.PrivateKey)
		require.NoError(t, err)

		opts := baseOptions()
		opts.Transport = config.TransportAuto
		report, err := actions.Action(s.Ctx, opts)
		require.NoError(t, err)

		require.False(t, report.KeyGenerated)
		require.True(t, report.UseSSH)
		after, err := os.ReadFile(s.Ctx.Keys.Paths.PrivateKey)
		require.NoError(t, err)
		require.Equal(t, before, after)
	})

	t.Run("key generation failure falls back to https", func(t *testing.T) {
		s := newLaunchScene(t, nil)
		s.Ctx.Keys.Generator = failingGenerator{}
		opts := baseOptions()
		opts.Transport = config.TransportSSH

		report, err := actions.Action(s.Ctx, opts)
		require.NoError(t, err)

		require.False(t, report.UseSSH)
		url, err := s.Repo.RemoteURL("origin")
		require.NoError(t, err)
		require.Equal(t, "https://github.com/alice/demo.git", url)
		require.True(t, report.Pushed)
	})
}

type failingGenerator struct{}

func (failingGenerator) Generate(sshkey.Paths, string) error {
	return errors.New("ssh-keygen unavailable")
}

func TestAction_RemoteProvisioning(t *testing.T) {
	t.Run("creates the repository and registers the key", func(t *testing.T) {
		s := newLaunchScene(t, nil)
		mock := testhelpers.NewMockGitHubServerConfig()
		s.useMockGitHub(t, mock)

		opts := baseOptions()
		opts.Transport = config.TransportSSH
		opts.Visibility = config.VisibilityPrivate
		opts.Token = "t0ken"

		report, err := actions.Action(s.Ctx, opts)
		require.NoError(t, err)
		require.True(t, report.RepoCreated)
		require.True(t, report.KeyRegistered)

		repos := mock.RequestsTo("/user/repos")
		require.Len(t, repos, 1)
		require.Equal(t, "POST", repos[0].Method)
		require.Equal(t, "Bearer t0ken", repos[0].Authorization)
		require.Equal(t, "demo", repos[0].Body["name"])
		require.Equal(t, true, repos[0].Body["private"])

		keys := mock.RequestsTo("/user/keys")
		require.Len(t, keys, 1)
		require.Equal(t, "auto-key-devbox", keys[0].Body["title"])
		pub, err := s.Ctx.Keys.Paths.ReadPublicKey()
		require.NoError(t, err)
		require.Equal(t, pub, keys[0].Body["key"])
	})

	t.Run("https skips key registration", func(t *testing.T) {
		s := newLaunchScene(t, nil)
		mock := testhelpers.NewMockGitHubServerConfig()
		s.useMockGitHub(t, mock)

		opts := baseOptions()
		opts.Token = "t0ken"

		report, err := actions.Action(s.Ctx, opts)
		require.NoError(t, err)

		require.Len(t, mock.RequestsTo("/user/repos"), 1)
		require.Equal(t, false, mock.RequestsTo("/user/repos")[0].Body["private"])
		require.Empty(t, mock.RequestsTo("/user/keys"))
		require.Equal(t, -1, report.EventIndex(actions.EventAddKey))
	})

	t.Run("api failures are warnings", func(t *testing.T) {
		s := newLaunchScene(t, nil)
		mock := testhelpers.NewMockGitHubServerConfig()
		mock.StatusCodes["/user/repos"] = 422
		mock.StatusCodes["/user/keys"] = 422
		s.useMockGitHub(t, mock)

		opts := baseOptions()
		opts.Transport = config.TransportSSH
		opts.Token = "t0ken"

		report, err := actions.Action(s.Ctx, opts)
		require.NoError(t, err)

		require.False(t, report.RepoCreated)
		require.False(t, report.KeyRegistered)
		require.True(t, report.Pushed)
		require.Equal(t, 2, report.WarningCount())
		require.Contains(t, s.Out.String(), "Repo API create warning")
		require.Contains(t, s.Out.String(), "SSH key API add warning")
	})

	t.Run("push does not wait for the api", func(t *testing.T) {
		s := newLaunchScene(t, nil)
		mock := testhelpers.NewMockGitHubServerConfig()
		mock.Block = make(chan struct{})
		s.useMockGitHub(t, mock)

		opts := baseOptions()
		opts.Token = "t0ken"

		type result struct {
			report *actions.Report
			err    error
		}
		done := make(chan result, 1)
		go func() {
			report, err := actions.Action(s.Ctx, opts)
			done <- result{report, err}
		}()

		// The push completes while both API calls are still held
		require.Eventually(t, func() bool {
			return strings.Contains(s.Out.String(), "Done. Repo:")
		}, 30*time.Second, 20*time.Millisecond)
		require.Empty(t, mock.Requests())
		close(mock.Block)

		res := <-done
		require.NoError(t, res.err)
		require.True(t, res.report.RepoCreated)
		require.Less(t, res.report.EventIndex(actions.EventPush), res.report.EventIndex(actions.EventCreateRepo))
	})

	t.Run("await remote provisions before linking", func(t *testing.T) {
		s := newLaunchScene(t, nil)
		mock := testhelpers.NewMockGitHubServerConfig()
		s.useMockGitHub(t, mock)

		opts := baseOptions()
		opts.Token = "t0ken"
		opts.AwaitRemote = true

		report, err := actions.Action(s.Ctx, opts)
		require.NoError(t, err)
		require.Less(t, report.EventIndex(actions.EventCreateRepo), report.EventIndex(actions.EventLink))
	})
}

func TestAction_GitNotFound(t *testing.T) {
	s := newLaunchScene(t, nil)
	t.Setenv("PATH", "")

	report, err := actions.Action(s.Ctx, baseOptions())
	require.Error(t, err)
	require.ErrorIs(t, err, gitlauncherrors.ErrGitNotFound)
	require.Empty(t, report.Events)
	require.False(t, s.FileExists("README.md"))
	require.False(t, s.FileExists(".git"))
}
