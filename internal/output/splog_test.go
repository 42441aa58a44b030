package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplog_Console(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	debug := false
	splog, err := NewSplogWithConfig(Config{Writer: &buf, Debug: &debug})
	require.NoError(t, err)

	splog.Info("hello %s", "world")
	splog.Warn("careful")
	splog.Tip("try %d", 1)
	splog.Debug("hidden")

	require.Equal(t, "hello world\n⚠️  careful\n💡 try 1\n", buf.String())
}

func TestSplog_WarningsToErrWriter(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	debug := false
	splog, err := NewSplogWithConfig(Config{Writer: &stdout, ErrWriter: &stderr, Debug: &debug})
	require.NoError(t, err)

	splog.Info("progress")
	splog.Warn("push failed")
	splog.Tip("hint")

	require.Equal(t, "progress\n💡 hint\n", stdout.String())
	require.Equal(t, "⚠️  push failed\n", stderr.String())
}

func TestSplog_DebugEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	debug := true
	splog, err := NewSplogWithConfig(Config{Writer: &buf, Debug: &debug})
	require.NoError(t, err)

	splog.Debug("visible %d", 42)
	require.Equal(t, "visible 42\n", buf.String())
}

func TestSplog_LogFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	debug := false
	logPath := filepath.Join(t.TempDir(), "logs", "gitlaunch.log")
	splog, err := NewSplogWithConfig(Config{Writer: &buf, LogFilePath: logPath, Debug: &debug})
	require.NoError(t, err)

	splog.Info("to both")
	splog.Debug("file only")
	require.NoError(t, splog.Close())

	require.Equal(t, "to both\n", buf.String())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "level=INFO")
	require.Contains(t, string(data), `msg="to both"`)
	require.Contains(t, string(data), `msg="file only"`)
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("GITLAUNCH_LOG_FILE", "/tmp/from-env.log")

	require.Equal(t, "/tmp/explicit.log", GetLogFilePath("/tmp/explicit.log"))
	require.Equal(t, "/tmp/from-env.log", GetLogFilePath(""))
}

func TestStyles_PlainWithoutColor(t *testing.T) {
	UsePlainStyle()

	require.Equal(t, "https://github.com/alice/foo", ColorURL("https://github.com/alice/foo"))
	require.Equal(t, "README.md", ColorFile("README.md"))
	require.Equal(t, "skipped", Dim("skipped"))
}
