package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlaunch.dev/gitlaunch/internal/utils"
)

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	require.False(t, utils.IsTerminal(f))
}

func TestIsInteractive_ForcedOff(t *testing.T) {
	t.Setenv("GITLAUNCH_NON_INTERACTIVE", "1")
	require.False(t, utils.IsInteractive())
}
