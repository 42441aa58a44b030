package utils

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsInteractive reports whether prompts can be shown: both stdin and stdout
// are terminals and GITLAUNCH_NON_INTERACTIVE is unset.
func IsInteractive() bool {
	if os.Getenv("GITLAUNCH_NON_INTERACTIVE") != "" {
		return false
	}
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout)
}
