package output

import (
	"os"
)

// GetLogFilePath returns the path to the log file, or "" when file logging is off.
// An explicit path wins over GITLAUNCH_LOG_FILE.
func GetLogFilePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv("GITLAUNCH_LOG_FILE")
}
