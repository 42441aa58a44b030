package main

import (
	"os"

	"gitlaunch.dev/gitlaunch/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := cli.Execute(rootCmd, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
