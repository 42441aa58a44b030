package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gitlaunch.dev/gitlaunch/internal/actions"
	"gitlaunch.dev/gitlaunch/internal/config"
	"gitlaunch.dev/gitlaunch/internal/output"
	"gitlaunch.dev/gitlaunch/internal/runtime"
	"gitlaunch.dev/gitlaunch/internal/utils"
)

// Flags that configure the command itself rather than the run
const (
	flagConfig      = "config"
	flagInteractive = "interactive"
	flagLogFile     = "log-file"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var (
		configPath  string
		logFile     string
		interactive bool
	)

	rootCmd := &cobra.Command{
		Use:   "gitlaunch",
		Short: "Turn the current directory into a GitHub repository in one step",
		Long: `gitlaunch initializes the current directory as a git repository, seeds starter
files, makes sure an SSH key exists, creates the repository on GitHub when a
token is given, and pushes an initial commit to main.

Every step is best effort: failures are reported as warnings and the run goes on.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, configPath, logFile, interactive)
		},
	}

	flags := rootCmd.Flags()
	flags.String(config.FlagRepo, "", fmt.Sprintf("Repository name (default %q)", config.DefaultRepo))
	flags.String(config.FlagUser, "", "GitHub owner; also used as git user.name and license holder")
	flags.String(config.FlagEmail, "", "Email for git user.email and the SSH key comment")
	flags.String(config.FlagVisibility, "", "Repository visibility: public or private (default public)")
	flags.String(config.FlagTransport, "", "Remote transport: auto, yes (SSH) or no (HTTPS) (default auto)")
	flags.String(config.FlagInit, "", "Write README.md, .gitignore and LICENSE: yes or no (default yes)")
	flags.String(config.FlagToken, "", "GitHub token; without one the remote repository is not created")
	flags.String(config.FlagHost, "", fmt.Sprintf("Git host (default %q)", config.DefaultHost))
	flags.Bool(config.FlagAwaitRemote, false, "Wait for repository creation before pushing")
	flags.StringVar(&configPath, flagConfig, "", "Path to a YAML file with default values")
	flags.BoolVar(&interactive, flagInteractive, false, "Prompt for missing user and email")
	flags.StringVar(&logFile, flagLogFile, "", "Also write a debug log to this file")

	return rootCmd
}

// Execute runs rootCmd with args. A trailing value flag given without a value
// is dropped so the option falls back to its default, matching how every other
// missing value is treated.
func Execute(rootCmd *cobra.Command, args []string) error {
	rootCmd.SetArgs(dropDanglingFlag(rootCmd.Flags(), args))
	return rootCmd.Execute()
}

// dropDanglingFlag removes a last argument of the form --name when name is a
// known flag that takes a value.
func dropDanglingFlag(flags *pflag.FlagSet, args []string) []string {
	if len(args) == 0 {
		return args
	}
	last := args[len(args)-1]
	if !strings.HasPrefix(last, "--") || strings.Contains(last, "=") {
		return args
	}
	flag := flags.Lookup(strings.TrimPrefix(last, "--"))
	if flag == nil || flag.NoOptDefVal != "" {
		return args
	}
	return args[:len(args)-1]
}

func run(cmd *cobra.Command, configPath, logFile string, interactive bool) error {
	logFile = output.GetLogFilePath(logFile)
	splog, err := output.NewSplogWithConfig(output.Config{
		Writer:      cmd.OutOrStdout(),
		ErrWriter:   cmd.ErrOrStderr(),
		LogFilePath: logFile,
	})
	if err != nil {
		splog.Warn("File logging disabled: %v", err)
		logFile = ""
	}
	defer func() { _ = splog.Close() }()

	if !utils.IsTerminal(os.Stdout) {
		output.UsePlainStyle()
	}

	file := loadConfigFile(configPath, splog)

	opts := config.Resolve(file, changedFlags(cmd.Flags()))
	if interactive && utils.IsInteractive() {
		prompted, err := promptIdentity(opts)
		if err != nil {
			splog.Warn("Prompt skipped: %v", err)
		} else {
			opts = prompted
		}
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	ctx := runtime.NewContext(cmd.Context(), workDir, homeDir, splog)
	report, err := actions.Action(ctx, opts)
	if err != nil {
		return err
	}

	printSummary(splog, report, logFile)
	return nil
}

// loadConfigFile reads the --config file, or the default file when present.
// A file that cannot be read or parsed is skipped with a warning.
func loadConfigFile(path string, splog *output.Splog) *config.File {
	var (
		file *config.File
		err  error
	)
	if path != "" {
		file, err = config.Load(path)
	} else {
		file, err = config.LoadDefault()
	}
	if err != nil {
		splog.Warn("Ignoring config file: %v", err)
		return nil
	}
	return file
}

// changedFlags returns the raw values of the run options given on the command line
func changedFlags(flags *pflag.FlagSet) map[string]string {
	values := make(map[string]string)
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case flagConfig, flagInteractive, flagLogFile:
			return
		}
		values[f.Name] = f.Value.String()
	})
	return values
}

func printSummary(splog *output.Splog, report *actions.Report, logFile string) {
	count := report.WarningCount()
	splog.Newline()
	splog.Info("Completed with %d warning(s)", count)
	if count > 0 && logFile != "" {
		splog.Tip("Details in %s", output.Dim(logFile))
	}
}
