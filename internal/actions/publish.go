package actions

import (
	"gitlaunch.dev/gitlaunch/internal/config"
	"gitlaunch.dev/gitlaunch/internal/git"
	"gitlaunch.dev/gitlaunch/internal/github"
	"gitlaunch.dev/gitlaunch/internal/output"
	"gitlaunch.dev/gitlaunch/internal/runtime"
)

// InitialCommitMessage is the message of the commit created before pushing
const InitialCommitMessage = "Initial commit"

// PushFailedHint is logged when the push fails
const PushFailedHint = "Push failed. If using HTTPS, Git may prompt for login. If using SSH, ensure the key is added on GitHub."

// publish stages everything, commits, renames the branch to main and pushes.
// Stage, commit and rename failures are expected (nothing to commit) and only
// logged at debug level.
func publish(ctx *runtime.Context, opts config.Options, report *Report) {
	if err := ctx.Git.StageAll(ctx.Context); err != nil {
		ctx.Splog.Debug("Stage failed: %v", err)
	}

	if err := ctx.Git.Commit(ctx.Context, InitialCommitMessage); err != nil {
		ctx.Splog.Debug("Nothing committed: %v", err)
	} else {
		report.update(func(r *Report) { r.Committed = true })
	}
	report.record(EventCommit)

	if current, err := ctx.Git.CurrentBranch(ctx.Context); err == nil && current == git.DefaultBranch {
		ctx.Splog.Debug("Already on %s", git.DefaultBranch)
	} else if err := ctx.Git.RenameCurrentBranch(ctx.Context, git.DefaultBranch); err != nil {
		ctx.Splog.Debug("Branch rename failed: %v", err)
	}

	ctx.Splog.Info("Pushing to %s...", opts.Host)
	err := ctx.Git.PushUpstream(ctx.Context, git.DefaultRemote, git.DefaultBranch)
	report.record(EventPush)
	if err != nil {
		report.warn("%s", PushFailedHint)
		report.warn("%v", err)
		return
	}

	report.update(func(r *Report) { r.Pushed = true })
	ctx.Splog.Info("Done. Repo: %s", output.ColorURL(github.WebURL(opts.Host, opts.User, opts.Repo)))
}
