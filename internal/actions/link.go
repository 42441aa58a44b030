package actions

import (
	"gitlaunch.dev/gitlaunch/internal/config"
	"gitlaunch.dev/gitlaunch/internal/git"
	"gitlaunch.dev/gitlaunch/internal/github"
	"gitlaunch.dev/gitlaunch/internal/runtime"
)

// linkRemote points origin at the hosted repository, adding it if missing
func linkRemote(ctx *runtime.Context, opts config.Options, useSSH bool, report *Report) {
	defer report.record(EventLink)

	url := github.RemoteURL(opts.Host, opts.User, opts.Repo, useSSH)
	report.update(func(r *Report) { r.RemoteURL = url })

	exists, err := ctx.Git.RemoteExists(ctx.Context, git.DefaultRemote)
	if err != nil {
		ctx.Splog.Debug("Could not list remotes, assuming none: %v", err)
		exists = false
	}

	if !exists {
		if err := ctx.Git.AddRemote(ctx.Context, git.DefaultRemote, url); err != nil {
			report.warn("Could not add remote %s: %v", git.DefaultRemote, err)
			return
		}
		ctx.Splog.Info("Added remote %s %s", git.DefaultRemote, url)
		return
	}

	previous, _ := ctx.Git.GetRemoteURL(ctx.Context, git.DefaultRemote)
	if previous != "" && previous != url {
		if info, err := github.ParseRemoteURL(previous); err == nil && (info.Owner != opts.User || info.Repo != opts.Repo) {
			ctx.Splog.Info("Remote %s pointed at %s/%s, re-pointing it", git.DefaultRemote, info.Owner, info.Repo)
		}
	}

	if err := ctx.Git.SetRemoteURL(ctx.Context, git.DefaultRemote, url); err != nil {
		report.warn("Could not update remote %s: %v", git.DefaultRemote, err)
		return
	}
	report.update(func(r *Report) { r.RemoteUpdated = true })
	ctx.Splog.Info("Set remote %s to %s", git.DefaultRemote, url)
}
