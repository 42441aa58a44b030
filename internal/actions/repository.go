package actions

import (
	"gitlaunch.dev/gitlaunch/internal/git"
	"gitlaunch.dev/gitlaunch/internal/runtime"
)

// ensureRepository runs git init unless the working directory already holds git metadata
func ensureRepository(ctx *runtime.Context, report *Report) {
	defer report.record(EventRepository)

	exists, err := git.HasMetadata(ctx.WorkDir)
	if err != nil {
		// Something is there; never init over it
		report.warn("Could not inspect existing git metadata: %v", err)
		return
	}
	if exists {
		ctx.Splog.Debug("Git repository already initialized")
		return
	}

	if err := ctx.Git.Init(ctx.Context); err != nil {
		report.warn("git init failed: %v", err)
		return
	}
	report.update(func(r *Report) { r.Initialized = true })
	ctx.Splog.Info("Initialized git repository in %s", ctx.WorkDir)
}
