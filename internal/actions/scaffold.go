package actions

import (
	"gitlaunch.dev/gitlaunch/internal/config"
	"gitlaunch.dev/gitlaunch/internal/output"
	"gitlaunch.dev/gitlaunch/internal/runtime"
	"gitlaunch.dev/gitlaunch/internal/scaffold"
)

// seedFiles writes the starter files that are missing
func seedFiles(ctx *runtime.Context, opts config.Options, report *Report) {
	defer report.record(EventScaffold)

	result, err := scaffold.Write(ctx.WorkDir, scaffold.Options{
		Repo:  opts.Repo,
		Owner: opts.User,
		Now:   ctx.Now(),
	})
	report.update(func(r *Report) { r.Scaffold = result })

	for _, name := range result.Written {
		ctx.Splog.Info("Created %s", output.ColorFile(name))
	}
	for _, name := range result.Skipped {
		ctx.Splog.Debug("%s already exists, leaving it untouched", name)
	}
	if err != nil {
		report.warn("Could not write starter files: %v", err)
	}
}
