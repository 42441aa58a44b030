package actions

import (
	"gitlaunch.dev/gitlaunch/internal/config"
	"gitlaunch.dev/gitlaunch/internal/runtime"
)

// Action initializes the working directory as a repository and publishes it.
//
// The only error returned is a missing git executable (wrapping
// errors.ErrGitNotFound). Every other failure is logged, recorded in the
// Report and skipped.
func Action(ctx *runtime.Context, opts config.Options) (*Report, error) {
	report := newReport(ctx.Splog)

	if err := ctx.Git.EnsureAvailable(ctx.Context); err != nil {
		return report, err
	}

	ensureRepository(ctx, report)
	ensureIdentity(ctx, opts, report)

	if opts.SeedFiles {
		seedFiles(ctx, opts, report)
	} else {
		ctx.Splog.Debug("Skipping starter files (--init no)")
	}

	useSSH := provisionKeys(ctx, opts, report)
	report.update(func(r *Report) { r.UseSSH = useSSH })

	// The API calls are not awaited before pushing unless asked to, so the push
	// can reach the host before the repository exists there.
	pending := provisionRemote(ctx, opts, useSSH, report)
	if opts.AwaitRemote {
		pending.Wait()
	}

	linkRemote(ctx, opts, useSSH, report)
	publish(ctx, opts, report)

	// Let in-flight API calls finish so their warnings are reported.
	pending.Wait()

	return report, nil
}
