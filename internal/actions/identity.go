package actions

import (
	"gitlaunch.dev/gitlaunch/internal/config"
	"gitlaunch.dev/gitlaunch/internal/git"
	"gitlaunch.dev/gitlaunch/internal/runtime"
)

// ensureIdentity sets the global user.name and user.email when they are unset.
// An existing value is never overwritten, and a failed lookup counts as unset.
func ensureIdentity(ctx *runtime.Context, opts config.Options, report *Report) {
	defer report.record(EventIdentity)

	entries := []struct {
		key   string
		value string
		flag  string
	}{
		{git.UserNameKey, opts.User, config.FlagUser},
		{git.UserEmailKey, opts.Email, config.FlagEmail},
	}

	for _, entry := range entries {
		current, err := ctx.Git.GetGlobalConfig(ctx.Context, entry.key)
		if err != nil {
			ctx.Splog.Debug("No global %s: %v", entry.key, err)
			current = ""
		}
		if current != "" {
			ctx.Splog.Debug("Keeping global %s = %s", entry.key, current)
			continue
		}
		if entry.value == "" {
			report.warn("Global %s is not set and --%s was not given", entry.key, entry.flag)
			continue
		}
		if err := ctx.Git.SetGlobalConfig(ctx.Context, entry.key, entry.value); err != nil {
			report.warn("Could not set global %s: %v", entry.key, err)
			continue
		}
		key := entry.key
		report.update(func(r *Report) { r.IdentitySet = append(r.IdentitySet, key) })
		ctx.Splog.Info("Set global %s to %s", entry.key, entry.value)
	}
}
