package actions

import (
	"sync"

	"gitlaunch.dev/gitlaunch/internal/config"
	"gitlaunch.dev/gitlaunch/internal/github"
	"gitlaunch.dev/gitlaunch/internal/runtime"
)

// KeyTitlePrefix prefixes the hostname in the title of registered keys
const KeyTitlePrefix = "auto-key-"

// provisionRemote starts the repository creation call and, when SSH is used,
// the key registration call. It does not wait for them; callers Wait on the
// returned group.
func provisionRemote(ctx *runtime.Context, opts config.Options, useSSH bool, report *Report) *sync.WaitGroup {
	var wg sync.WaitGroup

	if opts.Token == "" {
		ctx.Splog.Debug("No token given, skipping repository creation")
		return &wg
	}

	client, err := ctx.NewGitHubClient(ctx.Context, opts.Token, opts.Host)
	if err != nil {
		report.warn("Repo API create warning: %v", err)
		return &wg
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer report.record(EventCreateRepo)

		_, err := client.CreateRepository(ctx.Context, github.CreateRepoOptions{
			Name:    opts.Repo,
			Private: opts.Visibility.IsPrivate(),
		})
		if err != nil {
			report.warn("Repo API create warning: %v", err)
			return
		}
		report.update(func(r *Report) { r.RepoCreated = true })
		ctx.Splog.Debug("Created repository %s", opts.Repo)
	}()

	if !useSSH {
		return &wg
	}

	publicKey, err := ctx.Keys.Paths.ReadPublicKey()
	if err != nil {
		report.warn("SSH key API add warning: %v", err)
		return &wg
	}

	title := KeyTitlePrefix + hostname(ctx)
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer report.record(EventAddKey)

		if _, err := client.AddPublicKey(ctx.Context, title, publicKey); err != nil {
			report.warn("SSH key API add warning: %v", err)
			return
		}
		report.update(func(r *Report) { r.KeyRegistered = true })
		ctx.Splog.Debug("Registered SSH key %s", title)
	}()

	return &wg
}

func hostname(ctx *runtime.Context) string {
	if ctx.Hostname == nil {
		return "localhost"
	}
	name, err := ctx.Hostname()
	if err != nil || name == "" {
		return "localhost"
	}
	return name
}
