package actions

import (
	"gitlaunch.dev/gitlaunch/internal/config"
	"gitlaunch.dev/gitlaunch/internal/runtime"
)

// provisionKeys makes sure an SSH keypair exists when the transport allows SSH.
// It returns true when the public key file exists afterwards. Generation and
// agent failures only downgrade the transport to HTTPS.
func provisionKeys(ctx *runtime.Context, opts config.Options, report *Report) bool {
	defer report.record(EventKeys)

	if !opts.Transport.WantsSSH() {
		ctx.Splog.Debug("Transport is %s, not using SSH keys", opts.Transport)
		return false
	}

	generated, err := ctx.Keys.EnsureKeyPair(opts.Email)
	if err != nil {
		ctx.Splog.Debug("SSH key generation failed, falling back to HTTPS: %v", err)
	}
	if generated {
		report.update(func(r *Report) { r.KeyGenerated = true })
		ctx.Splog.Info("Generated SSH key %s", ctx.Keys.Paths.PublicKey)
	}

	if !ctx.Keys.Usable() {
		return false
	}

	if err := ctx.Keys.AddToAgent(opts.Email); err != nil {
		ctx.Splog.Debug("Could not add key to ssh-agent: %v", err)
	}
	return true
}
