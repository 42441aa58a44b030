// Package actions provides the setup-and-publish pipeline behind the gitlaunch command.
//
// The pipeline runs these steps in order:
//   - ensure git metadata and the global identity
//   - seed README, .gitignore and LICENSE
//   - provision the SSH keypair and decide between SSH and HTTPS
//   - create the remote repository and register the key through the GitHub API
//   - link origin, commit and push
//
// Key patterns:
//   - Actions accept runtime.Context which provides the git runner, Splog and other dependencies
//   - Only a missing git executable is fatal; every other step logs its error and continues
//   - Everything a step logs as a warning is also recorded in the Report
package actions
