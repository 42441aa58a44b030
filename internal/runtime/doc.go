// Package runtime provides the execution context for gitlaunch actions.
//
// It encapsulates shared dependencies needed by actions, such as the git
// runner, the logger, the key provisioner and the GitHub client factory, so
// tests can substitute any of them.
package runtime
