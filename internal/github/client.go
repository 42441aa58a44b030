// Package github provides a client for the GitHub repository and key endpoints.
package github

import (
	"context"
)

// RepositoryInfo contains information about a created repository
// This is a simplified struct to avoid coupling to go-github library
type RepositoryInfo struct {
	Name     string
	FullName string
	HTMLURL  string
	Private  bool
}

// KeyInfo contains information about a registered public key
type KeyInfo struct {
	ID    int64
	Title string
}

// CreateRepoOptions contains options for creating a repository
type CreateRepoOptions struct {
	Name    string
	Private bool
}

// Client is an interface for GitHub API interactions
type Client interface {
	// CreateRepository creates a repository owned by the authenticated user
	CreateRepository(ctx context.Context, opts CreateRepoOptions) (*RepositoryInfo, error)

	// AddPublicKey registers an SSH public key with the authenticated user
	AddPublicKey(ctx context.Context, title, key string) (*KeyInfo, error)
}

// ClientFactory builds a Client for a token and git host
type ClientFactory func(ctx context.Context, token, host string) (Client, error)
