package github

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	gitlauncherrors "gitlaunch.dev/gitlaunch/internal/errors"
)

// Endpoints used by the client, for error reporting
const (
	ReposEndpoint = "/user/repos"
	KeysEndpoint  = "/user/keys"
)

// RealClient implements Client using the real GitHub API
type RealClient struct {
	client *github.Client
}

// NewRealClient creates a RealClient for host, where host is the git host
// (github.com or a GitHub Enterprise hostname).
func NewRealClient(ctx context.Context, token, host string) (Client, error) {
	client, err := createGitHubClient(ctx, host, token)
	if err != nil {
		return nil, err
	}
	return &RealClient{client: client}, nil
}

// NewRealClientWithBaseURL creates a RealClient talking to an explicit API base URL.
func NewRealClientWithBaseURL(ctx context.Context, token, baseURL string) (Client, error) {
	client := newTokenClient(ctx, token)
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL %s: %w", baseURL, err)
	}
	if parsed.Path == "" || parsed.Path[len(parsed.Path)-1] != '/' {
		parsed.Path += "/"
	}
	client.BaseURL = parsed
	return &RealClient{client: client}, nil
}

func newTokenClient(ctx context.Context, token string) *github.Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)
	client.UserAgent = "gitlaunch"
	return client
}

// createGitHubClient creates a GitHub client configured for the given hostname
// Supports both github.com and GitHub Enterprise instances
func createGitHubClient(ctx context.Context, hostname, token string) (*github.Client, error) {
	client := newTokenClient(ctx, token)

	// Configure for GitHub Enterprise if not github.com
	if hostname != "" && hostname != "github.com" {
		// REST API: https://hostname/api/v3/
		// Upload API: https://hostname/api/uploads/
		baseURL, err := url.Parse(fmt.Sprintf("https://%s/api/v3/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse base URL for hostname %s: %w", hostname, err)
		}
		uploadURL, err := url.Parse(fmt.Sprintf("https://%s/api/uploads/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse upload URL for hostname %s: %w", hostname, err)
		}

		client.BaseURL = baseURL
		client.UploadURL = uploadURL
	}

	return client, nil
}

// CreateRepository creates a repository under the authenticated user without
// an initial commit.
func (c *RealClient) CreateRepository(ctx context.Context, opts CreateRepoOptions) (*RepositoryInfo, error) {
	repo := &github.Repository{
		Name:     github.String(opts.Name),
		Private:  github.Bool(opts.Private),
		AutoInit: github.Bool(false),
	}

	// An empty org creates the repository for the authenticated user
	created, resp, err := c.client.Repositories.Create(ctx, "", repo)
	if err != nil {
		return nil, gitlauncherrors.NewAPIError(ReposEndpoint, statusCode(resp), err)
	}

	return toRepositoryInfo(created), nil
}

// AddPublicKey registers key under title for the authenticated user
func (c *RealClient) AddPublicKey(ctx context.Context, title, key string) (*KeyInfo, error) {
	created, resp, err := c.client.Users.CreateKey(ctx, &github.Key{
		Title: github.String(title),
		Key:   github.String(key),
	})
	if err != nil {
		return nil, gitlauncherrors.NewAPIError(KeysEndpoint, statusCode(resp), err)
	}

	info := &KeyInfo{}
	if created.ID != nil {
		info.ID = *created.ID
	}
	if created.Title != nil {
		info.Title = *created.Title
	}
	return info, nil
}

func statusCode(resp *github.Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}

// toRepositoryInfo converts a github.Repository to RepositoryInfo
func toRepositoryInfo(repo *github.Repository) *RepositoryInfo {
	if repo == nil {
		return nil
	}

	info := &RepositoryInfo{}
	if repo.Name != nil {
		info.Name = *repo.Name
	}
	if repo.FullName != nil {
		info.FullName = *repo.FullName
	}
	if repo.HTMLURL != nil {
		info.HTMLURL = *repo.HTMLURL
	}
	if repo.Private != nil {
		info.Private = *repo.Private
	}
	return info
}
