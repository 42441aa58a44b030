package testhelpers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// MockGitHubRequest is a request captured by the mock GitHub server
type MockGitHubRequest struct {
	Method        string
	Path          string
	Authorization string
	Body          map[string]interface{}
}

// MockGitHubServerConfig configures the behavior of a mock GitHub server
type MockGitHubServerConfig struct {
	// StatusCodes maps a path ("/user/repos", "/user/keys") to the status to reply with.
	// Paths not listed reply 201 Created.
	StatusCodes map[string]int
	// Block, when non-nil, holds every request until it is closed.
	Block chan struct{}

	mu       sync.Mutex
	requests []MockGitHubRequest
}

// NewMockGitHubServerConfig creates a new mock server config with defaults
func NewMockGitHubServerConfig() *MockGitHubServerConfig {
	return &MockGitHubServerConfig{
		StatusCodes: make(map[string]int),
	}
}

// Requests returns a copy of the requests received so far
func (c *MockGitHubServerConfig) Requests() []MockGitHubRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]MockGitHubRequest{}, c.requests...)
}

// RequestsTo returns the received requests whose path equals path
func (c *MockGitHubServerConfig) RequestsTo(path string) []MockGitHubRequest {
	var matched []MockGitHubRequest
	for _, req := range c.Requests() {
		if req.Path == path {
			matched = append(matched, req)
		}
	}
	return matched
}

// NewMockGitHubServer creates an httptest server that mocks the GitHub
// repository-creation and key-registration endpoints.
func NewMockGitHubServer(t *testing.T, config *MockGitHubServerConfig) *httptest.Server {
	t.Helper()
	if config == nil {
		config = NewMockGitHubServerConfig()
	}

	handler := func(w http.ResponseWriter, r *http.Request) {
		if config.Block != nil {
			<-config.Block
		}

		bodyBytes, _ := io.ReadAll(r.Body)
		body := map[string]interface{}{}
		_ = json.Unmarshal(bodyBytes, &body)

		config.mu.Lock()
		config.requests = append(config.requests, MockGitHubRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			Body:          body,
		})
		config.mu.Unlock()

		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		status, ok := config.StatusCodes[r.URL.Path]
		if !ok {
			status = http.StatusCreated
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status >= 300 {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"message": http.StatusText(status)})
			return
		}

		switch r.URL.Path {
		case "/user/repos":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"id":        1,
				"name":      body["name"],
				"private":   body["private"],
				"html_url":  "https://github.com/owner/" + toString(body["name"]),
				"full_name": "owner/" + toString(body["name"]),
			})
		case "/user/keys":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"id":    1,
				"title": body["title"],
				"key":   body["key"],
			})
		default:
			_ = json.NewEncoder(w).Encode(map[string]interface{}{})
		}
	}

	server := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(func() {
		if config.Block != nil {
			select {
			case <-config.Block:
			default:
				close(config.Block)
			}
		}
		server.Close()
	})
	return server
}

func toString(v interface{}) string {
	s, _ := v.(string)
	return s
}
