package agentmail

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/agent-mail/client-go/internal/api"
	"github.com/agent-mail/client-go/internal/workspace"
)

// Client is the Agent Mail client. The zero configuration reads everything
// from the environment; options override individual pieces.
//
// Configuration is resolved fresh on every operation, so environment
// changes between calls take effect immediately. The client itself holds
// no mutable state and is safe for concurrent use.
type Client struct {
	baseURL    string
	agentName  string
	token      string
	projectKey string

	retries    int
	timeout    time.Duration
	retryDelay time.Duration
	httpClient *http.Client

	logger        *slog.Logger
	identity      IdentityFunc
	findWorkspace WorkspaceFinderFunc
}

// New creates a client. Missing configuration is not an error here; it
// surfaces as a NOT_CONFIGURED failure from the first operation, before
// any network call.
func New(opts ...Option) *Client {
	c := &Client{
		retries:       -1, // transport default
		logger:        slog.Default(),
		identity:      defaultIdentity,
		findWorkspace: workspace.Find,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiClient builds the transport for one call from resolved configuration.
func (c *Client) apiClient(cfg Config) (*api.Client, error) {
	client, err := api.NewClient(api.Config{
		BaseURL:    cfg.BaseURL,
		Token:      cfg.Token,
		Retries:    c.retries,
		Timeout:    c.timeout,
		RetryDelay: c.retryDelay,
		HTTPClient: c.httpClient,
	})
	if err != nil {
		return nil, &Error{Code: CodeInternalError, Message: err.Error()}
	}
	return client, nil
}

// resolve resolves configuration, applies per-call overrides, and builds
// the transport. Every operation starts here.
func (c *Client) resolve(agentName, projectKey string) (Config, *api.Client, error) {
	cfg, err := c.resolveConfig()
	if err != nil {
		return Config{}, nil, err
	}
	if agentName != "" {
		cfg.AgentName = agentName
	}
	if projectKey != "" {
		cfg.ProjectKey = projectKey
	}

	client, err := c.apiClient(cfg)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, client, nil
}
