package agentmail

import (
	"os"
	"os/user"
	"path/filepath"
)

// Environment variables read during configuration resolution.
const (
	// EnvURL is the Agent Mail server base URL. Required.
	EnvURL = "AGENT_MAIL_URL"

	// EnvAgentName is the caller's agent name. When unset, a name is
	// derived as "<user>-<basename(cwd)>".
	EnvAgentName = "AGENT_MAIL_NAME"

	// EnvToken is an optional bearer token.
	EnvToken = "AGENT_MAIL_TOKEN"

	// EnvProjectID overrides workspace auto-discovery for the project key.
	EnvProjectID = "AGENT_MAIL_PROJECT_ID"
)

// Config is a fully resolved client configuration. It is derived fresh on
// every operation; nothing is cached across calls.
type Config struct {
	BaseURL    string
	AgentName  string
	Token      string
	ProjectKey string
}

// IdentityFunc reports the current OS user name. Injectable so the
// derived-agent-name fallback is testable without touching process state.
type IdentityFunc func() (string, error)

// WorkspaceFinderFunc locates the enclosing workspace root starting from
// the given directory, reporting false when there is none.
type WorkspaceFinderFunc func(start string) (string, bool)

// defaultIdentity resolves the OS user via os/user.
func defaultIdentity() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	if u.Username == "" {
		return "", os.ErrNotExist
	}
	return u.Username, nil
}

// resolveConfig derives the configuration for one call from client options
// and the process environment. It fails with NOT_CONFIGURED when the base
// URL is missing, or when the agent name is missing and cannot be derived.
func (c *Client) resolveConfig() (Config, error) {
	baseURL := c.baseURL
	if baseURL == "" {
		baseURL = os.Getenv(EnvURL)
	}
	if baseURL == "" {
		return Config{}, notConfigured(
			"Agent Mail not configured. Set the %s environment variable, e.g. export %s=http://127.0.0.1:8765",
			EnvURL, EnvURL)
	}

	agentName := c.agentName
	if agentName == "" {
		agentName = os.Getenv(EnvAgentName)
	}
	if agentName == "" {
		derived, err := c.deriveAgentName()
		if err != nil {
			return Config{}, notConfigured(
				"Agent Mail not configured. Set the %s environment variable, e.g. export %s=my-agent",
				EnvAgentName, EnvAgentName)
		}
		agentName = derived
		c.logger.Warn("agent name not set, using derived name",
			"env", EnvAgentName, "agent", agentName)
	}

	token := c.token
	if token == "" {
		token = os.Getenv(EnvToken)
	}

	return Config{
		BaseURL:    baseURL,
		AgentName:  agentName,
		Token:      token,
		ProjectKey: c.resolveProjectKey(),
	}, nil
}

// deriveAgentName builds "<user>-<basename(cwd)>" from the OS identity and
// working directory.
func (c *Client) deriveAgentName() (string, error) {
	username, err := c.identity()
	if err != nil {
		return "", err
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return username + "-" + filepath.Base(wd), nil
}

// resolveProjectKey picks the mailbox scoping key. Resolution order:
// client option, explicit project-id environment value, discovered
// workspace root, current working directory. It never fails; the working
// directory is the final fallback.
func (c *Client) resolveProjectKey() string {
	if c.projectKey != "" {
		return absPath(c.projectKey)
	}
	if projectID := os.Getenv(EnvProjectID); projectID != "" {
		return absPath(projectID)
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	if root, ok := c.findWorkspace(wd); ok {
		return absPath(root)
	}
	return absPath(wd)
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}
