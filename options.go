package agentmail

import (
	"log/slog"
	"net/http"
	"regexp"
	"time"
)

const (
	defaultWaitTimeout  = 60 * time.Second
	defaultPollInterval = 2 * time.Second
)

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets the server base URL, overriding AGENT_MAIL_URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithAgentName sets the agent name, overriding AGENT_MAIL_NAME and the
// derived-name fallback.
func WithAgentName(name string) Option {
	return func(c *Client) {
		c.agentName = name
	}
}

// WithToken sets the bearer token, overriding AGENT_MAIL_TOKEN.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithProjectKey pins the project key, bypassing workspace discovery.
func WithProjectKey(key string) Option {
	return func(c *Client) {
		c.projectKey = key
	}
}

// WithRetries sets the number of retries after the first attempt.
// Default: 2.
func WithRetries(count int) Option {
	return func(c *Client) {
		c.retries = count
	}
}

// WithTimeout sets the per-attempt timeout. Default: 5 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRetryDelay sets the base backoff delay, doubled after each failed
// attempt. Default: 500ms.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = delay
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets the logger used for non-fatal warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithIdentity sets the OS identity lookup used by the derived-agent-name
// fallback.
func WithIdentity(fn IdentityFunc) Option {
	return func(c *Client) {
		c.identity = fn
	}
}

// WithWorkspaceFinder sets the workspace-root discovery used for
// project-key resolution.
func WithWorkspaceFinder(fn WorkspaceFinderFunc) Option {
	return func(c *Client) {
		c.findWorkspace = fn
	}
}

// waitConfig holds criteria for WaitForMessage.
type waitConfig struct {
	subject      string
	subjectRegex *regexp.Regexp
	from         string
	urgentOnly   bool
	predicate    func(*MessagePreview) bool
	timeout      time.Duration
	pollInterval time.Duration
}

// WaitOption configures WaitForMessage.
type WaitOption func(*waitConfig)

// WaitSubject matches messages with this exact subject.
func WaitSubject(subject string) WaitOption {
	return func(w *waitConfig) {
		w.subject = subject
	}
}

// WaitSubjectRegex matches messages whose subject matches the pattern.
func WaitSubjectRegex(pattern *regexp.Regexp) WaitOption {
	return func(w *waitConfig) {
		w.subjectRegex = pattern
	}
}

// WaitFrom matches messages from this exact sender.
func WaitFrom(from string) WaitOption {
	return func(w *waitConfig) {
		w.from = from
	}
}

// WaitUrgent matches only urgent messages.
func WaitUrgent() WaitOption {
	return func(w *waitConfig) {
		w.urgentOnly = true
	}
}

// WaitMatching matches messages accepted by a custom predicate.
func WaitMatching(fn func(*MessagePreview) bool) WaitOption {
	return func(w *waitConfig) {
		w.predicate = fn
	}
}

// WaitTimeout bounds the total wait. Default: 60 seconds.
func WaitTimeout(timeout time.Duration) WaitOption {
	return func(w *waitConfig) {
		w.timeout = timeout
	}
}

// WaitPollInterval sets the inbox polling interval. Default: 2 seconds.
func WaitPollInterval(interval time.Duration) WaitOption {
	return func(w *waitConfig) {
		w.pollInterval = interval
	}
}

// matches checks a preview against the wait criteria.
func (w *waitConfig) matches(m *MessagePreview) bool {
	if w.subject != "" && m.Subject != w.subject {
		return false
	}
	if w.subjectRegex != nil && !w.subjectRegex.MatchString(m.Subject) {
		return false
	}
	if w.from != "" && m.From != w.from {
		return false
	}
	if w.urgentOnly && !m.Urgent {
		return false
	}
	if w.predicate != nil && !w.predicate(m) {
		return false
	}
	return true
}
