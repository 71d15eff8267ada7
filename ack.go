package agentmail

import (
	"context"

	"github.com/agent-mail/client-go/internal/api"
)

// AckParams are the inputs for Acknowledge.
type AckParams struct {
	MessageID int64

	AgentName  string
	ProjectKey string
}

// Acknowledge records the caller's acknowledgement of a message. Safe to
// call on messages that do not require one.
func (c *Client) Acknowledge(ctx context.Context, p AckParams) error {
	cfg, client, err := c.resolve(p.AgentName, p.ProjectKey)
	if err != nil {
		return err
	}

	err = client.AcknowledgeMessage(ctx, api.AcknowledgeMessageArgs{
		ProjectKey: cfg.ProjectKey,
		AgentName:  cfg.AgentName,
		MessageID:  p.MessageID,
	})
	return wrapError(err)
}
