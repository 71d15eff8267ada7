package agentmail

import (
	"context"

	"github.com/agent-mail/client-go/internal/api"
)

// DeleteParams are the inputs for Delete.
type DeleteParams struct {
	MessageID int64

	AgentName  string
	ProjectKey string
}

// Delete archives a message. The server has no true delete; the message is
// marked read so it drops out of unread and urgent views.
//
// Archival is best-effort: any failure of the underlying call is swallowed
// and Delete still reports success. Only a configuration failure, which
// happens before the network, is returned.
func (c *Client) Delete(ctx context.Context, p DeleteParams) error {
	cfg, client, err := c.resolve(p.AgentName, p.ProjectKey)
	if err != nil {
		return err
	}

	err = client.MarkMessageRead(ctx, api.MarkMessageReadArgs{
		ProjectKey: cfg.ProjectKey,
		AgentName:  cfg.AgentName,
		MessageID:  p.MessageID,
	})
	if err != nil {
		// Message may not exist or is already read.
		c.logger.Debug("archive treated as success despite failure",
			"message_id", p.MessageID, "error", wrapError(err))
	}
	return nil
}
