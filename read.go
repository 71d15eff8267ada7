package agentmail

import (
	"context"
	"fmt"

	"github.com/agent-mail/client-go/internal/api"
)

// ReadParams are the inputs for Read. The message is marked read unless
// LeaveUnread is set.
type ReadParams struct {
	MessageID int64

	// LeaveUnread skips the mark-as-read call.
	LeaveUnread bool

	AgentName  string
	ProjectKey string
}

// Read fetches one full message. Unless LeaveUnread is set it also marks
// the message read; a failure of that secondary call is logged and
// suppressed, never affecting the returned message.
func (c *Client) Read(ctx context.Context, p ReadParams) (*Message, error) {
	cfg, client, err := c.resolve(p.AgentName, p.ProjectKey)
	if err != nil {
		return nil, err
	}

	contents, err := client.GetMessage(ctx, p.MessageID)
	if err != nil {
		return nil, wrapError(err)
	}
	if len(contents) == 0 {
		return nil, &Error{
			Code:    CodeNotFound,
			Message: fmt.Sprintf("message %d not found", p.MessageID),
		}
	}

	if !p.LeaveUnread {
		err := client.MarkMessageRead(ctx, api.MarkMessageReadArgs{
			ProjectKey: cfg.ProjectKey,
			AgentName:  cfg.AgentName,
			MessageID:  p.MessageID,
		})
		if err != nil {
			c.logger.Warn("failed to mark message as read",
				"message_id", p.MessageID, "error", wrapError(err))
		}
	}

	return messageFromRaw(contents[0]), nil
}
