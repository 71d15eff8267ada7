package agentmail

import (
	"context"

	"github.com/agent-mail/client-go/internal/api"
)

// ReplyParams are the inputs for Reply. Subject, when set, is passed to
// the server as a prefix override; the thread's subject is preserved
// either way.
type ReplyParams struct {
	MessageID int64
	Body      string
	Subject   string

	AgentName  string
	ProjectKey string
}

// Reply sends a threaded reply to an existing message.
func (c *Client) Reply(ctx context.Context, p ReplyParams) (*ReplyResult, error) {
	cfg, client, err := c.resolve(p.AgentName, p.ProjectKey)
	if err != nil {
		return nil, err
	}

	result, err := client.ReplyMessage(ctx, api.ReplyMessageArgs{
		ProjectKey:    cfg.ProjectKey,
		MessageID:     p.MessageID,
		SenderName:    cfg.AgentName,
		BodyMD:        p.Body,
		SubjectPrefix: p.Subject,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return &ReplyResult{
		MessageID: result.Reply.ID,
		ThreadID:  result.Reply.ThreadID,
	}, nil
}
