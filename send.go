package agentmail

import (
	"context"

	"github.com/agent-mail/client-go/internal/api"
)

// SendParams are the inputs for Send. To, Subject and Body are required by
// the server; SenderName and ProjectKey override the resolved defaults.
type SendParams struct {
	To      []string
	Subject string
	Body    string
	Urgent  bool
	CC      []string

	SenderName string
	ProjectKey string
}

// Send delivers a message to each recipient and returns the created
// message's id and thread along with the delivery count.
func (c *Client) Send(ctx context.Context, p SendParams) (*SendResult, error) {
	cfg, client, err := c.resolve(p.SenderName, p.ProjectKey)
	if err != nil {
		return nil, err
	}

	importance := ImportanceNormal
	if p.Urgent {
		importance = ImportanceUrgent
	}
	cc := p.CC
	if cc == nil {
		cc = []string{}
	}

	result, err := client.SendMessage(ctx, api.SendMessageArgs{
		ProjectKey: cfg.ProjectKey,
		SenderName: cfg.AgentName,
		To:         p.To,
		Subject:    p.Subject,
		BodyMD:     p.Body,
		CC:         cc,
		Importance: importance,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	if len(result.Deliveries) == 0 {
		return nil, &Error{
			Code:    CodeInternalError,
			Message: "no deliveries returned from Agent Mail",
		}
	}

	first := result.Deliveries[0].Payload
	return &SendResult{
		MessageID: first.ID,
		ThreadID:  first.ThreadID,
		SentTo:    len(result.Deliveries),
	}, nil
}
