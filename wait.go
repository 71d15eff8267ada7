package agentmail

import (
	"context"
	"time"
)

// WaitForMessage polls the inbox until a message matches the given
// criteria, returning its preview. It checks messages already present
// before waiting for new ones.
//
// Example:
//
//	msg, err := client.WaitForMessage(ctx,
//	    agentmail.WaitFrom("reviewer"),
//	    agentmail.WaitTimeout(2*time.Minute),
//	)
func (c *Client) WaitForMessage(ctx context.Context, opts ...WaitOption) (*MessagePreview, error) {
	cfg := &waitConfig{
		timeout:      defaultWaitTimeout,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	ticker := time.NewTicker(cfg.pollInterval)
	defer ticker.Stop()

	for {
		result, err := c.Inbox(ctx, InboxParams{UnreadOnly: true})
		if err != nil {
			return nil, err
		}
		for i := range result.Messages {
			if cfg.matches(&result.Messages[i]) {
				return &result.Messages[i], nil
			}
		}

		select {
		case <-ctx.Done():
			return nil, &Error{
				Code:    CodeTimeout,
				Message: "no matching message arrived before the wait deadline",
			}
		case <-ticker.C:
		}
	}
}
