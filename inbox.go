package agentmail

import (
	"context"
	"strconv"

	"github.com/agent-mail/client-go/internal/api"
)

// defaultInboxLimit caps an inbox page when no limit is given.
const defaultInboxLimit = 20

// InboxParams are the inputs for Inbox. The zero value requests the first
// page of up to 20 messages.
type InboxParams struct {
	// Limit caps the page size. Zero means 20.
	Limit int

	// UrgentOnly asks the server for urgent messages only.
	UrgentOnly bool

	// UnreadOnly drops already-read messages from the page.
	UnreadOnly bool

	// Cursor is forwarded to the server as an opaque pagination token.
	// This layer never interprets it.
	Cursor string

	AgentName  string
	ProjectKey string
}

// Inbox fetches a page of message previews, newest first. Bodies are not
// transferred; each entry carries only the first 100 characters.
//
// NextCursor is set to the last message's id when the server returned a
// full page, signalling that more messages may follow.
func (c *Client) Inbox(ctx context.Context, p InboxParams) (*InboxResult, error) {
	cfg, client, err := c.resolve(p.AgentName, p.ProjectKey)
	if err != nil {
		return nil, err
	}

	limit := p.Limit
	if limit <= 0 {
		limit = defaultInboxLimit
	}

	messages, err := client.FetchInbox(ctx, api.FetchInboxArgs{
		ProjectKey:    cfg.ProjectKey,
		AgentName:     cfg.AgentName,
		Limit:         limit,
		UrgentOnly:    p.UrgentOnly,
		IncludeBodies: false,
		Cursor:        p.Cursor,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	previews := make([]MessagePreview, 0, len(messages))
	for _, raw := range messages {
		if p.UnreadOnly && raw.ReadTS != "" {
			continue
		}
		previews = append(previews, previewFromRaw(raw))
	}

	result := &InboxResult{Messages: previews}
	if len(messages) >= limit && len(previews) > 0 {
		result.NextCursor = strconv.FormatInt(previews[len(previews)-1].ID, 10)
	}
	return result, nil
}
