package api

import (
	"context"
	"fmt"
	"net/http"
)

// toolCallPath is the single RPC endpoint for all write/procedure calls.
const toolCallPath = "/mcp/call"

// callTool posts one tools/call envelope and decodes the result.
func (c *Client) callTool(ctx context.Context, name string, args any, result any) error {
	envelope := toolCallEnvelope{
		Method: "tools/call",
		Params: toolCallParams{Name: name, Arguments: args},
	}
	return c.Do(ctx, http.MethodPost, toolCallPath, envelope, nil, result)
}

// SendMessage delivers a message to each recipient.
func (c *Client) SendMessage(ctx context.Context, args SendMessageArgs) (*SendMessageResult, error) {
	var result SendMessageResult
	if err := c.callTool(ctx, "send_message", args, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FetchInbox lists messages for an agent, newest first. The server returns
// a bare JSON array.
func (c *Client) FetchInbox(ctx context.Context, args FetchInboxArgs) ([]RawMessage, error) {
	var result []RawMessage
	if err := c.callTool(ctx, "fetch_inbox", args, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// MarkMessageRead stamps a message's read timestamp.
func (c *Client) MarkMessageRead(ctx context.Context, args MarkMessageReadArgs) error {
	return c.callTool(ctx, "mark_message_read", args, nil)
}

// ReplyMessage sends a threaded reply to an existing message.
func (c *Client) ReplyMessage(ctx context.Context, args ReplyMessageArgs) (*ReplyMessageResult, error) {
	var result ReplyMessageResult
	if err := c.callTool(ctx, "reply_message", args, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AcknowledgeMessage stamps a message's acknowledgement timestamp.
func (c *Client) AcknowledgeMessage(ctx context.Context, args AcknowledgeMessageArgs) error {
	return c.callTool(ctx, "acknowledge_message", args, nil)
}

// GetMessage reads a single message through the resource endpoint. The
// returned slice is empty when the message does not exist.
func (c *Client) GetMessage(ctx context.Context, messageID int64) ([]RawMessage, error) {
	path := fmt.Sprintf("/mcp/resources/resource://message/%d", messageID)
	var result resourceResponse
	if err := c.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return result.Contents, nil
}
