// Package mcptool adapts the agentmail client for tool-calling frameworks.
//
// Each handler returns a plain map with a fixed key set. Failures are
// converted into a value-shaped result carrying "error", "message" and
// "data" keys instead of a Go error, so an automated caller receives
// structured failure data rather than a fatal crash.
package mcptool

import (
	"context"
	"errors"
	"log/slog"

	agentmail "github.com/agent-mail/client-go"
)

// Handler exposes the six mail operations in tool-call form.
type Handler struct {
	client *agentmail.Client
	logger *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used to record operation failures.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// New wraps a client. A nil client gets a default environment-configured
// one.
func New(client *agentmail.Client, opts ...Option) *Handler {
	h := &Handler{
		client: client,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.client == nil {
		h.client = agentmail.New()
	}
	return h
}

// errResult shapes a failure into the value form. Extra key/value pairs
// are merged in, letting boolean ops report their false flag.
func errResult(err error, extra ...any) map[string]any {
	result := map[string]any{
		"error":   string(agentmail.CodeOf(err)),
		"message": err.Error(),
	}
	var e *agentmail.Error
	if errors.As(err, &e) {
		result["message"] = e.Message
		result["data"] = e.Data
	}
	for i := 0; i+1 < len(extra); i += 2 {
		result[extra[i].(string)] = extra[i+1]
	}
	return result
}

// SendParams are the tool arguments for Send.
type SendParams struct {
	To         []string `json:"to"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
	Urgent     bool     `json:"urgent,omitempty"`
	CC         []string `json:"cc,omitempty"`
	ProjectKey string   `json:"project_key,omitempty"`
	SenderName string   `json:"sender_name,omitempty"`
}

// Send delivers a message to other agents.
func (h *Handler) Send(ctx context.Context, p SendParams) map[string]any {
	result, err := h.client.Send(ctx, agentmail.SendParams{
		To:         p.To,
		Subject:    p.Subject,
		Body:       p.Body,
		Urgent:     p.Urgent,
		CC:         p.CC,
		ProjectKey: p.ProjectKey,
		SenderName: p.SenderName,
	})
	if err != nil {
		h.logger.Error("mail send failed", "error", err)
		return errResult(err)
	}
	return map[string]any{
		"message_id": result.MessageID,
		"thread_id":  result.ThreadID,
		"sent_to":    result.SentTo,
	}
}

// InboxParams are the tool arguments for Inbox.
type InboxParams struct {
	Limit      int    `json:"limit,omitempty"`
	UrgentOnly bool   `json:"urgent_only,omitempty"`
	UnreadOnly bool   `json:"unread_only,omitempty"`
	Cursor     string `json:"cursor,omitempty"`
	AgentName  string `json:"agent_name,omitempty"`
	ProjectKey string `json:"project_key,omitempty"`
}

// Inbox lists message previews.
func (h *Handler) Inbox(ctx context.Context, p InboxParams) map[string]any {
	result, err := h.client.Inbox(ctx, agentmail.InboxParams{
		Limit:      p.Limit,
		UrgentOnly: p.UrgentOnly,
		UnreadOnly: p.UnreadOnly,
		Cursor:     p.Cursor,
		AgentName:  p.AgentName,
		ProjectKey: p.ProjectKey,
	})
	if err != nil {
		h.logger.Error("mail inbox failed", "error", err)
		return errResult(err)
	}

	messages := make([]map[string]any, 0, len(result.Messages))
	for _, m := range result.Messages {
		messages = append(messages, map[string]any{
			"id":           m.ID,
			"thread_id":    m.ThreadID,
			"from":         m.From,
			"subject":      m.Subject,
			"created_ts":   m.CreatedTS,
			"unread":       m.Unread,
			"ack_required": m.AckRequired,
			"urgent":       m.Urgent,
			"preview":      m.Preview,
		})
	}

	var nextCursor any
	if result.NextCursor != "" {
		nextCursor = result.NextCursor
	}
	return map[string]any{
		"messages":    messages,
		"next_cursor": nextCursor,
	}
}

// ReadParams are the tool arguments for Read. MarkRead defaults to true.
type ReadParams struct {
	MessageID  int64  `json:"message_id"`
	MarkRead   *bool  `json:"mark_read,omitempty"`
	AgentName  string `json:"agent_name,omitempty"`
	ProjectKey string `json:"project_key,omitempty"`
}

// Read returns the full message body.
func (h *Handler) Read(ctx context.Context, p ReadParams) map[string]any {
	leaveUnread := p.MarkRead != nil && !*p.MarkRead
	msg, err := h.client.Read(ctx, agentmail.ReadParams{
		MessageID:   p.MessageID,
		LeaveUnread: leaveUnread,
		AgentName:   p.AgentName,
		ProjectKey:  p.ProjectKey,
	})
	if err != nil {
		h.logger.Error("mail read failed", "error", err)
		return errResult(err)
	}

	var readTS any
	if msg.ReadTS != "" {
		readTS = msg.ReadTS
	}
	return map[string]any{
		"id":           msg.ID,
		"thread_id":    msg.ThreadID,
		"from":         msg.From,
		"to":           msg.To,
		"subject":      msg.Subject,
		"body":         msg.Body,
		"created_ts":   msg.CreatedTS,
		"ack_required": msg.AckRequired,
		"ack_status":   msg.AckStatus,
		"read_ts":      readTS,
		"urgent":       msg.Urgent,
	}
}

// ReplyParams are the tool arguments for Reply.
type ReplyParams struct {
	MessageID  int64  `json:"message_id"`
	Body       string `json:"body"`
	Subject    string `json:"subject,omitempty"`
	AgentName  string `json:"agent_name,omitempty"`
	ProjectKey string `json:"project_key,omitempty"`
}

// Reply sends a threaded reply.
func (h *Handler) Reply(ctx context.Context, p ReplyParams) map[string]any {
	result, err := h.client.Reply(ctx, agentmail.ReplyParams{
		MessageID:  p.MessageID,
		Body:       p.Body,
		Subject:    p.Subject,
		AgentName:  p.AgentName,
		ProjectKey: p.ProjectKey,
	})
	if err != nil {
		h.logger.Error("mail reply failed", "error", err)
		return errResult(err)
	}
	return map[string]any{
		"message_id": result.MessageID,
		"thread_id":  result.ThreadID,
	}
}

// AckParams are the tool arguments for Ack.
type AckParams struct {
	MessageID  int64  `json:"message_id"`
	AgentName  string `json:"agent_name,omitempty"`
	ProjectKey string `json:"project_key,omitempty"`
}

// Ack acknowledges a message.
func (h *Handler) Ack(ctx context.Context, p AckParams) map[string]any {
	err := h.client.Acknowledge(ctx, agentmail.AckParams{
		MessageID:  p.MessageID,
		AgentName:  p.AgentName,
		ProjectKey: p.ProjectKey,
	})
	if err != nil {
		h.logger.Error("mail ack failed", "error", err)
		return errResult(err, "acknowledged", false)
	}
	return map[string]any{"acknowledged": true}
}

// DeleteParams are the tool arguments for Delete.
type DeleteParams struct {
	MessageID  int64  `json:"message_id"`
	AgentName  string `json:"agent_name,omitempty"`
	ProjectKey string `json:"project_key,omitempty"`
}

// Delete archives a message.
func (h *Handler) Delete(ctx context.Context, p DeleteParams) map[string]any {
	err := h.client.Delete(ctx, agentmail.DeleteParams{
		MessageID:  p.MessageID,
		AgentName:  p.AgentName,
		ProjectKey: p.ProjectKey,
	})
	if err != nil {
		h.logger.Error("mail delete failed", "error", err)
		return errResult(err, "deleted", false)
	}
	return map[string]any{"archived": true}
}
