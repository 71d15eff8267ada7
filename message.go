package agentmail

import "github.com/agent-mail/client-go/internal/api"

// Importance levels reported by the server.
const (
	ImportanceNormal = "normal"
	ImportanceHigh   = "high"
	ImportanceUrgent = "urgent"
)

// previewLength is the number of characters of body included in inbox
// previews.
const previewLength = 100

// Message is a full message as returned by Read. Timestamps are ISO-8601
// strings; an empty ReadTS means the message is unread.
type Message struct {
	ID          int64    `json:"id"`
	ThreadID    string   `json:"thread_id"`
	From        string   `json:"from"`
	To          []string `json:"to"`
	Subject     string   `json:"subject"`
	Body        string   `json:"body"`
	CreatedTS   string   `json:"created_ts"`
	AckRequired bool     `json:"ack_required"`
	AckStatus   bool     `json:"ack_status"`
	ReadTS      string   `json:"read_ts"`
	Urgent      bool     `json:"urgent"`
}

// MessagePreview is an inbox listing entry: headers plus the first
// 100 characters of body, no full content.
type MessagePreview struct {
	ID          int64  `json:"id"`
	ThreadID    string `json:"thread_id"`
	From        string `json:"from"`
	Subject     string `json:"subject"`
	CreatedTS   string `json:"created_ts"`
	Unread      bool   `json:"unread"`
	AckRequired bool   `json:"ack_required"`
	Urgent      bool   `json:"urgent"`
	Preview     string `json:"preview"`
}

// SendResult reports a successful send.
type SendResult struct {
	MessageID int64  `json:"message_id"`
	ThreadID  string `json:"thread_id"`
	SentTo    int    `json:"sent_to"`
}

// InboxResult is one page of inbox previews. NextCursor is empty on the
// last page.
type InboxResult struct {
	Messages   []MessagePreview `json:"messages"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

// ReplyResult reports a successful reply.
type ReplyResult struct {
	MessageID int64  `json:"message_id"`
	ThreadID  string `json:"thread_id"`
}

// isUrgent maps server importance to the boolean urgency flag.
func isUrgent(importance string) bool {
	return importance == ImportanceHigh || importance == ImportanceUrgent
}

// previewOf truncates a body to the preview length, counting characters,
// not bytes.
func previewOf(body string) string {
	runes := []rune(body)
	if len(runes) <= previewLength {
		return body
	}
	return string(runes[:previewLength])
}

// previewFromRaw shapes a server message into a listing entry.
func previewFromRaw(raw api.RawMessage) MessagePreview {
	return MessagePreview{
		ID:          raw.ID,
		ThreadID:    raw.ThreadID,
		From:        raw.From,
		Subject:     raw.Subject,
		CreatedTS:   raw.CreatedTS,
		Unread:      raw.ReadTS == "",
		AckRequired: raw.AckRequired,
		Urgent:      isUrgent(raw.Importance),
		Preview:     previewOf(raw.BodyMD),
	}
}

// messageFromRaw shapes a server message into the full read view.
func messageFromRaw(raw api.RawMessage) *Message {
	if raw.To == nil {
		raw.To = []string{}
	}
	return &Message{
		ID:          raw.ID,
		ThreadID:    raw.ThreadID,
		From:        raw.From,
		To:          raw.To,
		Subject:     raw.Subject,
		Body:        raw.BodyMD,
		CreatedTS:   raw.CreatedTS,
		AckRequired: raw.AckRequired,
		AckStatus:   raw.AckTS != "",
		ReadTS:      raw.ReadTS,
		Urgent:      isUrgent(raw.Importance),
	}
}
