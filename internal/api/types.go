package api

// toolCallEnvelope is the RPC envelope the Agent Mail server accepts on
// its tool-call endpoint.
type toolCallEnvelope struct {
	Method string         `json:"method"`
	Params toolCallParams `json:"params"`
}

type toolCallParams struct {
	Name      string `json:"name"`
	Arguments any    `json:"arguments"`
}

// RawMessage is a message as the server returns it. Timestamp fields are
// ISO-8601 strings; an empty ReadTS or AckTS means the event has not
// happened.
type RawMessage struct {
	ID          int64    `json:"id"`
	ThreadID    string   `json:"thread_id"`
	From        string   `json:"from"`
	To          []string `json:"to"`
	Subject     string   `json:"subject"`
	BodyMD      string   `json:"body_md"`
	CreatedTS   string   `json:"created_ts"`
	ReadTS      string   `json:"read_ts"`
	AckRequired bool     `json:"ack_required"`
	AckTS       string   `json:"ack_ts"`
	Importance  string   `json:"importance"`
}

// Delivery is one per-recipient record in a send_message response.
type Delivery struct {
	Payload RawMessage `json:"payload"`
}

// SendMessageArgs are the arguments for the send_message tool.
type SendMessageArgs struct {
	ProjectKey string   `json:"project_key"`
	SenderName string   `json:"sender_name"`
	To         []string `json:"to"`
	Subject    string   `json:"subject"`
	BodyMD     string   `json:"body_md"`
	CC         []string `json:"cc"`
	Importance string   `json:"importance"`
}

// SendMessageResult is the send_message response.
type SendMessageResult struct {
	Deliveries []Delivery `json:"deliveries"`
	Count      int        `json:"count"`
}

// FetchInboxArgs are the arguments for the fetch_inbox tool.
type FetchInboxArgs struct {
	ProjectKey    string `json:"project_key"`
	AgentName     string `json:"agent_name"`
	Limit         int    `json:"limit"`
	UrgentOnly    bool   `json:"urgent_only"`
	IncludeBodies bool   `json:"include_bodies"`
	Cursor        string `json:"cursor,omitempty"`
}

// MarkMessageReadArgs are the arguments for the mark_message_read tool.
type MarkMessageReadArgs struct {
	ProjectKey string `json:"project_key"`
	AgentName  string `json:"agent_name"`
	MessageID  int64  `json:"message_id"`
}

// ReplyMessageArgs are the arguments for the reply_message tool.
// SubjectPrefix, when set, overrides the "Re:" prefix while preserving the
// thread subject.
type ReplyMessageArgs struct {
	ProjectKey    string `json:"project_key"`
	MessageID     int64  `json:"message_id"`
	SenderName    string `json:"sender_name"`
	BodyMD        string `json:"body_md"`
	SubjectPrefix string `json:"subject_prefix,omitempty"`
}

// ReplyMessageResult is the reply_message response.
type ReplyMessageResult struct {
	Reply RawMessage `json:"reply"`
}

// AcknowledgeMessageArgs are the arguments for the acknowledge_message tool.
type AcknowledgeMessageArgs struct {
	ProjectKey string `json:"project_key"`
	AgentName  string `json:"agent_name"`
	MessageID  int64  `json:"message_id"`
}

// resourceResponse wraps a resource read; Contents is empty when the
// resource does not exist.
type resourceResponse struct {
	Contents []RawMessage `json:"contents"`
}
