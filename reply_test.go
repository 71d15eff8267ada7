package agentmail

import (
	"context"
	"net/http"
	"testing"
)

func TestReply_Basic(t *testing.T) {
	fs := newFakeMailServer(t)
	fs.onTool("reply_message", http.StatusOK, map[string]any{
		"reply": map[string]any{"id": 456, "thread_id": "thread-abc"},
	})

	client := newTestClient(t, fs)
	result, err := client.Reply(context.Background(), ReplyParams{
		MessageID: 123,
		Body:      "Thanks, will review today!",
	})
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}

	if result.MessageID != 456 {
		t.Errorf("MessageID = %d, want 456", result.MessageID)
	}
	if result.ThreadID != "thread-abc" {
		t.Errorf("ThreadID = %q, want thread-abc", result.ThreadID)
	}

	args := fs.argsOf(0)
	if args["message_id"] != float64(123) {
		t.Errorf("message_id = %v, want 123", args["message_id"])
	}
	if args["sender_name"] != "test-agent" {
		t.Errorf("sender_name = %v", args["sender_name"])
	}
	if args["body_md"] != "Thanks, will review today!" {
		t.Errorf("body_md = %v", args["body_md"])
	}
	if _, ok := args["subject_prefix"]; ok {
		t.Error("subject_prefix sent without an override")
	}
}

func TestReply_SubjectBecomesPrefixOverride(t *testing.T) {
	fs := newFakeMailServer(t)
	fs.onTool("reply_message", http.StatusOK, map[string]any{
		"reply": map[string]any{"id": 1, "thread_id": "t"},
	})

	client := newTestClient(t, fs)
	_, err := client.Reply(context.Background(), ReplyParams{
		MessageID: 123,
		Body:      "done",
		Subject:   "FYI",
	})
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if got := fs.argsOf(0)["subject_prefix"]; got != "FYI" {
		t.Errorf("subject_prefix = %v, want FYI", got)
	}
}

func TestReply_NotFoundSurfaces(t *testing.T) {
	fs := newFakeMailServer(t)
	fs.onTool("reply_message", http.StatusNotFound, map[string]any{"detail": "gone"})

	client := newTestClient(t, fs)
	_, err := client.Reply(context.Background(), ReplyParams{MessageID: 999, Body: "x"})
	if CodeOf(err) != CodeNotFound {
		t.Errorf("CodeOf(err) = %q, want NOT_FOUND", CodeOf(err))
	}
}
