package agentmail

import (
	"context"
	"net/http"
	"testing"
)

func TestSend_Basic(t *testing.T) {
	fs := newFakeMailServer(t)
	fs.onTool("send_message", http.StatusOK, map[string]any{
		"deliveries": []map[string]any{
			{"payload": map[string]any{"id": 123, "thread_id": "thread-abc"}},
		},
		"count": 1,
	})

	client := newTestClient(t, fs)
	result, err := client.Send(context.Background(), SendParams{
		To:      []string{"alice", "bob"},
		Subject: "Test Message",
		Body:    "Hello world!",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if result.MessageID != 123 {
		t.Errorf("MessageID = %d, want 123", result.MessageID)
	}
	if result.ThreadID != "thread-abc" {
		t.Errorf("ThreadID = %q, want thread-abc", result.ThreadID)
	}
	if result.SentTo != 1 {
		t.Errorf("SentTo = %d, want 1", result.SentTo)
	}

	args := fs.argsOf(0)
	if args["sender_name"] != "test-agent" {
		t.Errorf("sender_name = %v, want test-agent", args["sender_name"])
	}
	if args["project_key"] != "/work/project" {
		t.Errorf("project_key = %v", args["project_key"])
	}
	if args["subject"] != "Test Message" {
		t.Errorf("subject = %v", args["subject"])
	}
	if args["importance"] != "normal" {
		t.Errorf("importance = %v, want normal", args["importance"])
	}
	to, _ := args["to"].([]any)
	if len(to) != 2 || to[0] != "alice" || to[1] != "bob" {
		t.Errorf("to = %v", args["to"])
	}
	cc, ok := args["cc"].([]any)
	if !ok || len(cc) != 0 {
		t.Errorf("cc = %v, want empty list", args["cc"])
	}
}

func TestSend_UrgentMapsImportance(t *testing.T) {
	fs := newFakeMailServer(t)
	fs.onTool("send_message", http.StatusOK, map[string]any{
		"deliveries": []map[string]any{
			{"payload": map[string]any{"id": 1, "thread_id": "t"}},
		},
	})

	client := newTestClient(t, fs)
	_, err := client.Send(context.Background(), SendParams{
		To:      []string{"alice"},
		Subject: "now",
		Body:    "x",
		Urgent:  true,
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if got := fs.argsOf(0)["importance"]; got != "urgent" {
		t.Errorf("importance = %v, want urgent", got)
	}
}

func TestSend_SenderAndProjectOverride(t *testing.T) {
	fs := newFakeMailServer(t)
	fs.onTool("send_message", http.StatusOK, map[string]any{
		"deliveries": []map[string]any{
			{"payload": map[string]any{"id": 1, "thread_id": "t"}},
		},
	})

	client := newTestClient(t, fs)
	_, err := client.Send(context.Background(), SendParams{
		To:         []string{"alice"},
		Subject:    "s",
		Body:       "b",
		SenderName: "impersonator",
		ProjectKey: "/other/project",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	args := fs.argsOf(0)
	if args["sender_name"] != "impersonator" {
		t.Errorf("sender_name = %v, want override", args["sender_name"])
	}
	if args["project_key"] != "/other/project" {
		t.Errorf("project_key = %v, want override", args["project_key"])
	}
}

func TestSend_NoDeliveriesIsInternalError(t *testing.T) {
	fs := newFakeMailServer(t)
	fs.onTool("send_message", http.StatusOK, map[string]any{
		"deliveries": []map[string]any{},
		"count":      0,
	})

	client := newTestClient(t, fs)
	_, err := client.Send(context.Background(), SendParams{
		To:      []string{"ghost"},
		Subject: "s",
		Body:    "b",
	})
	if CodeOf(err) != CodeInternalError {
		t.Errorf("CodeOf(err) = %q, want INTERNAL_ERROR (err = %v)", CodeOf(err), err)
	}
}

func TestSend_ServerErrorSurfacesNormalized(t *testing.T) {
	fs := newFakeMailServer(t)
	fs.onTool("send_message", http.StatusConflict, map[string]any{"detail": "duplicate"})

	client := newTestClient(t, fs)
	_, err := client.Send(context.Background(), SendParams{
		To:      []string{"alice"},
		Subject: "s",
		Body:    "b",
	})
	if CodeOf(err) != CodeConflict {
		t.Errorf("CodeOf(err) = %q, want CONFLICT", CodeOf(err))
	}
}
