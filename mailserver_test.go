package agentmail

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

// toolReply is a canned response for one tool.
type toolReply struct {
	status int
	body   any
}

// fakeMailServer fakes the Agent Mail HTTP surface: the tools/call RPC
// endpoint and the message resource reads. It records every tool call so
// tests can assert on call counts and arguments.
type fakeMailServer struct {
	t      *testing.T
	server *httptest.Server

	mu        sync.Mutex
	toolCalls []string
	toolArgs  []map[string]any
	tools     map[string]toolReply
	resources map[int64]toolReply
}

func newFakeMailServer(t *testing.T) *fakeMailServer {
	t.Helper()
	fs := &fakeMailServer{
		t:         t,
		tools:     map[string]toolReply{},
		resources: map[int64]toolReply{},
	}
	fs.server = httptest.NewServer(http.HandlerFunc(fs.handle))
	t.Cleanup(fs.server.Close)
	return fs
}

// onTool sets the reply for a tool name.
func (fs *fakeMailServer) onTool(name string, status int, body any) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.tools[name] = toolReply{status: status, body: body}
}

// onResource sets the reply for a message resource read.
func (fs *fakeMailServer) onResource(id int64, status int, body any) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.resources[id] = toolReply{status: status, body: body}
}

// calls returns the recorded tool-call names in order.
func (fs *fakeMailServer) calls() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]string(nil), fs.toolCalls...)
}

// argsOf returns the arguments of the nth recorded call.
func (fs *fakeMailServer) argsOf(n int) map[string]any {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if n >= len(fs.toolArgs) {
		fs.t.Fatalf("argsOf(%d): only %d calls recorded", n, len(fs.toolArgs))
	}
	return fs.toolArgs[n]
}

func (fs *fakeMailServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/mcp/resources/resource://message/") {
		idStr := strings.TrimPrefix(r.URL.Path, "/mcp/resources/resource://message/")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			fs.t.Errorf("bad resource id %q", idStr)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fs.mu.Lock()
		reply, ok := fs.resources[id]
		fs.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"detail": "no such message"})
			return
		}
		writeReply(w, reply)
		return
	}

	if r.Method == http.MethodPost && r.URL.Path == "/mcp/call" {
		var envelope struct {
			Method string `json:"method"`
			Params struct {
				Name      string         `json:"name"`
				Arguments map[string]any `json:"arguments"`
			} `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
			fs.t.Errorf("decode envelope: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if envelope.Method != "tools/call" {
			fs.t.Errorf("envelope method = %q, want tools/call", envelope.Method)
		}

		fs.mu.Lock()
		fs.toolCalls = append(fs.toolCalls, envelope.Params.Name)
		fs.toolArgs = append(fs.toolArgs, envelope.Params.Arguments)
		reply, ok := fs.tools[envelope.Params.Name]
		fs.mu.Unlock()

		if !ok {
			fs.t.Errorf("unexpected tool call %q", envelope.Params.Name)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeReply(w, reply)
		return
	}

	fs.t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
	w.WriteHeader(http.StatusNotFound)
}

func writeReply(w http.ResponseWriter, reply toolReply) {
	status := reply.status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if reply.body != nil {
		json.NewEncoder(w).Encode(reply.body)
	}
}

// newTestClient builds a client wired to the fake server with fast
// retries and a silent logger.
func newTestClient(t *testing.T, fs *fakeMailServer, opts ...Option) *Client {
	t.Helper()
	base := []Option{
		WithBaseURL(fs.server.URL),
		WithAgentName("test-agent"),
		WithProjectKey("/work/project"),
		WithRetries(0),
		WithRetryDelay(time.Millisecond),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	return New(append(base, opts...)...)
}

// rawInboxMessage builds a server-side message map for fake replies.
func rawInboxMessage(id int64, overrides map[string]any) map[string]any {
	msg := map[string]any{
		"id":           id,
		"thread_id":    "thread-" + strconv.FormatInt(id, 10),
		"from":         "alice",
		"to":           []string{"test-agent"},
		"subject":      "subject " + strconv.FormatInt(id, 10),
		"body_md":      "body " + strconv.FormatInt(id, 10),
		"created_ts":   "2026-08-28T09:00:00Z",
		"ack_required": false,
		"importance":   "normal",
	}
	for k, v := range overrides {
		msg[k] = v
	}
	return msg
}
