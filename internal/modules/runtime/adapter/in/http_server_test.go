package in_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	runtimein "socialteam/internal/modules/runtime/adapter/in"
	runtimedto "socialteam/internal/modules/runtime/dto"
)

type fakeRuntime struct {
	events chan runtimedto.Event
}

func (f *fakeRuntime) Dispatch(_ context.Context, env runtimedto.Envelope) any {
	switch env.Type {
	case "GET_TASKS":
		return runtimedto.TasksResponse{Success: true}
	case "UPDATE_BADGE":
		f.events <- runtimedto.Event{Type: "BADGE_UPDATED", Data: map[string]any{"text": "3"}}
		return runtimedto.Ack{Success: true}
	default:
		return runtimedto.ErrorResponse{Error: "Unknown message type"}
	}
}

func (f *fakeRuntime) Install(context.Context) (runtimedto.InstallOutput, error) {
	return runtimedto.InstallOutput{}, nil
}

func (f *fakeRuntime) Badge(context.Context) runtimedto.BadgeOutput {
	return runtimedto.BadgeOutput{Text: "3", Color: "#667eea", Count: 3}
}

func (f *fakeRuntime) Subscribe(int) (<-chan runtimedto.Event, func()) {
	return f.events, func() {}
}

func (f *fakeRuntime) RunAlarms(context.Context) error { return nil }

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(runtimein.NewServer(&fakeRuntime{events: make(chan runtimedto.Event, 4)}, nil, "1.0.0").Routes())
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	srv := newServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("get healthz: %v", err)
	}
	defer resp.Body.Close()
	var body struct {
		Status  string                 `json:"status"`
		Version string                 `json:"version"`
		Badge   runtimedto.BadgeOutput `json:"badge"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "ok" || body.Version != "1.0.0" || body.Badge.Text != "3" {
		t.Fatalf("unexpected health body: %+v", body)
	}
}

func TestPostMessageReturnsHandlerResponse(t *testing.T) {
	t.Parallel()
	srv := newServer(t)
	resp, err := http.Post(srv.URL+"/messages", "application/json", strings.NewReader(`{"type":"SOMETHING_ELSE"}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.StatusCode != http.StatusOK || body["error"] != "Unknown message type" || len(body) != 1 {
		t.Fatalf("unexpected response %d %v", resp.StatusCode, body)
	}
}

func TestPostMalformedMessage(t *testing.T) {
	t.Parallel()
	srv := newServer(t)
	resp, err := http.Post(srv.URL+"/messages", "application/json", bytes.NewBufferString("{not json"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCORSAllowsExtensionOrigins(t *testing.T) {
	t.Parallel()
	srv := newServer(t)
	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/messages", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Origin", "chrome-extension://abcdef")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "chrome-extension://abcdef" {
		t.Fatalf("expected extension origin to be allowed, got %q", got)
	}
}

func TestWebsocketRepliesAndPushesEvents(t *testing.T) {
	t.Parallel()
	srv := newServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	if err := wsjson.Write(ctx, conn, runtimedto.Envelope{ID: "req-1", Type: "UPDATE_BADGE"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var sawReply, sawEvent bool
	for !(sawReply && sawEvent) {
		var frame map[string]any
		if err := wsjson.Read(ctx, conn, &frame); err != nil {
			t.Fatalf("read: %v", err)
		}
		if frame["id"] == "req-1" {
			resp, _ := frame["response"].(map[string]any)
			if resp["success"] != true {
				t.Fatalf("unexpected reply: %v", frame)
			}
			sawReply = true
		}
		if frame["type"] == "BADGE_UPDATED" {
			sawEvent = true
		}
	}
}
