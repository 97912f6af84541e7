package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	runtimedto "socialteam/internal/modules/runtime/dto"
	"socialteam/internal/platform/id"
)

// RemoteClient talks to a running background service.
type RemoteClient struct {
	base string
	http *http.Client
	ids  id.Generator
}

func NewRemoteClient(addr string, ids id.Generator) *RemoteClient {
	base := strings.TrimRight(strings.TrimSpace(addr), "/")
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	if ids == nil {
		ids = id.UUID{}
	}
	return &RemoteClient{base: base, http: &http.Client{Timeout: 5 * time.Second}, ids: ids}
}

func (c *RemoteClient) Health(ctx context.Context) (runtimedto.HealthOutput, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/healthz", nil)
	if err != nil {
		return runtimedto.HealthOutput{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return runtimedto.HealthOutput{}, fmt.Errorf("probe background: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return runtimedto.HealthOutput{}, fmt.Errorf("probe background: status %d", resp.StatusCode)
	}
	var out runtimedto.HealthOutput
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return runtimedto.HealthOutput{}, fmt.Errorf("decode health: %w", err)
	}
	return out, nil
}

// Send posts one envelope and returns the raw response body. Protocol errors
// come back as {"error": ...} bodies, not as Go errors.
func (c *RemoteClient) Send(ctx context.Context, env runtimedto.Envelope) (json.RawMessage, error) {
	if env.ID == "" {
		env.ID = c.ids.New()
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send %s: %w", env.Type, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("send %s: status %d: %s", env.Type, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.RawMessage(bytes.TrimSpace(body)), nil
}

// Watch streams pushed events to fn until ctx ends, the connection drops or
// fn returns an error.
func (c *RemoteClient) Watch(ctx context.Context, fn func(runtimedto.Event) error) error {
	wsURL := "ws" + strings.TrimPrefix(c.base, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", wsURL, err)
	}
	defer func() { _ = conn.Close(websocket.StatusNormalClosure, "") }()
	for {
		var evt runtimedto.Event
		if err := wsjson.Read(ctx, conn, &evt); err != nil {
			if ctx.Err() != nil || websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				return nil
			}
			return fmt.Errorf("read event: %w", err)
		}
		if evt.Type == "" {
			continue
		}
		if err := fn(evt); err != nil {
			return err
		}
	}
}
