package dto

import (
	"bytes"
	"encoding/json"

	taskdto "socialteam/internal/modules/task/dto"
)

// Envelope is one protocol message on the wire. Older senders put their
// fields at the top level instead of under data; both are accepted.
type Envelope struct {
	ID        string          `json:"id,omitempty"`
	Type      string          `json:"type"`
	TabID     *int            `json:"tabId,omitempty"`
	URL       string          `json:"url,omitempty"`
	Timestamp int64           `json:"timestamp,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`

	TaskID FlexString      `json:"taskId,omitempty"`
	Points *int            `json:"points,omitempty"`
	Count  *int            `json:"count,omitempty"`
	Task   json.RawMessage `json:"task,omitempty"`
}

// FlexString accepts a JSON string or number.
type FlexString string

func (f *FlexString) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		*f = ""
		return nil
	}
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// WireTask is a task as senders write it; ids may be numbers.
type WireTask struct {
	ID          FlexString `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TargetURL   string     `json:"targetUrl"`
	Duration    int        `json:"duration"`
	Points      int        `json:"points"`
	Type        string     `json:"type"`
	Steps       []string   `json:"steps,omitempty"`
}

type Ack struct {
	Success bool `json:"success"`
}

type TasksResponse struct {
	Success bool                 `json:"success"`
	Tasks   []taskdto.TaskOutput `json:"tasks"`
	Error   string               `json:"error,omitempty"`
}

type OpenTabResponse struct {
	Success bool   `json:"success"`
	TabID   int    `json:"tabId,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ReceivedResponse struct {
	Received bool `json:"received"`
}

type StartedResponse struct {
	Started bool `json:"started"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Reply wraps a response on the websocket so it can be matched to its request.
type Reply struct {
	ID       string `json:"id"`
	Response any    `json:"response"`
}

// Event is pushed to every watcher.
type Event struct {
	Type      string         `json:"type"`
	TabID     *int           `json:"tabId,omitempty"`
	URL       string         `json:"url,omitempty"`
	Timestamp int64          `json:"timestamp"`
	Data      map[string]any `json:"data,omitempty"`
}

type InstallOutput struct {
	FirstRun        bool   `json:"firstRun"`
	PreviousVersion string `json:"previousVersion,omitempty"`
	Version         string `json:"version"`
}

type BadgeOutput struct {
	Count int    `json:"count"`
	Text  string `json:"text"`
	Color string `json:"color"`
}

type HealthOutput struct {
	Status  string      `json:"status"`
	Version string      `json:"version"`
	Badge   BadgeOutput `json:"badge"`
}

func IntPtr(v int) *int {
	return &v
}

func (f FlexString) String() string {
	return string(f)
}
