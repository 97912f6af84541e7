package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"socialteam/internal/modules/runtime/domain"
	"socialteam/internal/modules/runtime/dto"
	taskdomain "socialteam/internal/modules/task/domain"
	apperrors "socialteam/internal/platform/errors"
)

type taskCompletedData struct {
	TaskID dto.FlexString `json:"taskId"`
	Points *int           `json:"points"`
}

type badgeData struct {
	Count *int `json:"count"`
}

type urlData struct {
	URL string `json:"url"`
}

type taskData struct {
	Task json.RawMessage `json:"task"`
}

type tabUpdatedData struct {
	URL    string `json:"url"`
	Status string `json:"status"`
}

type scrollData struct {
	ScrollY        float64 `json:"scrollY"`
	ScrollHeight   float64 `json:"scrollHeight"`
	ViewportHeight float64 `json:"viewportHeight"`
}

type clickData struct {
	Tag   string `json:"tag"`
	Href  string `json:"href"`
	Text  string `json:"text"`
	Label string `json:"label"`
}

type submitData struct {
	Query string `json:"query"`
}

// Decode turns an envelope into its typed message. Unknown types fail with
// ErrUnknownMessageType.
func Decode(env dto.Envelope) (domain.Message, error) {
	kind := domain.Kind(strings.TrimSpace(env.Type))
	switch kind {
	case domain.KindGetTasks:
		return domain.GetTasks{}, nil

	case domain.KindTaskCompleted:
		var data taskCompletedData
		if err := decodeData(env, &data); err != nil {
			return nil, err
		}
		msg := domain.TaskCompleted{TaskID: data.TaskID.String()}
		if msg.TaskID == "" {
			msg.TaskID = env.TaskID.String()
		}
		points := data.Points
		if points == nil {
			points = env.Points
		}
		if points != nil {
			msg.Points = *points
		}
		if msg.Points < 0 {
			return nil, fmt.Errorf("%w: points must be non-negative", apperrors.ErrInvalidInput)
		}
		return msg, nil

	case domain.KindUpdateBadge:
		var data badgeData
		if err := decodeData(env, &data); err != nil {
			return nil, err
		}
		if data.Count == nil {
			data.Count = env.Count
		}
		return domain.UpdateBadge{Count: data.Count}, nil

	case domain.KindOpenTab:
		var data urlData
		if err := decodeData(env, &data); err != nil {
			return nil, err
		}
		if data.URL == "" {
			data.URL = env.URL
		}
		if strings.TrimSpace(data.URL) == "" {
			return nil, fmt.Errorf("%w: url is required", apperrors.ErrInvalidInput)
		}
		return domain.OpenTab{URL: data.URL}, nil

	case domain.KindTargetSiteDetected:
		tabID, err := requireTab(env)
		if err != nil {
			return nil, err
		}
		return domain.TargetSiteDetected{TabID: tabID, URL: env.URL}, nil

	case domain.KindStartTaskVerification:
		tabID, task, err := tabAndTask(env)
		if err != nil {
			return nil, err
		}
		return domain.StartTaskVerification{TabID: tabID, Task: task}, nil

	case domain.KindCheckPageInteraction:
		tabID, err := requireTab(env)
		if err != nil {
			return nil, err
		}
		return domain.CheckPageInteraction{TabID: tabID}, nil

	case domain.KindVerifyTaskCompletion:
		tabID, task, err := tabAndTask(env)
		if err != nil {
			return nil, err
		}
		return domain.VerifyTaskCompletion{TabID: tabID, Task: task}, nil

	case domain.KindTargetSiteVisited, domain.KindNostrInteraction, domain.KindSearchPerformed,
		domain.KindSearchResultClicked, domain.KindKeyPageVisited, domain.KindTaskVerificationPassed:
		data := map[string]any{}
		if err := decodeData(env, &data); err != nil {
			return nil, err
		}
		notice := domain.Notice{Type: kind, URL: env.URL, Timestamp: env.Timestamp, Data: data}
		if env.TabID != nil {
			notice.TabID = *env.TabID
		}
		return notice, nil

	case domain.KindTabUpdated:
		tabID, err := requireTab(env)
		if err != nil {
			return nil, err
		}
		var data tabUpdatedData
		if err := decodeData(env, &data); err != nil {
			return nil, err
		}
		if data.URL == "" {
			data.URL = env.URL
		}
		return domain.TabUpdated{TabID: tabID, URL: data.URL, Status: data.Status}, nil

	case domain.KindTabRemoved:
		tabID, err := requireTab(env)
		if err != nil {
			return nil, err
		}
		return domain.TabRemoved{TabID: tabID}, nil

	case domain.KindPageScroll:
		tabID, err := requireTab(env)
		if err != nil {
			return nil, err
		}
		var data scrollData
		if err := decodeData(env, &data); err != nil {
			return nil, err
		}
		return domain.PageScroll{TabID: tabID, ScrollY: data.ScrollY, ScrollHeight: data.ScrollHeight, ViewportHeight: data.ViewportHeight}, nil

	case domain.KindPageClick:
		tabID, err := requireTab(env)
		if err != nil {
			return nil, err
		}
		var data clickData
		if err := decodeData(env, &data); err != nil {
			return nil, err
		}
		return domain.PageClick{TabID: tabID, Tag: data.Tag, Href: data.Href, Text: data.Text, Label: data.Label}, nil

	case domain.KindPageInput:
		tabID, err := requireTab(env)
		if err != nil {
			return nil, err
		}
		return domain.PageInput{TabID: tabID}, nil

	case domain.KindPageSubmit:
		tabID, err := requireTab(env)
		if err != nil {
			return nil, err
		}
		var data submitData
		if err := decodeData(env, &data); err != nil {
			return nil, err
		}
		return domain.PageSubmit{TabID: tabID, Query: data.Query}, nil

	default:
		return nil, apperrors.ErrUnknownMessageType
	}
}

func decodeData(env dto.Envelope, dst any) error {
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		return fmt.Errorf("%w: %s data: %v", apperrors.ErrInvalidInput, env.Type, err)
	}
	return nil
}

func requireTab(env dto.Envelope) (int, error) {
	if env.TabID == nil {
		return 0, fmt.Errorf("%w: %s requires tabId", apperrors.ErrInvalidInput, env.Type)
	}
	return *env.TabID, nil
}

func tabAndTask(env dto.Envelope) (int, taskdomain.Task, error) {
	tabID, err := requireTab(env)
	if err != nil {
		return 0, taskdomain.Task{}, err
	}
	var data taskData
	if err := decodeData(env, &data); err != nil {
		return 0, taskdomain.Task{}, err
	}
	raw := data.Task
	if len(raw) == 0 {
		raw = env.Task
	}
	if len(raw) == 0 {
		return 0, taskdomain.Task{}, fmt.Errorf("%w: %s requires a task", apperrors.ErrInvalidInput, env.Type)
	}
	var wire dto.WireTask
	if err := json.Unmarshal(raw, &wire); err != nil {
		return 0, taskdomain.Task{}, fmt.Errorf("%w: task: %v", apperrors.ErrInvalidInput, err)
	}
	task := taskdomain.Task{
		ID:          wire.ID.String(),
		Title:       wire.Title,
		Description: wire.Description,
		TargetURL:   wire.TargetURL,
		Duration:    wire.Duration,
		Points:      wire.Points,
		Type:        taskdomain.Type(strings.ToLower(strings.TrimSpace(wire.Type))),
		Steps:       wire.Steps,
	}
	return tabID, task, nil
}
