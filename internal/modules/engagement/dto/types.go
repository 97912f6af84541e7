package dto

import (
	"socialteam/internal/modules/engagement/domain"
	taskdto "socialteam/internal/modules/task/dto"
)

type PageInput struct {
	TabID int
	URL   string
}

type ScrollInput struct {
	TabID          int
	ScrollY        float64
	ScrollHeight   float64
	ViewportHeight float64
}

type ClickInput struct {
	TabID int
	Tag   string
	Href  string
	Text  string
	Label string
}

type SubmitInput struct {
	TabID int
	Query string
}

type TaskInput struct {
	TabID int
	Task  taskdto.TaskOutput
}

// ScoreInput scores a hand-written snapshot without a live page.
type ScoreInput struct {
	Task        taskdto.TaskOutput
	TimeOnPage  int
	ClickCount  int
	ScrollDepth int
}

type LinkOutput struct {
	Href      string `json:"href"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

type SnapshotOutput struct {
	TimeOnPage      int          `json:"timeOnPage"`
	ScrollDepth     int          `json:"scrollDepth"`
	ClickCount      int          `json:"clickCount"`
	LinksClicked    []LinkOutput `json:"linksClicked"`
	FormsInteracted bool         `json:"formsInteracted"`
}

type InteractionReport struct {
	IsTargetSite bool           `json:"isTargetSite"`
	SiteType     string         `json:"siteType,omitempty"`
	Interactions SnapshotOutput `json:"interactions"`
	URL          string         `json:"url"`
	TimeOnPage   int            `json:"timeOnPage"`
}

type VerificationOutput struct {
	TaskID    string          `json:"taskId"`
	Completed bool            `json:"completed"`
	Score     int             `json:"score"`
	Details   map[string]bool `json:"details"`
}

func SnapshotFromDomain(s domain.Snapshot) SnapshotOutput {
	links := make([]LinkOutput, 0, len(s.LinksClicked))
	for _, link := range s.LinksClicked {
		links = append(links, LinkOutput{Href: link.Href, Text: link.Text, Timestamp: link.Timestamp})
	}
	return SnapshotOutput{
		TimeOnPage:      s.TimeOnPage,
		ScrollDepth:     s.ScrollDepth,
		ClickCount:      s.ClickCount,
		LinksClicked:    links,
		FormsInteracted: s.FormsInteracted,
	}
}

func VerificationFromDomain(r domain.Result) VerificationOutput {
	details := make(map[string]bool, len(r.Details))
	for k, v := range r.Details {
		details[k] = v
	}
	return VerificationOutput{TaskID: r.TaskID, Completed: r.Completed, Score: r.Score, Details: details}
}
