package domain

import (
	"fmt"
	"strings"
)

// DefaultDuration applies when a task does not state how long it takes.
const DefaultDuration = 30

type Type string

const (
	TypeVisit   Type = "visit"
	TypeSearch  Type = "search"
	TypeSocial  Type = "social"
	TypeSEO     Type = "seo"
	TypePartner Type = "partner"
)

func ParseType(raw string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(raw))); t {
	case TypeVisit, TypeSearch, TypeSocial, TypeSEO, TypePartner:
		return t, nil
	default:
		return "", fmt.Errorf("unsupported task type %q", raw)
	}
}

// Task is immutable once loaded.
type Task struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	TargetURL   string   `yaml:"targetUrl" json:"targetUrl"`
	Duration    int      `yaml:"duration" json:"duration"`
	Points      int      `yaml:"points" json:"points"`
	Type        Type     `yaml:"type" json:"type"`
	Steps       []string `yaml:"steps,omitempty" json:"steps,omitempty"`
}

// RequiredDuration is the time-on-page threshold in seconds.
func (t Task) RequiredDuration() int {
	if t.Duration <= 0 {
		return DefaultDuration
	}
	return t.Duration
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task %s: title is required", t.ID)
	}
	if strings.TrimSpace(t.TargetURL) == "" {
		return fmt.Errorf("task %s: target url is required", t.ID)
	}
	if t.Points < 0 {
		return fmt.Errorf("task %s: points must be non-negative", t.ID)
	}
	if _, err := ParseType(string(t.Type)); err != nil {
		return fmt.Errorf("task %s: %w", t.ID, err)
	}
	return nil
}

// Catalog holds the two built-in task lists.
type Catalog struct {
	Queue    []Task `yaml:"queue"`
	Campaign []Task `yaml:"campaign"`
}

func (c Catalog) Validate() error {
	for _, list := range [][]Task{c.Queue, c.Campaign} {
		for _, t := range list {
			if err := t.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
