package domain

const StorageKey = "settings"

const DefaultTaskDelay = 5

type Settings struct {
	Notifications bool `json:"notifications"`
	AutoStart     bool `json:"autoStart"`
	// TaskDelay is the pause in seconds before an auto-started task.
	TaskDelay int `json:"taskDelay"`
}

func Defaults() Settings {
	return Settings{Notifications: true, AutoStart: false, TaskDelay: DefaultTaskDelay}
}

// Patch carries the fields a caller wants to change.
type Patch struct {
	Notifications *bool
	AutoStart     *bool
	TaskDelay     *int
}

func (s Settings) Apply(p Patch) Settings {
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	if p.AutoStart != nil {
		s.AutoStart = *p.AutoStart
	}
	if p.TaskDelay != nil {
		s.TaskDelay = *p.TaskDelay
	}
	return s.Normalize()
}

func (s Settings) Normalize() Settings {
	if s.TaskDelay < 0 {
		s.TaskDelay = 0
	}
	return s
}
