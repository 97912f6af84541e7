package domain

// EventBadge is published whenever the badge changes.
const EventBadge = "BADGE_UPDATED"

// Alarm names.
const (
	AlarmFetchTasks    = "fetch-new-tasks"
	AlarmDailyReminder = "daily-reminder"
)

// Storage keys owned by the background.
const (
	KeyLastTaskFetch = "lastTaskFetch"
	KeyVersion       = "version"
)

type Badge struct {
	Count int
	Text  string
	Color string
}
