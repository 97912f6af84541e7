package domain

import taskdomain "socialteam/internal/modules/task/domain"

type Kind string

const (
	KindGetTasks              Kind = "GET_TASKS"
	KindTaskCompleted         Kind = "TASK_COMPLETED"
	KindUpdateBadge           Kind = "UPDATE_BADGE"
	KindOpenTab               Kind = "OPEN_TAB"
	KindTargetSiteDetected    Kind = "TARGET_SITE_DETECTED"
	KindStartTaskVerification Kind = "START_TASK_VERIFICATION"
	KindCheckPageInteraction  Kind = "CHECK_PAGE_INTERACTION"
	KindVerifyTaskCompletion  Kind = "VERIFY_TASK_COMPLETION"

	KindTargetSiteVisited      Kind = "TARGET_SITE_VISITED"
	KindNostrInteraction       Kind = "NOSTR_INTERACTION"
	KindSearchPerformed        Kind = "SEARCH_PERFORMED"
	KindSearchResultClicked    Kind = "SEARCH_RESULT_CLICKED"
	KindKeyPageVisited         Kind = "KEY_PAGE_VISITED"
	KindTaskVerificationPassed Kind = "TASK_VERIFICATION_PASSED"

	KindTabUpdated Kind = "TAB_UPDATED"
	KindTabRemoved Kind = "TAB_REMOVED"
	KindPageScroll Kind = "PAGE_SCROLL"
	KindPageClick  Kind = "PAGE_CLICK"
	KindPageInput  Kind = "PAGE_INPUT"
	KindPageSubmit Kind = "PAGE_SUBMIT"
)

// Kinds lists every message kind the background understands.
var Kinds = []Kind{
	KindGetTasks, KindTaskCompleted, KindUpdateBadge, KindOpenTab,
	KindTargetSiteDetected, KindStartTaskVerification, KindCheckPageInteraction, KindVerifyTaskCompletion,
	KindTargetSiteVisited, KindNostrInteraction, KindSearchPerformed, KindSearchResultClicked,
	KindKeyPageVisited, KindTaskVerificationPassed,
	KindTabUpdated, KindTabRemoved, KindPageScroll, KindPageClick, KindPageInput, KindPageSubmit,
}

// IsNotice reports whether k is a report sent up by a page agent.
func (k Kind) IsNotice() bool {
	switch k {
	case KindTargetSiteVisited, KindNostrInteraction, KindSearchPerformed,
		KindSearchResultClicked, KindKeyPageVisited, KindTaskVerificationPassed:
		return true
	default:
		return false
	}
}

// Message is a decoded protocol message. The set of implementations is
// closed; dispatch switches over them.
type Message interface {
	Kind() Kind
}

type GetTasks struct{}

type TaskCompleted struct {
	TaskID string
	Points int
}

type UpdateBadge struct {
	// Count is nil when the sender wants the badge recomputed from stats.
	Count *int
}

type OpenTab struct {
	URL string
}

type TargetSiteDetected struct {
	TabID int
	URL   string
}

type StartTaskVerification struct {
	TabID int
	Task  taskdomain.Task
}

type CheckPageInteraction struct {
	TabID int
}

type VerifyTaskCompletion struct {
	TabID int
	Task  taskdomain.Task
}

// Notice is any page agent report.
type Notice struct {
	Type      Kind
	TabID     int
	URL       string
	Timestamp int64
	Data      map[string]any
}

type TabUpdated struct {
	TabID  int
	URL    string
	Status string
}

type TabRemoved struct {
	TabID int
}

type PageScroll struct {
	TabID          int
	ScrollY        float64
	ScrollHeight   float64
	ViewportHeight float64
}

type PageClick struct {
	TabID int
	Tag   string
	Href  string
	Text  string
	Label string
}

type PageInput struct {
	TabID int
}

type PageSubmit struct {
	TabID int
	Query string
}

func (GetTasks) Kind() Kind              { return KindGetTasks }
func (TaskCompleted) Kind() Kind         { return KindTaskCompleted }
func (UpdateBadge) Kind() Kind           { return KindUpdateBadge }
func (OpenTab) Kind() Kind               { return KindOpenTab }
func (TargetSiteDetected) Kind() Kind    { return KindTargetSiteDetected }
func (StartTaskVerification) Kind() Kind { return KindStartTaskVerification }
func (CheckPageInteraction) Kind() Kind  { return KindCheckPageInteraction }
func (VerifyTaskCompletion) Kind() Kind  { return KindVerifyTaskCompletion }
func (n Notice) Kind() Kind              { return n.Type }
func (TabUpdated) Kind() Kind            { return KindTabUpdated }
func (TabRemoved) Kind() Kind            { return KindTabRemoved }
func (PageScroll) Kind() Kind            { return KindPageScroll }
func (PageClick) Kind() Kind             { return KindPageClick }
func (PageInput) Kind() Kind             { return KindPageInput }
func (PageSubmit) Kind() Kind            { return KindPageSubmit }
