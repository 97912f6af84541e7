package domain

// Notice kinds a page agent reports to the background service.
const (
	NoticeTargetSiteVisited   = "TARGET_SITE_VISITED"
	NoticeNostrInteraction    = "NOSTR_INTERACTION"
	NoticeSearchPerformed     = "SEARCH_PERFORMED"
	NoticeSearchResultClicked = "SEARCH_RESULT_CLICKED"
	NoticeKeyPageVisited      = "KEY_PAGE_VISITED"
	NoticeVerificationPassed  = "TASK_VERIFICATION_PASSED"
)

type Notice struct {
	Kind      string
	TabID     int
	URL       string
	Timestamp int64
	Data      map[string]any
}
