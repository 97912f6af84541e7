package domain

// Report describes the page currently loaded in a tab.
type Report struct {
	Target   bool
	Site     SiteType
	URL      string
	Snapshot Snapshot
}
