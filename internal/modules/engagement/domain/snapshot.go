package domain

import "strings"

type LinkClick struct {
	Href      string `json:"href"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// Snapshot is the accumulated interaction state of one page visit. Every
// counter is non-decreasing for the lifetime of the page.
type Snapshot struct {
	TimeOnPage      int         `json:"timeOnPage"`
	ScrollDepth     int         `json:"scrollDepth"`
	ClickCount      int         `json:"clickCount"`
	LinksClicked    []LinkClick `json:"linksClicked"`
	FormsInteracted bool        `json:"formsInteracted"`
}

func (s Snapshot) Clone() Snapshot {
	out := s
	out.LinksClicked = append([]LinkClick{}, s.LinksClicked...)
	return out
}

// ClickedLinkContaining reports whether any clicked href contains needle, ignoring case.
func (s Snapshot) ClickedLinkContaining(needle string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return false
	}
	for _, link := range s.LinksClicked {
		if strings.Contains(strings.ToLower(link.Href), needle) {
			return true
		}
	}
	return false
}
