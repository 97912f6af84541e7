package domain

import (
	"net/url"
	"strings"
)

type SiteType string

const (
	SiteOfficial SiteType = "official"
	SiteNostr    SiteType = "nostr"
	SitePartner  SiteType = "partner"
	SiteSearch   SiteType = "search"
	SiteSocial   SiteType = "social"
)

// Order matters: the first matching entry wins.
var contentSites = []struct {
	domain string
	site   SiteType
}{
	{"clickforcharity.net", SiteOfficial},
	{"iris.to", SiteNostr},
	{"lightning.news", SitePartner},
	{"google.com", SiteSearch},
	{"twitter.com", SiteSocial},
	{"x.com", SiteSocial},
}

// KeyPages are the official-site paths worth reporting.
var KeyPages = []string{"how-it-works", "donate", "recipients", "about"}

// DetectSite classifies a hostname.
func DetectSite(host string) (SiteType, bool) {
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return "", false
	}
	for _, entry := range contentSites {
		if strings.Contains(host, entry.domain) {
			return entry.site, true
		}
	}
	return "", false
}

// HostOf returns the lowercase hostname of rawURL, or "" when it cannot be parsed.
func HostOf(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// URLMatchesAny reports whether rawURL contains one of sites.
func URLMatchesAny(rawURL string, sites []string) bool {
	if rawURL == "" {
		return false
	}
	for _, site := range sites {
		if site != "" && strings.Contains(rawURL, site) {
			return true
		}
	}
	return false
}

func KeyPagesIn(rawURL string) []string {
	var out []string
	for _, page := range KeyPages {
		if strings.Contains(rawURL, page) {
			out = append(out, page)
		}
	}
	return out
}

// NostrAction maps a button label to "like" or "repost".
func NostrAction(label string) (string, bool) {
	label = strings.ToLower(label)
	switch {
	case strings.Contains(label, "repost"):
		return "repost", true
	case strings.Contains(label, "like"):
		return "like", true
	default:
		return "", false
	}
}
