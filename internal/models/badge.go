package models

// CacheBadge is one badge definition from the host chat config. Definitions
// are refreshed wholesale each session, never merged.
type CacheBadge struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}
