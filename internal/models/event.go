package models

// ChatUser is the user shape carried by the inbound chat event stream. The
// producer is an external service, so every field is best-effort.
type ChatUser struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	Color      string   `json:"color"`
	Badges     []string `json:"badges,omitempty"`
	Image      string   `json:"image.1,omitempty"`
	IsFollower bool     `json:"is_follower"`
	Link       string   `json:"link"`
}

// RantLevelColors is the color block of one rant level definition.
type RantLevelColors struct {
	Foreground string `json:"fg"`
	Main       string `json:"main"`
	Background string `json:"bg2"`
}

// RantLevel is one paid-rant tier from the host chat config.
type RantLevel struct {
	PriceDollars int             `json:"price_dollars"`
	Duration     int             `json:"duration"`
	Colors       RantLevelColors `json:"colors"`
	IDs          []string        `json:"ids,omitempty"`
}
