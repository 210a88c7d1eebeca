package models

// CachedStream is the stored record for one monitored video/stream and all
// rants observed during it.
type CachedStream struct {
	VideoID string `json:"videoId"`
	Title   string `json:"title"`
	Creator string `json:"creator"`
	// First time the stream was cached, ISO-8601. Empty string means
	// unknown. Write-once: never overwritten once non-empty.
	Time       string        `json:"time"`
	URL        string        `json:"url"`
	CreatorURL string        `json:"creatorUrl"`
	Rants      []*CachedRant `json:"rants"`
}

// StreamUpdate is a partial CachedStream. Nil fields are absent.
type StreamUpdate struct {
	VideoID    string        `json:"videoId"`
	Title      *string       `json:"title,omitempty"`
	Creator    *string       `json:"creator,omitempty"`
	Time       *string       `json:"time,omitempty"`
	URL        *string       `json:"url,omitempty"`
	CreatorURL *string       `json:"creatorUrl,omitempty"`
	Rants      []*RantUpdate `json:"rants,omitempty"`
}

// Apply merges the update into the stream. Time is write-once: the new
// value is only taken while the stored value is still the empty string, so a
// later reconnect cannot clobber the true first-seen time. Rants go through
// JoinRants, everything else overwrites unconditionally.
func (s *CachedStream) Apply(u *StreamUpdate) {
	if u == nil {
		return
	}
	if u.Title != nil {
		s.Title = *u.Title
	}
	if u.Creator != nil {
		s.Creator = *u.Creator
	}
	if u.Time != nil && s.Time == "" {
		s.Time = *u.Time
	}
	if u.URL != nil {
		s.URL = *u.URL
	}
	if u.CreatorURL != nil {
		s.CreatorURL = *u.CreatorURL
	}
	if u.Rants != nil {
		s.Rants = JoinRants(s.Rants, u.Rants)
	}
}

// NewStreamFromUpdate materializes a stream record from a partial, e.g. when
// a single rant arrives before the stream header. The write-once rule does
// not apply here since there is no stored time yet.
func NewStreamFromUpdate(u *StreamUpdate) *CachedStream {
	s := &CachedStream{VideoID: u.VideoID}
	if u.Time != nil {
		s.Time = *u.Time
	}
	s.Apply(u)
	return s
}
