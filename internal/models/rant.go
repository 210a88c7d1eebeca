package models

// Rant holds the paid portion of a chat message.
type Rant struct {
	// Amount in US cents.
	PriceCents int `json:"price_cents"`
}

// Notification holds a non-monetary chat event (e.g. new subscriber) that
// still carries a badge, display text and its own read state.
type Notification struct {
	Badge string `json:"badge"`
	Text  string `json:"text"`
	Read  bool   `json:"read,omitempty"`
}

// NotificationUpdate is a partial Notification. Nil fields are absent and
// leave the stored value untouched.
type NotificationUpdate struct {
	Badge *string `json:"badge,omitempty"`
	Text  *string `json:"text,omitempty"`
	Read  *bool   `json:"read,omitempty"`
}

// CachedRant is one stored chat message with optional paid-rant and
// notification payloads.
type CachedRant struct {
	ID           string        `json:"id"`
	Time         string        `json:"time"`
	UserID       string        `json:"user_id"`
	Text         string        `json:"text"`
	Username     string        `json:"username,omitempty"`
	Rant         *Rant         `json:"rant,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
	Badges       []string      `json:"badges,omitempty"`
	Read         bool          `json:"read,omitempty"`
}

// RantUpdate is a partial CachedRant as received from the event stream or a
// caller. Nil fields are absent. ID is the match key and is never optional;
// an update with an empty ID is treated as a brand new entry (see JoinRants).
type RantUpdate struct {
	ID           string              `json:"id"`
	Time         *string             `json:"time,omitempty"`
	UserID       *string             `json:"user_id,omitempty"`
	Text         *string             `json:"text,omitempty"`
	Username     *string             `json:"username,omitempty"`
	Rant         *Rant               `json:"rant,omitempty"`
	Notification *NotificationUpdate `json:"notification,omitempty"`
	Badges       []string            `json:"badges,omitempty"`
	Read         *bool               `json:"read,omitempty"`
}

// Apply merges the update into the notification field by field. Absent
// fields keep their stored value, so a text update never reverts an
// earlier read flag.
func (n *Notification) Apply(u *NotificationUpdate) {
	if u == nil {
		return
	}
	if u.Badge != nil {
		n.Badge = *u.Badge
	}
	if u.Text != nil {
		n.Text = *u.Text
	}
	if u.Read != nil {
		n.Read = *u.Read
	}
}

// Apply merges the update into the rant. Every present field overwrites the
// stored one, except Notification which is merged field by field when a
// notification is already stored.
func (r *CachedRant) Apply(u *RantUpdate) {
	if u == nil {
		return
	}
	if u.Time != nil {
		r.Time = *u.Time
	}
	if u.UserID != nil {
		r.UserID = *u.UserID
	}
	if u.Text != nil {
		r.Text = *u.Text
	}
	if u.Username != nil {
		r.Username = *u.Username
	}
	if u.Rant != nil {
		rant := *u.Rant
		r.Rant = &rant
	}
	if u.Notification != nil {
		if r.Notification == nil {
			r.Notification = &Notification{}
		}
		r.Notification.Apply(u.Notification)
	}
	if u.Badges != nil {
		r.Badges = u.Badges
	}
	if u.Read != nil {
		r.Read = *u.Read
	}
}

// NewRantFromUpdate materializes a stored entry from a partial. Absent
// fields stay at their zero value and get filled by later merges.
func NewRantFromUpdate(u *RantUpdate) *CachedRant {
	r := &CachedRant{ID: u.ID}
	r.Apply(u)
	return r
}

// JoinRants merges the incoming partials into the stored list, keyed by rant
// ID. Unknown IDs are appended, known IDs are merged in place. The stored
// order is insertion order and is never changed. Partials with an empty ID
// cannot be matched and are always appended.
func JoinRants(cached []*CachedRant, incoming []*RantUpdate) []*CachedRant {
	for _, u := range incoming {
		if u == nil {
			continue
		}
		var existing *CachedRant
		if u.ID != "" {
			for _, r := range cached {
				if r.ID == u.ID {
					existing = r
					break
				}
			}
		}
		if existing == nil {
			cached = append(cached, NewRantFromUpdate(u))
		} else {
			existing.Apply(u)
		}
	}
	return cached
}
