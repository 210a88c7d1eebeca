package models

// CacheUser is a stored chat user. Users are only cached to recall their
// profile image across reloads, so entries without an image never persist.
type CacheUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Image    string `json:"image"`
}

// UserUpdate is a partial CacheUser. Nil fields are absent.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Image    *string `json:"image,omitempty"`
}

// Apply overwrites stored fields from the fields the update carries.
// Last-write-wins per field; fields the update omits survive.
func (c *CacheUser) Apply(u *UserUpdate) {
	if u == nil {
		return
	}
	if u.Username != nil {
		c.Username = *u.Username
	}
	if u.Image != nil {
		c.Image = *u.Image
	}
}
