package models

// SortOrder selects how cached rants are ordered for display.
type SortOrder string

const (
	SortOldToNew  SortOrder = "0"
	SortNewToOld  SortOrder = "1"
	SortHighToLow SortOrder = "2"
	SortLowToHigh SortOrder = "3"
)

// Theme selects the color theme for the rendered sidebar.
type Theme string

const (
	ThemeRumble Theme = "0"
	ThemeSystem Theme = "1"
	ThemeDark   Theme = "2"
	ThemeLight  Theme = "3"
)

// Options is the single stored record of user-configurable settings.
type Options struct {
	SortOrder       SortOrder `json:"sortOrder"`
	HistoryDays     int       `json:"historyDays"`
	Theme           Theme     `json:"theme"`
	AsPopup         bool      `json:"asPopup"`
	AlternateColors bool      `json:"alternateColors"`
	MuteInChat      bool      `json:"muteInChat"`
	MuteInRantStats bool      `json:"muteInRantStats"`
	// One muted word or phrase per line, '#' starts a comment.
	CustomMutedWords string `json:"customMutedWords"`
}

// OptionsUpdate is a partial Options. Nil fields are absent and keep the
// stored value.
type OptionsUpdate struct {
	SortOrder        *SortOrder `json:"sortOrder,omitempty"`
	HistoryDays      *int       `json:"historyDays,omitempty"`
	Theme            *Theme     `json:"theme,omitempty"`
	AsPopup          *bool      `json:"asPopup,omitempty"`
	AlternateColors  *bool      `json:"alternateColors,omitempty"`
	MuteInChat       *bool      `json:"muteInChat,omitempty"`
	MuteInRantStats  *bool      `json:"muteInRantStats,omitempty"`
	CustomMutedWords *string    `json:"customMutedWords,omitempty"`
}

// Apply merges the update: present keys overwrite, absent keys are retained.
func (o *Options) Apply(u *OptionsUpdate) {
	if u == nil {
		return
	}
	if u.SortOrder != nil {
		o.SortOrder = *u.SortOrder
	}
	if u.HistoryDays != nil {
		o.HistoryDays = *u.HistoryDays
	}
	if u.Theme != nil {
		o.Theme = *u.Theme
	}
	if u.AsPopup != nil {
		o.AsPopup = *u.AsPopup
	}
	if u.AlternateColors != nil {
		o.AlternateColors = *u.AlternateColors
	}
	if u.MuteInChat != nil {
		o.MuteInChat = *u.MuteInChat
	}
	if u.MuteInRantStats != nil {
		o.MuteInRantStats = *u.MuteInRantStats
	}
	if u.CustomMutedWords != nil {
		o.CustomMutedWords = *u.CustomMutedWords
	}
}

// DefaultOptions returns the options used before anything has been saved.
func DefaultOptions() Options {
	return Options{
		SortOrder:       SortNewToOld,
		HistoryDays:     30,
		Theme:           ThemeRumble,
		AsPopup:         false,
		AlternateColors: true,
		MuteInChat:      true,
		MuteInRantStats: true,
	}
}
