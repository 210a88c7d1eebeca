package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	options := DefaultOptions()

	assert.Equal(t, SortNewToOld, options.SortOrder)
	assert.Equal(t, 30, options.HistoryDays)
	assert.Equal(t, ThemeRumble, options.Theme)
	assert.False(t, options.AsPopup)
	assert.True(t, options.AlternateColors)
	assert.True(t, options.MuteInChat)
	assert.True(t, options.MuteInRantStats)
}

func TestOptionsApply_PresentKeysOverwrite(t *testing.T) {
	options := DefaultOptions()
	days := 7
	order := SortHighToLow
	options.Apply(&OptionsUpdate{HistoryDays: &days, SortOrder: &order})

	assert.Equal(t, 7, options.HistoryDays)
	assert.Equal(t, SortHighToLow, options.SortOrder)
}

func TestOptionsApply_AbsentKeysRetained(t *testing.T) {
	options := DefaultOptions()
	theme := ThemeDark
	options.Apply(&OptionsUpdate{Theme: &theme})

	assert.Equal(t, ThemeDark, options.Theme)
	assert.Equal(t, 30, options.HistoryDays)
	assert.Equal(t, SortNewToOld, options.SortOrder)
	assert.True(t, options.AlternateColors)
}

func TestOptionsApply_NilUpdateIsNoop(t *testing.T) {
	options := DefaultOptions()
	options.Apply(nil)

	assert.Equal(t, DefaultOptions(), options)
}
