package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rantstats/rantstats-extension/internal/models"
)

func TestOptionsService_DefaultsOnFirstRead(t *testing.T) {
	os := NewOptionsService(newTestAdapter(t))
	options, err := os.GetOptions()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultOptions(), options)
}

func TestOptionsService_DefaultsNotPersisted(t *testing.T) {
	adapter := newTestAdapter(t)
	os := NewOptionsService(adapter)
	_, err := os.GetOptions()
	require.NoError(t, err)

	_, ok := adapter.GetRaw("options")
	assert.False(t, ok)
}

func TestOptionsService_UpdateMergesPartial(t *testing.T) {
	os := NewOptionsService(newTestAdapter(t))
	days := 7
	merged, err := os.UpdateOptions(&models.OptionsUpdate{HistoryDays: &days})
	require.NoError(t, err)

	assert.Equal(t, 7, merged.HistoryDays)
	assert.Equal(t, models.SortNewToOld, merged.SortOrder)

	// second partial update keeps the first one
	theme := models.ThemeDark
	merged, err = os.UpdateOptions(&models.OptionsUpdate{Theme: &theme})
	require.NoError(t, err)
	assert.Equal(t, 7, merged.HistoryDays)
	assert.Equal(t, models.ThemeDark, merged.Theme)
}

func TestOptionsService_StoredPartialRecordFilledWithDefaults(t *testing.T) {
	adapter := newTestAdapter(t)
	// a record saved by an older build may miss newer keys
	require.NoError(t, adapter.Set("options", map[string]any{"historyDays": 5}))

	os := NewOptionsService(adapter)
	options, err := os.GetOptions()
	require.NoError(t, err)
	assert.Equal(t, 5, options.HistoryDays)
	assert.Equal(t, models.SortNewToOld, options.SortOrder)
	assert.True(t, options.AlternateColors)
}

func TestOptionsService_GetSortOrderAndTheme(t *testing.T) {
	os := NewOptionsService(newTestAdapter(t))
	order, err := os.GetSortOrder()
	require.NoError(t, err)
	assert.Equal(t, models.SortNewToOld, order)

	theme, err := os.GetTheme()
	require.NoError(t, err)
	assert.Equal(t, models.ThemeRumble, theme)
}

func TestOptionsService_GetHistoryDaysDefault(t *testing.T) {
	os := NewOptionsService(newTestAdapter(t))
	days, err := os.GetHistoryDays()
	require.NoError(t, err)
	assert.Equal(t, 30, days)
}

func TestOptionsService_WidthDefault(t *testing.T) {
	os := NewOptionsService(newTestAdapter(t))
	width, err := os.GetLastWidth()
	require.NoError(t, err)
	assert.Equal(t, 400, width)
}

func TestOptionsService_WidthRoundtrip(t *testing.T) {
	os := NewOptionsService(newTestAdapter(t))
	require.NoError(t, os.SetLastWidth(640))

	width, err := os.GetLastWidth()
	require.NoError(t, err)
	assert.Equal(t, 640, width)
}
