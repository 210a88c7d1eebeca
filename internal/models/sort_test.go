package models

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sortedIDs(rants []*CachedRant, order SortOrder) []string {
	less := RantLess(order)
	sort.SliceStable(rants, func(i, j int) bool { return less(rants[i], rants[j]) })
	ids := make([]string, 0, len(rants))
	for _, r := range rants {
		ids = append(ids, r.ID)
	}
	return ids
}

func sortFixture() []*CachedRant {
	return []*CachedRant{
		{ID: "mid", Time: "2024-01-02T00:00:00Z", Rant: &Rant{PriceCents: 500}},
		{ID: "old", Time: "2024-01-01T00:00:00Z", Rant: &Rant{PriceCents: 2000}},
		{ID: "new", Time: "2024-01-03T00:00:00Z"},
	}
}

func TestRantLess_OldToNew(t *testing.T) {
	assert.Equal(t, []string{"old", "mid", "new"}, sortedIDs(sortFixture(), SortOldToNew))
}

func TestRantLess_NewToOld(t *testing.T) {
	assert.Equal(t, []string{"new", "mid", "old"}, sortedIDs(sortFixture(), SortNewToOld))
}

func TestRantLess_HighToLow(t *testing.T) {
	// entries without a rant payload count as zero cents
	assert.Equal(t, []string{"old", "mid", "new"}, sortedIDs(sortFixture(), SortHighToLow))
}

func TestRantLess_LowToHigh(t *testing.T) {
	assert.Equal(t, []string{"new", "mid", "old"}, sortedIDs(sortFixture(), SortLowToHigh))
}

func TestRantLess_UnknownOrderFallsBackToNewToOld(t *testing.T) {
	assert.Equal(t, []string{"new", "mid", "old"}, sortedIDs(sortFixture(), SortOrder("9")))
}
