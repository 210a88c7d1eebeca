package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamApply_TimeWriteOnce(t *testing.T) {
	stream := &CachedStream{VideoID: "42", Time: "2024-01-01T00:00:00Z"}
	stream.Apply(&StreamUpdate{Time: strPtr("2024-02-02T00:00:00Z")})

	assert.Equal(t, "2024-01-01T00:00:00Z", stream.Time)
}

func TestStreamApply_TimeSetWhenEmpty(t *testing.T) {
	stream := &CachedStream{VideoID: "42", Time: ""}
	stream.Apply(&StreamUpdate{Time: strPtr("2024-01-01T00:00:00Z")})

	assert.Equal(t, "2024-01-01T00:00:00Z", stream.Time)
}

func TestStreamApply_HeaderFieldsOverwritten(t *testing.T) {
	stream := &CachedStream{VideoID: "42", Title: "old", Creator: "alice"}
	stream.Apply(&StreamUpdate{Title: strPtr("new")})

	assert.Equal(t, "new", stream.Title)
	assert.Equal(t, "alice", stream.Creator)
}

func TestStreamApply_RantsJoined(t *testing.T) {
	stream := &CachedStream{VideoID: "42", Rants: []*CachedRant{{ID: "a", Text: "hi"}}}
	stream.Apply(&StreamUpdate{Rants: []*RantUpdate{
		{ID: "a", Read: boolPtr(true)},
		{ID: "b", Text: strPtr("yo")},
	}})

	require.Len(t, stream.Rants, 2)
	assert.Equal(t, "hi", stream.Rants[0].Text)
	assert.True(t, stream.Rants[0].Read)
	assert.Equal(t, "yo", stream.Rants[1].Text)
}

func TestNewStreamFromUpdate_PartialFields(t *testing.T) {
	stream := NewStreamFromUpdate(&StreamUpdate{
		VideoID: "42",
		Rants:   []*RantUpdate{{ID: "m1", Text: strPtr("hello")}},
	})

	assert.Equal(t, "42", stream.VideoID)
	assert.Empty(t, stream.Title)
	assert.Empty(t, stream.Time)
	require.Len(t, stream.Rants, 1)
	assert.Equal(t, "m1", stream.Rants[0].ID)
}

func TestNewStreamFromUpdate_TimeTaken(t *testing.T) {
	stream := NewStreamFromUpdate(&StreamUpdate{
		VideoID: "42",
		Time:    strPtr("2024-01-01T00:00:00Z"),
	})

	assert.Equal(t, "2024-01-01T00:00:00Z", stream.Time)
}
