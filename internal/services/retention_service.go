package services

import (
	"time"

	"github.com/rantstats/rantstats-extension/internal/providers"
	"github.com/rantstats/rantstats-extension/internal/storage"
)

// invalidStreamKey is the key a missing video id once serialized into.
// Every sweep removes it in case an old writer left it behind.
const invalidStreamKey = "vundefined"

type RetentionServiceInterface interface {
	CleanHistory() (int, error)
}

// RetentionService removes stream records older than the configured history
// window. The sweep is idempotent: a partial run just leaves keys for the
// next one.
type RetentionService struct {
	adapter storage.AdapterInterface
	streams StreamServiceInterface
	options OptionsServiceInterface
	clock   providers.ClockInterface
}

func NewRetentionService(adapter storage.AdapterInterface, streams StreamServiceInterface, options OptionsServiceInterface, clock providers.ClockInterface) RetentionServiceInterface {
	return &RetentionService{
		adapter: adapter,
		streams: streams,
		options: options,
		clock:   clock,
	}
}

// CleanHistory removes every stream record whose first-seen time is before
// now minus the history window. A stream with an empty or unparseable time
// is treated as older than any cutoff and always removed. Returns the
// number of stream records removed.
func (rs *RetentionService) CleanHistory() (int, error) {
	historyDays, err := rs.options.GetHistoryDays()
	if err != nil {
		return 0, err
	}
	cutoff := rs.clock.Now().Add(-time.Duration(historyDays) * 24 * time.Hour)

	streams, err := rs.streams.GetAllStreams()
	if err != nil {
		return 0, err
	}

	toRemove := []string{invalidStreamKey}
	for _, stream := range streams {
		if stream.Time == "" {
			toRemove = append(toRemove, StreamKey(stream.VideoID))
			continue
		}
		streamTime, err := time.Parse(time.RFC3339, stream.Time)
		if err != nil {
			toRemove = append(toRemove, StreamKey(stream.VideoID))
			continue
		}
		// Strictly before the cutoff: a record exactly at the boundary
		// is retained.
		if streamTime.Before(cutoff) {
			toRemove = append(toRemove, StreamKey(stream.VideoID))
		}
	}

	if err := rs.adapter.Remove(toRemove...); err != nil {
		return 0, err
	}
	return len(toRemove) - 1, nil
}
