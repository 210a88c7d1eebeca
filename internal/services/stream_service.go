package services

import (
	"regexp"
	"sync"

	"github.com/rantstats/rantstats-extension/internal/models"
	"github.com/rantstats/rantstats-extension/internal/storage"
)

// streamKeyPattern matches keys holding stream records. Video ids are
// opaque digit strings, every other record type lives under a non-matching
// key (users, badges, options, width).
var streamKeyPattern = regexp.MustCompile(`^v\d+$`)

// StreamKey derives the storage key for a video id.
func StreamKey(videoID string) string {
	return "v" + videoID
}

type StreamServiceInterface interface {
	GetStream(videoID string) (*models.CachedStream, error)
	GetAllStreams() ([]*models.CachedStream, error)
	GetAllVideoIDs() ([]string, error)
	GetAllCachedMessages(videoID string) ([]*models.CachedRant, error)
	GetAllCachedMessageIDs(videoID string) ([]string, error)
	UpsertStream(videoID string, update *models.StreamUpdate) error
	CacheStream(update *models.StreamUpdate) error
	CacheMessage(videoID string, rant *models.RantUpdate) error
	UpdateCachedMessage(videoID, messageID string, update *models.RantUpdate) error
	RemoveStream(videoID string) error
	StreamCount() int
}

type StreamService struct {
	// mu serializes the read-modify-merge-write cycle in UpsertStream.
	// The adapter has no compare-and-swap, so without this two concurrent
	// upserts into the same stream could lose header fields.
	mu      sync.Mutex
	adapter storage.AdapterInterface
}

func NewStreamService(adapter storage.AdapterInterface) StreamServiceInterface {
	return &StreamService{adapter: adapter}
}

func (ss *StreamService) GetStream(videoID string) (*models.CachedStream, error) {
	var stream models.CachedStream
	found, err := ss.adapter.GetRecord(StreamKey(videoID), &stream)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &stream, nil
}

func (ss *StreamService) GetAllStreams() ([]*models.CachedStream, error) {
	all := ss.adapter.GetAll()
	streams := make([]*models.CachedStream, 0)
	for key, raw := range all {
		if !streamKeyPattern.MatchString(key) {
			continue
		}
		var stream models.CachedStream
		if err := unmarshalRecord(raw, key, &stream); err != nil {
			return nil, err
		}
		streams = append(streams, &stream)
	}
	return streams, nil
}

func (ss *StreamService) GetAllVideoIDs() ([]string, error) {
	streams, err := ss.GetAllStreams()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(streams))
	for _, stream := range streams {
		ids = append(ids, stream.VideoID)
	}
	return ids, nil
}

func (ss *StreamService) GetAllCachedMessages(videoID string) ([]*models.CachedRant, error) {
	stream, err := ss.GetStream(videoID)
	if err != nil {
		return nil, err
	}
	if stream == nil {
		return []*models.CachedRant{}, nil
	}
	return stream.Rants, nil
}

func (ss *StreamService) GetAllCachedMessageIDs(videoID string) ([]string, error) {
	rants, err := ss.GetAllCachedMessages(videoID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rants))
	for _, rant := range rants {
		ids = append(ids, rant.ID)
	}
	return ids, nil
}

// UpsertStream reads the stored record, merges the update into it and
// writes the whole merged record back in one set. A missing record is
// created from the update directly, which lets a single rant arrive before
// the stream header does.
func (ss *StreamService) UpsertStream(videoID string, update *models.StreamUpdate) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	stream, err := ss.GetStream(videoID)
	if err != nil {
		return err
	}
	if stream == nil {
		stream = models.NewStreamFromUpdate(update)
		stream.VideoID = videoID
	} else {
		stream.Apply(update)
	}
	return ss.saveStream(stream)
}

// saveStream overwrites the whole record at its key. Only called under mu
// after a merge.
func (ss *StreamService) saveStream(stream *models.CachedStream) error {
	return ss.adapter.Set(StreamKey(stream.VideoID), stream)
}

func (ss *StreamService) CacheStream(update *models.StreamUpdate) error {
	return ss.UpsertStream(update.VideoID, update)
}

func (ss *StreamService) CacheMessage(videoID string, rant *models.RantUpdate) error {
	return ss.UpsertStream(videoID, &models.StreamUpdate{
		VideoID: videoID,
		Rants:   []*models.RantUpdate{rant},
	})
}

func (ss *StreamService) UpdateCachedMessage(videoID, messageID string, update *models.RantUpdate) error {
	patched := *update
	patched.ID = messageID
	return ss.CacheMessage(videoID, &patched)
}

func (ss *StreamService) RemoveStream(videoID string) error {
	return ss.adapter.Remove(StreamKey(videoID))
}

func (ss *StreamService) StreamCount() int {
	count := 0
	for key := range ss.adapter.GetAll() {
		if streamKeyPattern.MatchString(key) {
			count++
		}
	}
	return count
}
