package storage

import (
	"errors"
	"fmt"
	"os"
	"sync"

	json "github.com/goccy/go-json"
	"go.uber.org/atomic"

	"github.com/rantstats/rantstats-extension/internal/providers"
	"github.com/rantstats/rantstats-extension/internal/storage/interfaces"
	"github.com/rantstats/rantstats-extension/internal/structures"
)

// DefaultQuotaBytes mirrors the quota of the browser storage area the cache
// originally lived in.
const DefaultQuotaBytes = 10 * 1024 * 1024

// ErrQuotaExceeded is returned by Set when the write would push byte usage
// past the configured quota. The write is discarded, the caller decides.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// AdapterInterface is the single durable key/value store every other
// component goes through. All records share one flat namespace. Writes are
// durable but not atomic across two keys.
type AdapterInterface interface {
	GetRaw(key string) ([]byte, bool)
	GetRecord(key string, out any) (bool, error)
	Set(key string, value any) error
	Remove(keys ...string) error
	GetAll() map[string][]byte
	BytesInUse() int
	QuotaBytes() int
	Load() error
	Flush() error
}

// snapshot is the on-disk envelope, versioned so later format changes can
// migrate old files in place.
type snapshot struct {
	Version int                        `json:"version"`
	Records map[string]json.RawMessage `json:"records"`
}

const snapshotVersion = 1

type FileAdapter struct {
	mu         sync.RWMutex
	records    map[string]json.RawMessage
	bytesInUse int
	dirty      atomic.Bool

	filePath   string
	quotaBytes int
	syncWrites bool
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileAdapter(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) AdapterInterface {
	quota := conf.Storage.QuotaBytes
	if quota <= 0 {
		quota = DefaultQuotaBytes
	}
	return &FileAdapter{
		records:    make(map[string]json.RawMessage),
		filePath:   conf.Storage.FilePath,
		quotaBytes: quota,
		syncWrites: conf.Storage.SyncWrites,
		compressor: compressor,
		logger:     logger,
	}
}

func (a *FileAdapter) GetRaw(key string) ([]byte, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	val, ok := a.records[key]
	return val, ok
}

func (a *FileAdapter) GetRecord(key string, out any) (bool, error) {
	val, ok := a.GetRaw(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(val, out); err != nil {
		return true, fmt.Errorf("decode record %q: %w", key, err)
	}
	return true, nil
}

func (a *FileAdapter) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode record %q: %w", key, err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	next := a.bytesInUse + len(key) + len(raw)
	if old, ok := a.records[key]; ok {
		next -= len(key) + len(old)
	}
	if next > a.quotaBytes {
		return fmt.Errorf("set %q (%d bytes): %w", key, len(raw), ErrQuotaExceeded)
	}

	a.records[key] = raw
	a.bytesInUse = next
	return a.commitLocked()
}

func (a *FileAdapter) Remove(keys ...string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	removed := false
	for _, key := range keys {
		if old, ok := a.records[key]; ok {
			a.bytesInUse -= len(key) + len(old)
			delete(a.records, key)
			removed = true
		}
	}
	if !removed {
		return nil
	}
	return a.commitLocked()
}

func (a *FileAdapter) GetAll() map[string][]byte {
	a.mu.RLock()
	defer a.mu.RUnlock()
	all := make(map[string][]byte, len(a.records))
	for k, v := range a.records {
		all[k] = v
	}
	return all
}

func (a *FileAdapter) BytesInUse() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.bytesInUse
}

func (a *FileAdapter) QuotaBytes() int {
	return a.quotaBytes
}

// commitLocked makes a mutation durable. With syncWrites the snapshot is
// rewritten before the mutation returns, otherwise the store is only marked
// dirty for the next scheduled Flush.
func (a *FileAdapter) commitLocked() error {
	if !a.syncWrites {
		a.dirty.Store(true)
		return nil
	}
	return a.persistLocked()
}

func (a *FileAdapter) Load() error {
	data, err := os.ReadFile(a.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressed, err := a.compressor.Decompress(data)
	if err != nil {
		return fmt.Errorf("decompress snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(decompressed, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = snap.Records
	if a.records == nil {
		a.records = make(map[string]json.RawMessage)
	}
	a.bytesInUse = 0
	for k, v := range a.records {
		a.bytesInUse += len(k) + len(v)
	}
	a.dirty.Store(false)
	return nil
}

func (a *FileAdapter) Flush() error {
	if !a.dirty.Load() {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.persistLocked()
}

func (a *FileAdapter) persistLocked() error {
	snap := snapshot{Version: snapshotVersion, Records: a.records}
	jsonData, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	data, err := a.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := a.filePath + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	if err = os.Rename(tmpFile, a.filePath); err != nil {
		return err
	}
	a.dirty.Store(false)
	return nil
}
