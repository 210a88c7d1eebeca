package services

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Storage key names for the non-stream records. Stream records use the
// derived v<digits> keys, see StreamKey.
const (
	keyUsers   = "users"
	keyBadges  = "badges"
	keyOptions = "options"
	keyWidth   = "width"
)

func unmarshalRecord(raw []byte, key string, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode record %q: %w", key, err)
	}
	return nil
}
