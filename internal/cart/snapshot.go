package cart

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// snapshotVersion is bumped whenever the persisted layout changes shape.
// Decoding keeps a fallback for the previous layout so live sessions
// survive a deploy.
const snapshotVersion = 1

type snapshot struct {
	Version int        `json:"version"`
	Items   []LineItem `json:"items"`
}

// EncodeSnapshot serializes cart lines into the versioned wire form.
func EncodeSnapshot(items []LineItem) ([]byte, error) {
	if items == nil {
		items = []LineItem{}
	}
	payload, err := json.Marshal(snapshot{Version: snapshotVersion, Items: items})
	if err != nil {
		return nil, fmt.Errorf("encoding cart snapshot: %w", err)
	}
	return payload, nil
}

// DecodeSnapshot parses a persisted snapshot. It accepts the current
// versioned envelope and, as a legacy fallback, a bare array of lines.
// Anything else is a decode error; callers treat that as an empty cart.
func DecodeSnapshot(data []byte) ([]LineItem, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var legacy []LineItem
		if err := json.Unmarshal(trimmed, &legacy); err != nil {
			return nil, fmt.Errorf("decoding legacy cart snapshot: %w", err)
		}
		return legacy, nil
	}

	var snap snapshot
	if err := json.Unmarshal(trimmed, &snap); err != nil {
		return nil, fmt.Errorf("decoding cart snapshot: %w", err)
	}
	if snap.Version > snapshotVersion {
		return nil, fmt.Errorf("cart snapshot version %d is newer than supported %d", snap.Version, snapshotVersion)
	}
	return snap.Items, nil
}
