package keyset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// JSON and other self-describing encodings restrict map keys to strings,
// so a KeySet serializes as an explicit ordered array of (sort key, key)
// pairs rather than a keyed map. Key values are carried as base64 of
// their canonical bytes.

type jsonEntry struct {
	SortKey SortKey `json:"sortKey"`
	Key     []byte  `json:"key"`
}

// MarshalJSON encodes the set as an array of (sort key, key) pairs in
// ascending sort-key order.
func (s *KeySet[K, O]) MarshalJSON() ([]byte, error) {
	out := make([]jsonEntry, 0, len(s.entries))
	for _, e := range s.entries {
		var buf bytes.Buffer
		if _, err := e.key.WriteTo(&buf); err != nil {
			return nil, fmt.Errorf("keyset: marshal key for sort key %v: %w", e.sortKey, err)
		}
		out = append(out, jsonEntry{SortKey: e.sortKey, Key: buf.Bytes()})
	}
	return json.Marshal(out)
}

// UnmarshalKeySetJSON decodes a KeySet from the pair-array form produced
// by MarshalJSON, applying the same invariant checks as ReadKeySet.
func UnmarshalKeySetJSON[K SizedKey, O KeyOrder](data []byte, decode func(io.Reader) (K, error)) (*KeySet[K, O], error) {
	var raw []jsonEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keyset: unmarshal pairs: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("keyset: decode: %w", ErrNoKeys)
	}
	var ord O
	entries := make([]entry[K], 0, len(raw))
	for i, je := range raw {
		key, err := decode(bytes.NewReader(je.Key))
		if err != nil {
			return nil, fmt.Errorf("keyset: decode key %d: %w", i, err)
		}
		if got := ord.SortKey(key.NumInputs(), key.NumOutputs()); got != je.SortKey {
			return nil, fmt.Errorf("keyset: entry %d: sort key %v does not match key size (%d, %d)",
				i, je.SortKey, key.NumInputs(), key.NumOutputs())
		}
		if len(entries) > 0 && entries[len(entries)-1].sortKey.Compare(je.SortKey) >= 0 {
			return nil, fmt.Errorf("keyset: entry %d: sort keys not strictly ascending", i)
		}
		entries = append(entries, entry[K]{sortKey: je.SortKey, key: key})
	}
	return &KeySet[K, O]{entries: entries}, nil
}
