package keyset

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Canonical layout: a uint64 entry count, then the entries in ascending
// sort-key order, each as (sort key, key bytes). The sorted sequence, not
// an unordered map, so that decode followed by re-encode reproduces the
// same bytes and the same downstream commitment.

// WriteTo writes the set's canonical byte representation.
func (s *KeySet[K, O]) WriteTo(w io.Writer) (int64, error) {
	var n int64
	m, err := writeUint64(w, uint64(len(s.entries)))
	n += m
	if err != nil {
		return n, err
	}
	for _, e := range s.entries {
		m, err = writeSortKey(w, e.sortKey)
		n += m
		if err != nil {
			return n, err
		}
		m, err = e.key.WriteTo(w)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// ReadKeySet decodes a KeySet from its canonical byte representation.
// decode reads one key value from the stream.
//
// The encoded entries are validated against the set invariants: strictly
// ascending sort keys, and each sort key agreeing with its key's size
// under O. Violations mean the input did not come from WriteTo and are
// rejected rather than producing a corrupt set.
func ReadKeySet[K SizedKey, O KeyOrder](r io.Reader, decode func(io.Reader) (K, error)) (*KeySet[K, O], error) {
	count, err := readUint64(r)
	if err != nil {
		return nil, fmt.Errorf("keyset: read count: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("keyset: decode: %w", ErrNoKeys)
	}
	var ord O
	// count is untrusted; cap the preallocation so a hostile prefix cannot
	// demand an absurd slice before a single entry has been validated. A
	// short stream fails below with a read error instead.
	entries := make([]entry[K], 0, min(count, 1024))
	for i := uint64(0); i < count; i++ {
		sk, err := readSortKey(r)
		if err != nil {
			return nil, fmt.Errorf("keyset: read sort key %d: %w", i, err)
		}
		key, err := decode(r)
		if err != nil {
			return nil, fmt.Errorf("keyset: read key %d: %w", i, err)
		}
		if got := ord.SortKey(key.NumInputs(), key.NumOutputs()); got != sk {
			return nil, fmt.Errorf("keyset: entry %d: sort key %v does not match key size (%d, %d)",
				i, sk, key.NumInputs(), key.NumOutputs())
		}
		if len(entries) > 0 && entries[len(entries)-1].sortKey.Compare(sk) >= 0 {
			return nil, fmt.Errorf("keyset: entry %d: sort keys not strictly ascending", i)
		}
		entries = append(entries, entry[K]{sortKey: sk, key: key})
	}
	return &KeySet[K, O]{entries: entries}, nil
}

func writeSortKey(w io.Writer, sk SortKey) (int64, error) {
	n, err := writeUint64(w, uint64(sk.Primary))
	if err != nil {
		return n, err
	}
	m, err := writeUint64(w, uint64(sk.Secondary))
	return n + m, err
}

func readSortKey(r io.Reader) (SortKey, error) {
	primary, err := readUint64(r)
	if err != nil {
		return SortKey{}, err
	}
	secondary, err := readUint64(r)
	if err != nil {
		return SortKey{}, err
	}
	return SortKey{Primary: int(primary), Secondary: int(secondary)}, nil
}

func writeUint64(w io.Writer, v uint64) (int64, error) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	n, err := w.Write(buf[:])
	return int64(n), err
}

func readUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}
