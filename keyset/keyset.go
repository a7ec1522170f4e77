// Package keyset indexes fixed-circuit proving and verifying keys by the
// transaction size they support, a pair (number of inputs, number of
// outputs). A KeySet is built once at setup time from a batch of
// pre-generated keys and is read-only afterward, so it can be shared
// freely across concurrent readers without locking.
package keyset

import (
	"io"
	"iter"
	"slices"
)

// SizedKey is any key that reports the transaction size it supports and
// can write its canonical byte representation.
type SizedKey interface {
	NumInputs() int
	NumOutputs() int
	io.WriterTo
}

type entry[K SizedKey] struct {
	sortKey SortKey
	key     K
}

// KeySet is an ordered collection of keys, unique by size under the order
// O. The set owns its keys; lookups return references into the set.
type KeySet[K SizedKey, O KeyOrder] struct {
	entries []entry[K]
}

// New builds a KeySet from keys, which may arrive in any order. keys must
// be non-empty and must not contain two keys of the same size; otherwise
// ErrNoKeys or a *DuplicateKeysError is returned and no set is produced.
func New[K SizedKey, O KeyOrder](keys []K) (*KeySet[K, O], error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	var ord O
	entries := make([]entry[K], 0, len(keys))
	for _, key := range keys {
		entries = append(entries, entry[K]{
			sortKey: ord.SortKey(key.NumInputs(), key.NumOutputs()),
			key:     key,
		})
	}
	slices.SortFunc(entries, func(a, b entry[K]) int {
		return a.sortKey.Compare(b.sortKey)
	})
	for i := 1; i < len(entries); i++ {
		if entries[i].sortKey == entries[i-1].sortKey {
			key := entries[i].key
			return nil, &DuplicateKeysError{
				NumInputs:  key.NumInputs(),
				NumOutputs: key.NumOutputs(),
			}
		}
	}
	return &KeySet[K, O]{entries: entries}, nil
}

// Len returns the number of keys in the set.
func (s *KeySet[K, O]) Len() int {
	return len(s.entries)
}

// MaxSize returns the largest size supported by this set, i.e. the size
// of the key with the greatest sort key.
//
// Panics if the set holds no keys. New requires at least one key, so this
// can only happen on a corrupt set, for example one deserialized from a
// damaged artifact.
func (s *KeySet[K, O]) MaxSize() (numInputs, numOutputs int) {
	last := s.entries[len(s.entries)-1].key
	return last.NumInputs(), last.NumOutputs()
}

// ExactFitKey returns the key whose size is exactly (numInputs,
// numOutputs), or false if the set holds no key of that size.
func (s *KeySet[K, O]) ExactFitKey(numInputs, numOutputs int) (K, bool) {
	var ord O
	i, found := s.search(ord.SortKey(numInputs, numOutputs))
	if !found {
		var zero K
		return zero, false
	}
	return s.entries[i].key, true
}

// BestFitKey returns the smallest stored key that covers at least
// (numInputs, numOutputs) in both dimensions, along with that key's size.
// "Smallest" is minimal under the set's sort order among covering keys.
// If no stored key covers the request, the returned *NoFitError carries
// MaxSize as a hint.
func (s *KeySet[K, O]) BestFitKey(numInputs, numOutputs int) (matchedInputs, matchedOutputs int, key K, err error) {
	var ord O
	start, _ := s.search(ord.SortKey(numInputs, numOutputs))
	// Entries at or after start are not guaranteed to cover the request in
	// both dimensions. Under OrderByInputs, everything in the range has
	// inputs >= numInputs, but not necessarily outputs >= numOutputs: for
	// example (3, 1) sorts after (2, 2) even though 1 < 2. So the range is
	// only a superset of the candidates, and each entry must be re-checked
	// before it can be returned. Nothing before start can cover the
	// request, since its primary axis is too small.
	for _, e := range s.entries[start:] {
		keyInputs := e.key.NumInputs()
		keyOutputs := e.key.NumOutputs()
		if keyInputs >= numInputs && keyOutputs >= numOutputs {
			return keyInputs, keyOutputs, e.key, nil
		}
	}
	maxInputs, maxOutputs := s.MaxSize()
	var zero K
	return 0, 0, zero, &NoFitError{MaxInputs: maxInputs, MaxOutputs: maxOutputs}
}

// Iter yields the keys in ascending sort-key order. The sequence is
// restartable; each range starts a fresh traversal.
func (s *KeySet[K, O]) Iter() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range s.entries {
			if !yield(e.key) {
				return
			}
		}
	}
}

// search returns the position of target in the entry slice, or the
// position where it would be inserted.
func (s *KeySet[K, O]) search(target SortKey) (int, bool) {
	return slices.BinarySearchFunc(s.entries, target, func(e entry[K], t SortKey) int {
		return e.sortKey.Compare(t)
	})
}
