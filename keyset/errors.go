package keyset

import (
	"errors"
	"fmt"
)

// ErrNoKeys reports that a key set was constructed from an empty batch.
//
// Construction requires at least one key; there is no such thing as an
// empty KeySet. Callers should test with errors.Is.
var ErrNoKeys = errors.New("keyset: no keys")

// DuplicateKeysError reports that two keys in a construction batch share
// the same (inputs, outputs) size.
//
// Message strings are intended for humans; callers should use errors.As
// and branch on the size fields.
type DuplicateKeysError struct {
	NumInputs  int
	NumOutputs int
}

func (e *DuplicateKeysError) Error() string {
	return fmt.Sprintf("keyset: duplicate keys for size (%d, %d)", e.NumInputs, e.NumOutputs)
}

// NoFitError reports that no stored key covers a requested size in both
// dimensions. MaxInputs/MaxOutputs carry the set's largest supported size
// so the caller can decide whether to fail or provision a larger key.
type NoFitError struct {
	MaxInputs  int
	MaxOutputs int
}

func (e *NoFitError) Error() string {
	return fmt.Sprintf("keyset: no key fits; largest supported size is (%d, %d)", e.MaxInputs, e.MaxOutputs)
}
