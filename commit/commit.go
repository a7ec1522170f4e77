// Package commit derives fixed-size commitments over canonical byte
// strings, separated by a caller-chosen domain tag. Commitments are
// deterministic: the same tag and input bytes always produce the same
// digest, with no salt and no randomness, so they are safe to persist in
// ledger state and compare across processes.
package commit

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// Size is the digest length in bytes.
const Size = 32

// Digest is a fixed-size commitment value.
type Digest [Size]byte

// String returns the digest as lowercase hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Builder accumulates length-framed fields into a commitment. Every
// field, including the domain tag, is prefixed with its byte length so
// that distinct field splits of the same concatenated bytes commit to
// distinct values.
type Builder struct {
	h *blake3.Hasher
}

// NewBuilder starts a commitment under the given domain tag.
func NewBuilder(tag string) *Builder {
	b := &Builder{h: blake3.New()}
	b.writeFrame([]byte(tag))
	return b
}

// VarSizeBytes commits a variable-length byte field.
func (b *Builder) VarSizeBytes(p []byte) *Builder {
	b.writeFrame(p)
	return b
}

// FixedBytes commits a byte field whose length is fixed by the domain
// tag's layout, so no length frame is written. Fields whose length can
// vary must use VarSizeBytes instead.
func (b *Builder) FixedBytes(p []byte) *Builder {
	_, _ = b.h.Write(p)
	return b
}

// Uint64 commits a fixed-width integer field.
func (b *Builder) Uint64(v uint64) *Builder {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	b.writeFrame(buf[:])
	return b
}

// Finalize returns the commitment digest. The builder must not be reused
// afterward.
func (b *Builder) Finalize() Digest {
	var d Digest
	copy(d[:], b.h.Sum(nil))
	return d
}

func (b *Builder) writeFrame(p []byte) {
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(p)))
	// blake3.Hasher.Write never returns an error.
	_, _ = b.h.Write(length[:])
	_, _ = b.h.Write(p)
}

// DigestFor returns the digest of message under the named algorithm, for
// surfaces that interoperate with consumers expecting a specific hash.
// Supported: sha256, sha3-256, blake3.
func DigestFor(hashAlg string, message []byte) ([]byte, error) {
	switch hashAlg {
	case "sha256":
		s := sha256.Sum256(message)
		return s[:], nil
	case "sha3-256":
		s := sha3.Sum256(message)
		return s[:], nil
	case "blake3":
		s := blake3.Sum256(message)
		return s[:], nil
	default:
		return nil, fmt.Errorf("commit: unsupported hash algorithm %q", hashAlg)
	}
}
