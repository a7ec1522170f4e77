// Package cidutil derives content identifiers for canonical key-set
// artifacts, so a ledger or storage layer can reference a key bundle by
// CID instead of carrying its bytes.
package cidutil

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/EspressoSystems/key-set/commit"
)

// CIDv1RawSHA256 returns a CIDv1 string using the "raw" multicodec and a
// sha2-256 multihash over data, typically a bundle's canonical bytes.
func CIDv1RawSHA256(data []byte) string {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256 and -1
		// length, this should be unreachable.
		return ""
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}

// CIDForCommitment wraps an already-derived commitment digest as a CIDv1
// (raw codec, blake3 multihash) without rehashing it.
func CIDForCommitment(d commit.Digest) (cid.Cid, error) {
	mh, err := multihash.Encode(d[:], multihash.BLAKE3)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, mh), nil
}
