package bundle

import (
	"bytes"
	"fmt"

	"github.com/EspressoSystems/key-set/commit"
)

// verifierCommitmentTag is the domain tag under which verifier key set
// commitments are derived. It is part of the ledger format and must not
// change.
const verifierCommitmentTag = "VerifCRS Comm"

// Commit returns the commitment digest of the verifier key set for
// inclusion in ledger state. The digest is derived from the bundle's
// canonical bytes under a fixed domain tag, so identical bundle content
// commits identically across processes and restarts.
//
// Panics if the bundle cannot be serialized. Construction already
// guarantees every member serializes, so a failure here means the bundle
// is corrupt, not that the caller did something recoverable.
func (s *VerifierKeySet[O]) Commit() commit.Digest {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		panic(fmt.Sprintf("bundle: serialize verifier key set for commitment: %v", err))
	}
	return commit.NewBuilder(verifierCommitmentTag).VarSizeBytes(buf.Bytes()).Finalize()
}
