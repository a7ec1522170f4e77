// Package capkeys provides the concrete proving and verifying key types
// indexed by package keyset: transfer and freeze keys whose circuit size
// varies with the number of transaction inputs and outputs, and mint keys
// whose circuit size is fixed by the protocol.
//
// Key material is a segment of a universal BLS12-381 KZG setup. Deriving
// the setup itself (the trusted-setup ceremony) is out of scope; callers
// supply an SRS and keys are carved from it.
package capkeys

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
)

// setupSize returns the number of setup points a circuit of the given
// size consumes: one gate column per input and output plus wiring
// overhead, rounded up to a power of two for the evaluation domain.
func setupSize(numInputs, numOutputs int) int {
	return int(ecc.NextPowerOfTwo(uint64(numInputs + numOutputs + 2)))
}

func checkSize(numInputs, numOutputs int) error {
	if numInputs < 0 || numOutputs < 0 {
		return fmt.Errorf("capkeys: negative size (%d, %d)", numInputs, numOutputs)
	}
	return nil
}

// provingSegment copies the setup points a circuit of the given size
// needs out of the universal setup.
func provingSegment(srs *kzg.SRS, numInputs, numOutputs int) (kzg.ProvingKey, error) {
	if srs == nil {
		return kzg.ProvingKey{}, fmt.Errorf("capkeys: nil SRS")
	}
	n := setupSize(numInputs, numOutputs)
	if len(srs.Pk.G1) < n {
		return kzg.ProvingKey{}, fmt.Errorf("capkeys: setup holds %d points, circuit size (%d, %d) needs %d",
			len(srs.Pk.G1), numInputs, numOutputs, n)
	}
	seg := make([]bls12381.G1Affine, n)
	copy(seg, srs.Pk.G1[:n])
	return kzg.ProvingKey{G1: seg}, nil
}

func writeShape(w io.Writer, numInputs, numOutputs int) (int64, error) {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[0:8], uint64(numInputs))
	binary.BigEndian.PutUint64(buf[8:16], uint64(numOutputs))
	n, err := w.Write(buf[:])
	return int64(n), err
}

func readShape(r io.Reader) (numInputs, numOutputs int, n int64, err error) {
	var buf [16]byte
	m, err := io.ReadFull(r, buf[:])
	if err != nil {
		return 0, 0, int64(m), err
	}
	return int(binary.BigEndian.Uint64(buf[0:8])), int(binary.BigEndian.Uint64(buf[8:16])), int64(m), nil
}
