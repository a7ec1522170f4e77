package capkeys

import (
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
)

// FreezeProvingKey proves freeze transactions with a fixed number of
// inputs and outputs.
type FreezeProvingKey struct {
	numInputs  int
	numOutputs int
	pk         kzg.ProvingKey
}

// NewFreezeProvingKey carves the proving key for a freeze circuit of the
// given size out of the universal setup.
func NewFreezeProvingKey(srs *kzg.SRS, numInputs, numOutputs int) (*FreezeProvingKey, error) {
	if err := checkSize(numInputs, numOutputs); err != nil {
		return nil, err
	}
	pk, err := provingSegment(srs, numInputs, numOutputs)
	if err != nil {
		return nil, err
	}
	return &FreezeProvingKey{numInputs: numInputs, numOutputs: numOutputs, pk: pk}, nil
}

func (k *FreezeProvingKey) NumInputs() int  { return k.numInputs }
func (k *FreezeProvingKey) NumOutputs() int { return k.numOutputs }

func (k *FreezeProvingKey) WriteTo(w io.Writer) (int64, error) {
	n, err := writeShape(w, k.numInputs, k.numOutputs)
	if err != nil {
		return n, err
	}
	m, err := k.pk.WriteTo(w)
	return n + m, err
}

// DecodeFreezeProvingKey reads one key in WriteTo's layout.
func DecodeFreezeProvingKey(r io.Reader) (*FreezeProvingKey, error) {
	numInputs, numOutputs, _, err := readShape(r)
	if err != nil {
		return nil, fmt.Errorf("capkeys: freeze proving key size: %w", err)
	}
	var pk kzg.ProvingKey
	if _, err := pk.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("capkeys: freeze proving key material: %w", err)
	}
	return &FreezeProvingKey{numInputs: numInputs, numOutputs: numOutputs, pk: pk}, nil
}

// FreezeVerifyingKey verifies freeze transactions with a fixed number of
// inputs and outputs.
type FreezeVerifyingKey struct {
	numInputs  int
	numOutputs int
	vk         kzg.VerifyingKey
}

// NewFreezeVerifyingKey derives the verifying key for a freeze circuit of
// the given size from the universal setup. As with transfer keys, the
// curve material is the setup's single KZG verifying key; only the size
// differentiates keys.
func NewFreezeVerifyingKey(srs *kzg.SRS, numInputs, numOutputs int) (*FreezeVerifyingKey, error) {
	if err := checkSize(numInputs, numOutputs); err != nil {
		return nil, err
	}
	if srs == nil {
		return nil, fmt.Errorf("capkeys: nil SRS")
	}
	return &FreezeVerifyingKey{numInputs: numInputs, numOutputs: numOutputs, vk: srs.Vk}, nil
}

func (k *FreezeVerifyingKey) NumInputs() int  { return k.numInputs }
func (k *FreezeVerifyingKey) NumOutputs() int { return k.numOutputs }

func (k *FreezeVerifyingKey) WriteTo(w io.Writer) (int64, error) {
	n, err := writeShape(w, k.numInputs, k.numOutputs)
	if err != nil {
		return n, err
	}
	m, err := k.vk.WriteTo(w)
	return n + m, err
}

// DecodeFreezeVerifyingKey reads one key in WriteTo's layout.
func DecodeFreezeVerifyingKey(r io.Reader) (*FreezeVerifyingKey, error) {
	numInputs, numOutputs, _, err := readShape(r)
	if err != nil {
		return nil, fmt.Errorf("capkeys: freeze verifying key size: %w", err)
	}
	var vk kzg.VerifyingKey
	if _, err := vk.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("capkeys: freeze verifying key material: %w", err)
	}
	return &FreezeVerifyingKey{numInputs: numInputs, numOutputs: numOutputs, vk: vk}, nil
}
