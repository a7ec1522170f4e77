package capkeys

import (
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
)

// TransferProvingKey proves transfer transactions with a fixed number of
// inputs and outputs.
type TransferProvingKey struct {
	numInputs  int
	numOutputs int
	pk         kzg.ProvingKey
}

// NewTransferProvingKey carves the proving key for a transfer circuit of
// the given size out of the universal setup.
func NewTransferProvingKey(srs *kzg.SRS, numInputs, numOutputs int) (*TransferProvingKey, error) {
	if err := checkSize(numInputs, numOutputs); err != nil {
		return nil, err
	}
	pk, err := provingSegment(srs, numInputs, numOutputs)
	if err != nil {
		return nil, err
	}
	return &TransferProvingKey{numInputs: numInputs, numOutputs: numOutputs, pk: pk}, nil
}

func (k *TransferProvingKey) NumInputs() int  { return k.numInputs }
func (k *TransferProvingKey) NumOutputs() int { return k.numOutputs }

// WriteTo writes the key's canonical byte representation: the size as two
// big-endian uint64s, then the setup segment in gnark-crypto's canonical
// encoding.
func (k *TransferProvingKey) WriteTo(w io.Writer) (int64, error) {
	n, err := writeShape(w, k.numInputs, k.numOutputs)
	if err != nil {
		return n, err
	}
	m, err := k.pk.WriteTo(w)
	return n + m, err
}

// DecodeTransferProvingKey reads one key in WriteTo's layout.
func DecodeTransferProvingKey(r io.Reader) (*TransferProvingKey, error) {
	numInputs, numOutputs, _, err := readShape(r)
	if err != nil {
		return nil, fmt.Errorf("capkeys: transfer proving key size: %w", err)
	}
	var pk kzg.ProvingKey
	if _, err := pk.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("capkeys: transfer proving key material: %w", err)
	}
	return &TransferProvingKey{numInputs: numInputs, numOutputs: numOutputs, pk: pk}, nil
}

// TransferVerifyingKey verifies transfer transactions with a fixed number
// of inputs and outputs.
type TransferVerifyingKey struct {
	numInputs  int
	numOutputs int
	vk         kzg.VerifyingKey
}

// NewTransferVerifyingKey derives the verifying key for a transfer
// circuit of the given size from the universal setup. The curve material
// is the setup's single KZG verifying key; producing circuit-specific
// verifying keys is the key generator's job, so here only the size
// differentiates keys.
func NewTransferVerifyingKey(srs *kzg.SRS, numInputs, numOutputs int) (*TransferVerifyingKey, error) {
	if err := checkSize(numInputs, numOutputs); err != nil {
		return nil, err
	}
	if srs == nil {
		return nil, fmt.Errorf("capkeys: nil SRS")
	}
	return &TransferVerifyingKey{numInputs: numInputs, numOutputs: numOutputs, vk: srs.Vk}, nil
}

func (k *TransferVerifyingKey) NumInputs() int  { return k.numInputs }
func (k *TransferVerifyingKey) NumOutputs() int { return k.numOutputs }

func (k *TransferVerifyingKey) WriteTo(w io.Writer) (int64, error) {
	n, err := writeShape(w, k.numInputs, k.numOutputs)
	if err != nil {
		return n, err
	}
	m, err := k.vk.WriteTo(w)
	return n + m, err
}

// DecodeTransferVerifyingKey reads one key in WriteTo's layout.
func DecodeTransferVerifyingKey(r io.Reader) (*TransferVerifyingKey, error) {
	numInputs, numOutputs, _, err := readShape(r)
	if err != nil {
		return nil, fmt.Errorf("capkeys: transfer verifying key size: %w", err)
	}
	var vk kzg.VerifyingKey
	if _, err := vk.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("capkeys: transfer verifying key material: %w", err)
	}
	return &TransferVerifyingKey{numInputs: numInputs, numOutputs: numOutputs, vk: vk}, nil
}
