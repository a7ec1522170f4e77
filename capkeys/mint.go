package capkeys

import (
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
)

// The mint circuit's size is pinned by the protocol: one input (the fee
// record) and two outputs (the minted record and the fee change),
// whatever the key material says. There is exactly one mint key per
// setup, so mint keys never live inside a size-indexed set.

// MintProvingKey proves mint transactions.
type MintProvingKey struct {
	pk kzg.ProvingKey
}

// NewMintProvingKey carves the mint proving key out of the universal
// setup.
func NewMintProvingKey(srs *kzg.SRS) (*MintProvingKey, error) {
	pk, err := provingSegment(srs, 1, 2)
	if err != nil {
		return nil, err
	}
	return &MintProvingKey{pk: pk}, nil
}

func (k *MintProvingKey) NumInputs() int  { return 1 }
func (k *MintProvingKey) NumOutputs() int { return 2 }

func (k *MintProvingKey) WriteTo(w io.Writer) (int64, error) {
	return k.pk.WriteTo(w)
}

// DecodeMintProvingKey reads one key in WriteTo's layout.
func DecodeMintProvingKey(r io.Reader) (*MintProvingKey, error) {
	var pk kzg.ProvingKey
	if _, err := pk.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("capkeys: mint proving key material: %w", err)
	}
	return &MintProvingKey{pk: pk}, nil
}

// MintVerifyingKey verifies mint transactions.
type MintVerifyingKey struct {
	vk kzg.VerifyingKey
}

// NewMintVerifyingKey derives the mint verifying key from the universal
// setup.
func NewMintVerifyingKey(srs *kzg.SRS) (*MintVerifyingKey, error) {
	if srs == nil {
		return nil, fmt.Errorf("capkeys: nil SRS")
	}
	return &MintVerifyingKey{vk: srs.Vk}, nil
}

func (k *MintVerifyingKey) NumInputs() int  { return 1 }
func (k *MintVerifyingKey) NumOutputs() int { return 2 }

func (k *MintVerifyingKey) WriteTo(w io.Writer) (int64, error) {
	return k.vk.WriteTo(w)
}

// DecodeMintVerifyingKey reads one key in WriteTo's layout.
func DecodeMintVerifyingKey(r io.Reader) (*MintVerifyingKey, error) {
	var vk kzg.VerifyingKey
	if _, err := vk.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("capkeys: mint verifying key material: %w", err)
	}
	return &MintVerifyingKey{vk: vk}, nil
}
