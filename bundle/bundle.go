// Package bundle groups the pre-generated keys a node loads at setup:
// one fixed-size mint key plus size-indexed transfer and freeze key sets,
// on the proving side for building transactions and on the verifying side
// for checking them. A bundle is built once and read-only afterward; its
// validity is just the conjunction of its members' invariants.
package bundle

import (
	"fmt"
	"io"

	"github.com/EspressoSystems/key-set/capkeys"
	"github.com/EspressoSystems/key-set/keyset"
)

// ProverKeySet holds the proving keys for every supported transaction
// kind, with the variable-size kinds indexed by size under the order O.
type ProverKeySet[O keyset.KeyOrder] struct {
	Mint   *capkeys.MintProvingKey
	Xfr    *keyset.KeySet[*capkeys.TransferProvingKey, O]
	Freeze *keyset.KeySet[*capkeys.FreezeProvingKey, O]
}

// WriteTo writes the bundle's canonical byte representation: mint key,
// then transfer set, then freeze set.
func (s *ProverKeySet[O]) WriteTo(w io.Writer) (int64, error) {
	n, err := s.Mint.WriteTo(w)
	if err != nil {
		return n, err
	}
	m, err := s.Xfr.WriteTo(w)
	n += m
	if err != nil {
		return n, err
	}
	m, err = s.Freeze.WriteTo(w)
	return n + m, err
}

// ReadProverKeySet decodes a bundle in WriteTo's layout.
func ReadProverKeySet[O keyset.KeyOrder](r io.Reader) (*ProverKeySet[O], error) {
	mint, err := capkeys.DecodeMintProvingKey(r)
	if err != nil {
		return nil, fmt.Errorf("bundle: mint proving key: %w", err)
	}
	xfr, err := keyset.ReadKeySet[*capkeys.TransferProvingKey, O](r, capkeys.DecodeTransferProvingKey)
	if err != nil {
		return nil, fmt.Errorf("bundle: transfer proving keys: %w", err)
	}
	freeze, err := keyset.ReadKeySet[*capkeys.FreezeProvingKey, O](r, capkeys.DecodeFreezeProvingKey)
	if err != nil {
		return nil, fmt.Errorf("bundle: freeze proving keys: %w", err)
	}
	return &ProverKeySet[O]{Mint: mint, Xfr: xfr, Freeze: freeze}, nil
}

// VerifierKeySet holds the verifying keys for every supported transaction
// kind, with the variable-size kinds indexed by size under the order O.
type VerifierKeySet[O keyset.KeyOrder] struct {
	Mint   *capkeys.TransactionVerifyingKey
	Xfr    *keyset.KeySet[*capkeys.TransactionVerifyingKey, O]
	Freeze *keyset.KeySet[*capkeys.TransactionVerifyingKey, O]
}

// WriteTo writes the bundle's canonical byte representation: mint key,
// then transfer set, then freeze set.
func (s *VerifierKeySet[O]) WriteTo(w io.Writer) (int64, error) {
	n, err := s.Mint.WriteTo(w)
	if err != nil {
		return n, err
	}
	m, err := s.Xfr.WriteTo(w)
	n += m
	if err != nil {
		return n, err
	}
	m, err = s.Freeze.WriteTo(w)
	return n + m, err
}

// ReadVerifierKeySet decodes a bundle in WriteTo's layout.
func ReadVerifierKeySet[O keyset.KeyOrder](r io.Reader) (*VerifierKeySet[O], error) {
	mint, err := capkeys.DecodeTransactionVerifyingKey(r)
	if err != nil {
		return nil, fmt.Errorf("bundle: mint verifying key: %w", err)
	}
	xfr, err := keyset.ReadKeySet[*capkeys.TransactionVerifyingKey, O](r, capkeys.DecodeTransactionVerifyingKey)
	if err != nil {
		return nil, fmt.Errorf("bundle: transfer verifying keys: %w", err)
	}
	freeze, err := keyset.ReadKeySet[*capkeys.TransactionVerifyingKey, O](r, capkeys.DecodeTransactionVerifyingKey)
	if err != nil {
		return nil, fmt.Errorf("bundle: freeze verifying keys: %w", err)
	}
	return &VerifierKeySet[O]{Mint: mint, Xfr: xfr, Freeze: freeze}, nil
}
