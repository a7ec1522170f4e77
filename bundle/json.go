package bundle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/EspressoSystems/key-set/capkeys"
	"github.com/EspressoSystems/key-set/keyset"
)

// Self-describing form: the mint key as base64 canonical bytes, the two
// key sets in their ordered pair-array form.

type bundleJSON struct {
	Mint   []byte          `json:"mint"`
	Xfr    json.RawMessage `json:"xfr"`
	Freeze json.RawMessage `json:"freeze"`
}

func marshalBundle(mint io.WriterTo, xfr, freeze json.Marshaler) ([]byte, error) {
	var mintBuf bytes.Buffer
	if _, err := mint.WriteTo(&mintBuf); err != nil {
		return nil, fmt.Errorf("bundle: marshal mint key: %w", err)
	}
	xfrJSON, err := xfr.MarshalJSON()
	if err != nil {
		return nil, err
	}
	freezeJSON, err := freeze.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(bundleJSON{Mint: mintBuf.Bytes(), Xfr: xfrJSON, Freeze: freezeJSON})
}

// MarshalJSON encodes the bundle in its self-describing form.
func (s *ProverKeySet[O]) MarshalJSON() ([]byte, error) {
	return marshalBundle(s.Mint, s.Xfr, s.Freeze)
}

// UnmarshalJSON decodes a bundle from its self-describing form.
func (s *ProverKeySet[O]) UnmarshalJSON(data []byte) error {
	var raw bundleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("bundle: unmarshal prover key set: %w", err)
	}
	mint, err := capkeys.DecodeMintProvingKey(bytes.NewReader(raw.Mint))
	if err != nil {
		return fmt.Errorf("bundle: mint proving key: %w", err)
	}
	xfr, err := keyset.UnmarshalKeySetJSON[*capkeys.TransferProvingKey, O](raw.Xfr, capkeys.DecodeTransferProvingKey)
	if err != nil {
		return fmt.Errorf("bundle: transfer proving keys: %w", err)
	}
	freeze, err := keyset.UnmarshalKeySetJSON[*capkeys.FreezeProvingKey, O](raw.Freeze, capkeys.DecodeFreezeProvingKey)
	if err != nil {
		return fmt.Errorf("bundle: freeze proving keys: %w", err)
	}
	s.Mint, s.Xfr, s.Freeze = mint, xfr, freeze
	return nil
}

// MarshalJSON encodes the bundle in its self-describing form.
func (s *VerifierKeySet[O]) MarshalJSON() ([]byte, error) {
	return marshalBundle(s.Mint, s.Xfr, s.Freeze)
}

// UnmarshalJSON decodes a bundle from its self-describing form.
func (s *VerifierKeySet[O]) UnmarshalJSON(data []byte) error {
	var raw bundleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("bundle: unmarshal verifier key set: %w", err)
	}
	mint, err := capkeys.DecodeTransactionVerifyingKey(bytes.NewReader(raw.Mint))
	if err != nil {
		return fmt.Errorf("bundle: mint verifying key: %w", err)
	}
	xfr, err := keyset.UnmarshalKeySetJSON[*capkeys.TransactionVerifyingKey, O](raw.Xfr, capkeys.DecodeTransactionVerifyingKey)
	if err != nil {
		return fmt.Errorf("bundle: transfer verifying keys: %w", err)
	}
	freeze, err := keyset.UnmarshalKeySetJSON[*capkeys.TransactionVerifyingKey, O](raw.Freeze, capkeys.DecodeTransactionVerifyingKey)
	if err != nil {
		return fmt.Errorf("bundle: freeze verifying keys: %w", err)
	}
	s.Mint, s.Xfr, s.Freeze = mint, xfr, freeze
	return nil
}
