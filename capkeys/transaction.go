package capkeys

import (
	"fmt"
	"io"
)

type vkTag uint8

const (
	tagTransfer vkTag = iota + 1
	tagFreeze
	tagMint
)

// TransactionVerifyingKey is the verifying key for any transaction kind:
// exactly one of the transfer, freeze, or mint variants is set. The
// variant is fixed at construction.
type TransactionVerifyingKey struct {
	tag      vkTag
	transfer *TransferVerifyingKey
	freeze   *FreezeVerifyingKey
	mint     *MintVerifyingKey
}

// ForTransfer wraps a transfer verifying key.
func ForTransfer(k *TransferVerifyingKey) *TransactionVerifyingKey {
	return &TransactionVerifyingKey{tag: tagTransfer, transfer: k}
}

// ForFreeze wraps a freeze verifying key.
func ForFreeze(k *FreezeVerifyingKey) *TransactionVerifyingKey {
	return &TransactionVerifyingKey{tag: tagFreeze, freeze: k}
}

// ForMint wraps a mint verifying key.
func ForMint(k *MintVerifyingKey) *TransactionVerifyingKey {
	return &TransactionVerifyingKey{tag: tagMint, mint: k}
}

// Transfer returns the transfer variant, if that is what this key is.
func (k *TransactionVerifyingKey) Transfer() (*TransferVerifyingKey, bool) {
	return k.transfer, k.tag == tagTransfer
}

// Freeze returns the freeze variant, if that is what this key is.
func (k *TransactionVerifyingKey) Freeze() (*FreezeVerifyingKey, bool) {
	return k.freeze, k.tag == tagFreeze
}

// Mint returns the mint variant, if that is what this key is.
func (k *TransactionVerifyingKey) Mint() (*MintVerifyingKey, bool) {
	return k.mint, k.tag == tagMint
}

func (k *TransactionVerifyingKey) NumInputs() int {
	switch k.tag {
	case tagTransfer:
		return k.transfer.NumInputs()
	case tagFreeze:
		return k.freeze.NumInputs()
	case tagMint:
		// Pinned by the protocol, never derived from the key material.
		return 1
	default:
		panic(fmt.Sprintf("capkeys: invalid verifying key tag %d", k.tag))
	}
}

func (k *TransactionVerifyingKey) NumOutputs() int {
	switch k.tag {
	case tagTransfer:
		return k.transfer.NumOutputs()
	case tagFreeze:
		return k.freeze.NumOutputs()
	case tagMint:
		// Pinned by the protocol, never derived from the key material.
		return 2
	default:
		panic(fmt.Sprintf("capkeys: invalid verifying key tag %d", k.tag))
	}
}

// WriteTo writes a one-byte variant tag followed by the variant's
// canonical bytes.
func (k *TransactionVerifyingKey) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write([]byte{byte(k.tag)})
	if err != nil {
		return int64(n), err
	}
	var m int64
	switch k.tag {
	case tagTransfer:
		m, err = k.transfer.WriteTo(w)
	case tagFreeze:
		m, err = k.freeze.WriteTo(w)
	case tagMint:
		m, err = k.mint.WriteTo(w)
	default:
		return int64(n), fmt.Errorf("capkeys: invalid verifying key tag %d", k.tag)
	}
	return int64(n) + m, err
}

// DecodeTransactionVerifyingKey reads one key in WriteTo's layout.
func DecodeTransactionVerifyingKey(r io.Reader) (*TransactionVerifyingKey, error) {
	var tag [1]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return nil, fmt.Errorf("capkeys: verifying key tag: %w", err)
	}
	switch vkTag(tag[0]) {
	case tagTransfer:
		k, err := DecodeTransferVerifyingKey(r)
		if err != nil {
			return nil, err
		}
		return ForTransfer(k), nil
	case tagFreeze:
		k, err := DecodeFreezeVerifyingKey(r)
		if err != nil {
			return nil, err
		}
		return ForFreeze(k), nil
	case tagMint:
		k, err := DecodeMintVerifyingKey(r)
		if err != nil {
			return nil, err
		}
		return ForMint(k), nil
	default:
		return nil, fmt.Errorf("capkeys: unknown verifying key tag %d", tag[0])
	}
}
