// Package attest lets a setup operator vouch for a verifier key bundle by
// signing its commitment digest. Consumers that load pre-generated keys
// from a setup artifact can check the attestation against the operator's
// published key before trusting the bundle.
//
// Operator keys and attestations travel as "alg:base64" strings.
// Supported algorithms: ed25519 and dilithium3 (post-quantum).
package attest

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cloudflare/circl/sign/dilithium/mode3"
	"golang.org/x/crypto/sha3"

	"github.com/EspressoSystems/key-set/commit"
)

const (
	AlgEd25519    = "ed25519"
	AlgDilithium3 = "dilithium3"
)

// OperatorKeyEd25519 returns the operator key string for an ed25519
// public key.
func OperatorKeyEd25519(pub ed25519.PublicKey) string {
	return AlgEd25519 + ":" + base64.StdEncoding.EncodeToString(pub)
}

// OperatorKeyDilithium3 returns the operator key string for a dilithium3
// public key.
func OperatorKeyDilithium3(pub *mode3.PublicKey) (string, error) {
	if pub == nil {
		return "", errors.New("attest: missing public key")
	}
	raw, err := pub.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("attest: marshal public key: %w", err)
	}
	return AlgDilithium3 + ":" + base64.StdEncoding.EncodeToString(raw), nil
}

// DeriveOperatorSeed deterministically derives a labeled ed25519 seed
// from a root seed, so one ceremony secret can back several operator
// roles without key reuse.
func DeriveOperatorSeed(rootSeed []byte, label string) ([]byte, error) {
	if len(rootSeed) != ed25519.SeedSize {
		return nil, fmt.Errorf("attest: root seed must be %d bytes", ed25519.SeedSize)
	}
	if label == "" {
		return nil, errors.New("attest: empty label")
	}
	h := sha256.New()
	_, _ = h.Write(rootSeed)
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte("espresso-keyset-attest-v1"))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte("label:"))
	_, _ = h.Write([]byte(label))
	sum := h.Sum(nil)
	out := make([]byte, ed25519.SeedSize)
	copy(out, sum[:ed25519.SeedSize])
	return out, nil
}

// GenerateDilithium3Keypair returns a new dilithium3 keypair.
func GenerateDilithium3Keypair(rand io.Reader) (*mode3.PublicKey, *mode3.PrivateKey, error) {
	return mode3.GenerateKey(rand)
}

// SignEd25519 returns an ed25519 attestation over sha256 of the
// commitment digest.
func SignEd25519(d commit.Digest, priv ed25519.PrivateKey) string {
	msg := sha256.Sum256(d[:])
	sig := ed25519.Sign(priv, msg[:])
	return AlgEd25519 + ":" + base64.StdEncoding.EncodeToString(sig)
}

// SignDilithium3 returns a dilithium3 attestation over sha3-256 of the
// commitment digest.
func SignDilithium3(d commit.Digest, priv *mode3.PrivateKey) (string, error) {
	if priv == nil {
		return "", errors.New("attest: missing private key")
	}
	msg := sha3.Sum256(d[:])
	sig := make([]byte, mode3.SignatureSize)
	mode3.SignTo(priv, msg[:], sig)
	return AlgDilithium3 + ":" + base64.StdEncoding.EncodeToString(sig), nil
}

// Verify checks an attestation over a commitment digest against an
// operator key. The attestation's algorithm must match the key's.
func Verify(d commit.Digest, operatorKey, attestation string) error {
	keyAlg, keyEnc, ok := strings.Cut(operatorKey, ":")
	if !ok {
		return errors.New("attest: invalid operator key encoding")
	}
	sigAlg, sigEnc, ok := strings.Cut(attestation, ":")
	if !ok {
		return errors.New("attest: invalid attestation encoding")
	}
	if keyAlg != sigAlg {
		return fmt.Errorf("attest: attestation alg %q does not match operator key alg %q", sigAlg, keyAlg)
	}
	pub, err := base64.StdEncoding.DecodeString(keyEnc)
	if err != nil {
		return fmt.Errorf("attest: invalid operator key base64: %w", err)
	}
	sig, err := base64.StdEncoding.DecodeString(sigEnc)
	if err != nil {
		return fmt.Errorf("attest: invalid attestation base64: %w", err)
	}

	switch keyAlg {
	case AlgEd25519:
		if len(pub) != ed25519.PublicKeySize {
			return errors.New("attest: invalid ed25519 public key length")
		}
		if len(sig) != ed25519.SignatureSize {
			return errors.New("attest: invalid ed25519 signature length")
		}
		msg := sha256.Sum256(d[:])
		if !ed25519.Verify(ed25519.PublicKey(pub), msg[:], sig) {
			return errors.New("attest: signature invalid")
		}
		return nil
	case AlgDilithium3:
		var pk mode3.PublicKey
		if err := pk.UnmarshalBinary(pub); err != nil {
			return fmt.Errorf("attest: invalid dilithium3 public key: %w", err)
		}
		if len(sig) != mode3.SignatureSize {
			return errors.New("attest: invalid dilithium3 signature length")
		}
		msg := sha3.Sum256(d[:])
		if !mode3.Verify(&pk, msg[:], sig) {
			return errors.New("attest: signature invalid")
		}
		return nil
	default:
		return fmt.Errorf("attest: unsupported algorithm %q", keyAlg)
	}
}
