package bundle

import (
	"bytes"
	"encoding/json"
	"io"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"

	"github.com/EspressoSystems/key-set/capkeys"
	"github.com/EspressoSystems/key-set/keyset"
)

var testShapes = [][2]int{{1, 2}, {2, 2}, {2, 3}, {3, 1}}

func testSRS(t *testing.T) *kzg.SRS {
	t.Helper()
	srs, err := kzg.NewSRS(16, big.NewInt(42))
	if err != nil {
		t.Fatalf("NewSRS: %v", err)
	}
	return srs
}

func buildProverKeySet(t *testing.T, srs *kzg.SRS, shapes [][2]int) *ProverKeySet[keyset.OrderByInputs] {
	t.Helper()
	mint, err := capkeys.NewMintProvingKey(srs)
	if err != nil {
		t.Fatalf("NewMintProvingKey: %v", err)
	}
	xfrKeys := make([]*capkeys.TransferProvingKey, 0, len(shapes))
	frzKeys := make([]*capkeys.FreezeProvingKey, 0, len(shapes))
	for _, s := range shapes {
		xfr, err := capkeys.NewTransferProvingKey(srs, s[0], s[1])
		if err != nil {
			t.Fatalf("NewTransferProvingKey(%d, %d): %v", s[0], s[1], err)
		}
		xfrKeys = append(xfrKeys, xfr)
		frz, err := capkeys.NewFreezeProvingKey(srs, s[0], s[1])
		if err != nil {
			t.Fatalf("NewFreezeProvingKey(%d, %d): %v", s[0], s[1], err)
		}
		frzKeys = append(frzKeys, frz)
	}
	xfr, err := keyset.New[*capkeys.TransferProvingKey, keyset.OrderByInputs](xfrKeys)
	if err != nil {
		t.Fatalf("New transfer set: %v", err)
	}
	freeze, err := keyset.New[*capkeys.FreezeProvingKey, keyset.OrderByInputs](frzKeys)
	if err != nil {
		t.Fatalf("New freeze set: %v", err)
	}
	return &ProverKeySet[keyset.OrderByInputs]{Mint: mint, Xfr: xfr, Freeze: freeze}
}

func buildVerifierKeySet(t *testing.T, srs *kzg.SRS, shapes [][2]int) *VerifierKeySet[keyset.OrderByInputs] {
	t.Helper()
	mintVk, err := capkeys.NewMintVerifyingKey(srs)
	if err != nil {
		t.Fatalf("NewMintVerifyingKey: %v", err)
	}
	xfrKeys := make([]*capkeys.TransactionVerifyingKey, 0, len(shapes))
	frzKeys := make([]*capkeys.TransactionVerifyingKey, 0, len(shapes))
	for _, s := range shapes {
		xfr, err := capkeys.NewTransferVerifyingKey(srs, s[0], s[1])
		if err != nil {
			t.Fatalf("NewTransferVerifyingKey(%d, %d): %v", s[0], s[1], err)
		}
		xfrKeys = append(xfrKeys, capkeys.ForTransfer(xfr))
		frz, err := capkeys.NewFreezeVerifyingKey(srs, s[0], s[1])
		if err != nil {
			t.Fatalf("NewFreezeVerifyingKey(%d, %d): %v", s[0], s[1], err)
		}
		frzKeys = append(frzKeys, capkeys.ForFreeze(frz))
	}
	xfr, err := keyset.New[*capkeys.TransactionVerifyingKey, keyset.OrderByInputs](xfrKeys)
	if err != nil {
		t.Fatalf("New transfer set: %v", err)
	}
	freeze, err := keyset.New[*capkeys.TransactionVerifyingKey, keyset.OrderByInputs](frzKeys)
	if err != nil {
		t.Fatalf("New freeze set: %v", err)
	}
	return &VerifierKeySet[keyset.OrderByInputs]{Mint: capkeys.ForMint(mintVk), Xfr: xfr, Freeze: freeze}
}

func encode(t *testing.T, s io.WriterTo) []byte {
	t.Helper()
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	return buf.Bytes()
}

func TestProverKeySetRoundTrip(t *testing.T) {
	srs := testSRS(t)
	orig := buildProverKeySet(t, srs, testShapes)

	var buf bytes.Buffer
	if _, err := orig.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	decoded, err := ReadProverKeySet[keyset.OrderByInputs](bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadProverKeySet: %v", err)
	}

	var reencoded bytes.Buffer
	if _, err := decoded.WriteTo(&reencoded); err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), reencoded.Bytes()) {
		t.Fatal("re-encoded bytes differ from original encoding")
	}
	if in, out := decoded.Xfr.MaxSize(); in != 3 || out != 1 {
		t.Fatalf("decoded transfer max size = (%d, %d), want (3, 1)", in, out)
	}
}

func TestVerifierKeySetRoundTripPreservesCommitment(t *testing.T) {
	srs := testSRS(t)
	orig := buildVerifierKeySet(t, srs, testShapes)
	origDigest := orig.Commit()

	var buf bytes.Buffer
	if _, err := orig.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	decoded, err := ReadVerifierKeySet[keyset.OrderByInputs](bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadVerifierKeySet: %v", err)
	}

	if decoded.Commit() != origDigest {
		t.Fatal("decoded bundle commits to a different digest")
	}

	// The decoded sets must answer queries like the originals.
	for _, s := range testShapes {
		if _, ok := decoded.Xfr.ExactFitKey(s[0], s[1]); !ok {
			t.Fatalf("decoded transfer set missing size (%d, %d)", s[0], s[1])
		}
	}
	if _, _, _, err := decoded.Freeze.BestFitKey(1, 1); err != nil {
		t.Fatalf("decoded freeze set best fit: %v", err)
	}
}

func TestCommitmentDeterminism(t *testing.T) {
	srs := testSRS(t)
	a := buildVerifierKeySet(t, srs, testShapes)
	b := buildVerifierKeySet(t, srs, testShapes)

	if a.Commit() != b.Commit() {
		t.Fatal("identically built bundles commit differently")
	}
	if a.Commit() != a.Commit() {
		t.Fatal("repeated commitment of one bundle differs")
	}
}

func TestCommitmentSensitivity(t *testing.T) {
	srs := testSRS(t)
	base := buildVerifierKeySet(t, srs, testShapes)

	grown := buildVerifierKeySet(t, srs, append(append([][2]int(nil), testShapes...), [2]int{4, 4}))
	if base.Commit() == grown.Commit() {
		t.Fatal("bundles with different key sets commit identically")
	}

	reshaped := buildVerifierKeySet(t, srs, [][2]int{{1, 2}, {2, 2}, {2, 3}, {3, 2}})
	if base.Commit() == reshaped.Commit() {
		t.Fatal("bundles with different shapes commit identically")
	}

	// Same shapes, different key material.
	otherSRS, err := kzg.NewSRS(16, big.NewInt(43))
	if err != nil {
		t.Fatalf("NewSRS: %v", err)
	}
	rekeyed := buildVerifierKeySet(t, otherSRS, testShapes)
	if base.Commit() == rekeyed.Commit() {
		t.Fatal("bundles with different key material commit identically")
	}
}

func TestBundleJSONRoundTrip(t *testing.T) {
	srs := testSRS(t)
	orig := buildVerifierKeySet(t, srs, testShapes)

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded VerifierKeySet[keyset.OrderByInputs]
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Commit() != orig.Commit() {
		t.Fatal("JSON round trip changed the commitment")
	}

	prover := buildProverKeySet(t, srs, testShapes)
	data, err = json.Marshal(prover)
	if err != nil {
		t.Fatalf("Marshal prover: %v", err)
	}
	var decodedProver ProverKeySet[keyset.OrderByInputs]
	if err := json.Unmarshal(data, &decodedProver); err != nil {
		t.Fatalf("Unmarshal prover: %v", err)
	}
	if !bytes.Equal(encode(t, &decodedProver), encode(t, prover)) {
		t.Fatal("JSON round trip changed the prover bundle's canonical bytes")
	}
}
