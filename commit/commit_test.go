package commit

import "testing"

func TestDeterminism(t *testing.T) {
	a := NewBuilder("tag").VarSizeBytes([]byte("payload")).Uint64(7).Finalize()
	b := NewBuilder("tag").VarSizeBytes([]byte("payload")).Uint64(7).Finalize()
	if a != b {
		t.Fatal("identical inputs produced different digests")
	}
}

func TestDomainSeparation(t *testing.T) {
	a := NewBuilder("tag A").VarSizeBytes([]byte("payload")).Finalize()
	b := NewBuilder("tag B").VarSizeBytes([]byte("payload")).Finalize()
	if a == b {
		t.Fatal("different tags produced the same digest")
	}
}

func TestFieldFraming(t *testing.T) {
	// Same concatenated bytes, different field boundaries.
	a := NewBuilder("tag").VarSizeBytes([]byte("ab")).VarSizeBytes([]byte("c")).Finalize()
	b := NewBuilder("tag").VarSizeBytes([]byte("a")).VarSizeBytes([]byte("bc")).Finalize()
	if a == b {
		t.Fatal("different field splits produced the same digest")
	}
}

func TestFixedBytes(t *testing.T) {
	a := NewBuilder("tag").FixedBytes([]byte{1, 2, 3, 4}).Finalize()
	b := NewBuilder("tag").FixedBytes([]byte{1, 2, 3, 4}).Finalize()
	if a != b {
		t.Fatal("identical fixed fields produced different digests")
	}
	c := NewBuilder("tag").FixedBytes([]byte{1, 2, 3, 5}).Finalize()
	if a == c {
		t.Fatal("different fixed fields produced the same digest")
	}
	// Fixed fields are unframed, so they must not collide with a framed
	// field of the same bytes.
	d := NewBuilder("tag").VarSizeBytes([]byte{1, 2, 3, 4}).Finalize()
	if a == d {
		t.Fatal("fixed and var-size fields of the same bytes produced the same digest")
	}
}

func TestDigestFor(t *testing.T) {
	msg := []byte("canonical bundle bytes")
	algs := []string{"sha256", "sha3-256", "blake3"}
	seen := make(map[string]string, len(algs))
	for _, alg := range algs {
		a, err := DigestFor(alg, msg)
		if err != nil {
			t.Fatalf("DigestFor(%q): %v", alg, err)
		}
		if len(a) != 32 {
			t.Fatalf("DigestFor(%q) returned %d bytes, want 32", alg, len(a))
		}
		b, err := DigestFor(alg, msg)
		if err != nil {
			t.Fatalf("DigestFor(%q): %v", alg, err)
		}
		if string(a) != string(b) {
			t.Fatalf("DigestFor(%q) is not deterministic", alg)
		}
		for prev, digest := range seen {
			if digest == string(a) {
				t.Fatalf("algorithms %q and %q produced the same digest", prev, alg)
			}
		}
		seen[alg] = string(a)
	}

	if _, err := DigestFor("md5", msg); err == nil {
		t.Fatal("unsupported algorithm accepted")
	}
}

func TestInputSensitivity(t *testing.T) {
	base := NewBuilder("tag").VarSizeBytes([]byte("payload")).Finalize()
	flipped := NewBuilder("tag").VarSizeBytes([]byte("pay1oad")).Finalize()
	if base == flipped {
		t.Fatal("changed payload produced the same digest")
	}
}
