package password

import (
	"errors"
	"strings"
	"testing"
)

// fastArgon2 keeps test runs quick; cost parameters don't change the
// properties under test.
func fastArgon2(opts ...Argon2Option) *Argon2Hasher {
	base := []Argon2Option{WithArgon2Time(1), WithArgon2Memory(8 * 1024), WithArgon2Threads(1)}
	return NewArgon2Hasher(append(base, opts...)...)
}

func TestArgon2HashVerifyRoundTrip(t *testing.T) {
	h := fastArgon2()

	tests := []struct {
		name     string
		password string
	}{
		{"simple", "secure_password_123"},
		{"empty string", ""},
		{"unicode", "pässwörd-日本語"},
		{"long", strings.Repeat("a", 200)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hash, err := h.Hash(tc.password)
			if err != nil {
				t.Fatalf("Hash failed: %v", err)
			}
			if hash == tc.password {
				t.Error("hash should not equal plaintext")
			}
			if !strings.HasPrefix(hash, "$argon2id$") {
				t.Errorf("expected PHC argon2id prefix, got %q", hash)
			}

			ok, err := h.Verify(tc.password, hash)
			if err != nil {
				t.Fatalf("Verify failed: %v", err)
			}
			if !ok {
				t.Error("expected password to verify against its own hash")
			}
		})
	}
}

func TestArgon2VerifyWrongPassword(t *testing.T) {
	h := fastArgon2()

	hash, err := h.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	ok, err := h.Verify("wrong-password", hash)
	if err != nil {
		t.Fatalf("Verify returned error for mismatch: %v", err)
	}
	if ok {
		t.Error("expected mismatch to return false")
	}

	// Off by a single character.
	ok, err = h.Verify("correct-passworD", hash)
	if err != nil || ok {
		t.Errorf("expected (false, nil) for near-miss, got (%v, %v)", ok, err)
	}
}

func TestArgon2SaltUniqueness(t *testing.T) {
	h := fastArgon2()

	h1, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	h2, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ (fresh salt per call)")
	}

	for _, hash := range []string{h1, h2} {
		ok, err := h.Verify("same-password", hash)
		if err != nil || !ok {
			t.Errorf("expected both hashes to verify, got (%v, %v)", ok, err)
		}
	}
}

func TestArgon2UnsupportedFormat(t *testing.T) {
	h := fastArgon2()

	bcryptHash, err := NewBcryptHasher(WithCost(4)).Hash("some-password")
	if err != nil {
		t.Fatalf("bcrypt Hash failed: %v", err)
	}

	tests := []struct {
		name string
		hash string
	}{
		{"bcrypt hash", bcryptHash},
		{"empty", ""},
		{"garbage", "not-a-hash"},
		{"wrong family", "$argon2i$v=19$m=8192,t=1,p=1$c2FsdA$ZGlnZXN0"},
		{"bad salt encoding", "$argon2id$v=19$m=8192,t=1,p=1$!!!$ZGlnZXN0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := h.Verify("password", tc.hash); !errors.Is(err, ErrUnsupportedHash) {
				t.Errorf("Verify: expected ErrUnsupportedHash, got %v", err)
			}
			if _, err := h.NeedsRehash(tc.hash); !errors.Is(err, ErrUnsupportedHash) {
				t.Errorf("NeedsRehash: expected ErrUnsupportedHash, got %v", err)
			}
		})
	}
}

func TestArgon2NeedsRehash(t *testing.T) {
	current := fastArgon2()

	hash, err := current.Hash("password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	needs, err := current.NeedsRehash(hash)
	if err != nil {
		t.Fatalf("NeedsRehash failed: %v", err)
	}
	if needs {
		t.Error("fresh hash should not need rehash")
	}

	// A hash produced under weaker parameters than current policy.
	weaker := fastArgon2(WithArgon2Memory(8 * 1024))
	strengthened := NewArgon2Hasher(WithArgon2Time(2), WithArgon2Memory(16*1024), WithArgon2Threads(1))

	weakHash, err := weaker.Hash("password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	needs, err = strengthened.NeedsRehash(weakHash)
	if err != nil {
		t.Fatalf("NeedsRehash failed: %v", err)
	}
	if !needs {
		t.Error("hash under weaker parameters should need rehash")
	}

	// The old hash still verifies; only the parameters are stale.
	ok, err := strengthened.Verify("password", weakHash)
	if err != nil || !ok {
		t.Errorf("expected stale hash to still verify, got (%v, %v)", ok, err)
	}
}

func TestBcryptHashVerify(t *testing.T) {
	h := NewBcryptHasher(WithCost(4))

	hash, err := h.Hash("my-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	ok, err := h.Verify("my-password", hash)
	if err != nil || !ok {
		t.Errorf("expected match, got (%v, %v)", ok, err)
	}

	ok, err = h.Verify("other-password", hash)
	if err != nil || ok {
		t.Errorf("expected (false, nil) for mismatch, got (%v, %v)", ok, err)
	}

	if _, err := h.Verify("password", "$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$ZGlnZXN0"); !errors.Is(err, ErrUnsupportedHash) {
		t.Errorf("expected ErrUnsupportedHash for argon2 hash, got %v", err)
	}
}

func TestBcryptTooLong(t *testing.T) {
	h := NewBcryptHasher(WithCost(4))
	if _, err := h.Hash(strings.Repeat("x", 73)); err == nil {
		t.Error("expected error for password over 72 bytes")
	}
}

func TestBcryptNeedsRehash(t *testing.T) {
	weak := NewBcryptHasher(WithCost(4))
	strong := NewBcryptHasher(WithCost(6))

	hash, err := weak.Hash("password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	needs, err := weak.NeedsRehash(hash)
	if err != nil || needs {
		t.Errorf("fresh hash should not need rehash, got (%v, %v)", needs, err)
	}

	needs, err = strong.NeedsRehash(hash)
	if err != nil {
		t.Fatalf("NeedsRehash failed: %v", err)
	}
	if !needs {
		t.Error("hash under lower cost should need rehash")
	}
}

func TestNewHasherFromConfig(t *testing.T) {
	t.Run("default is argon2id", func(t *testing.T) {
		h := NewHasher(Config{})
		if _, ok := h.(*Argon2Hasher); !ok {
			t.Errorf("expected *Argon2Hasher, got %T", h)
		}
	})

	t.Run("bcrypt selected", func(t *testing.T) {
		h := NewHasher(Config{Algorithm: AlgorithmBcrypt, BcryptCost: 4})
		if _, ok := h.(*BcryptHasher); !ok {
			t.Errorf("expected *BcryptHasher, got %T", h)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults valid", Config{Algorithm: AlgorithmArgon2id, BcryptCost: 12}, false},
		{"unknown algorithm", Config{Algorithm: "scrypt", BcryptCost: 12}, true},
		{"cost too low", Config{Algorithm: AlgorithmBcrypt, BcryptCost: 2}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	tok1, err := GenerateToken(32)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if len(tok1) != 64 {
		t.Errorf("expected 64 hex chars for 32 bytes, got %d", len(tok1))
	}

	tok2, _ := GenerateToken(32)
	if tok1 == tok2 {
		t.Error("expected distinct tokens")
	}
}

func TestHashSHA256(t *testing.T) {
	// Stable digest so stored token hashes remain comparable.
	got := HashSHA256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
