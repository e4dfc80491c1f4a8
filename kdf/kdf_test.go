package kdf

import (
	"bytes"
	"testing"
)

func TestDeriveKeyPBKDF2Deterministic(t *testing.T) {
	passphrase := []byte("correct horse battery staple")
	salt := []byte("fixed-salt-value")

	a, err := DeriveKeyPBKDF2(passphrase, salt, PBKDF2Params{Iterations: 1000, KeyLen: 32})
	if err != nil {
		t.Fatalf("DeriveKeyPBKDF2: %v", err)
	}

	b, err := DeriveKeyPBKDF2(passphrase, salt, PBKDF2Params{Iterations: 1000, KeyLen: 32})
	if err != nil {
		t.Fatalf("DeriveKeyPBKDF2: %v", err)
	}

	if !bytes.Equal(a, b) {
		t.Fatal("same passphrase+salt+params produced different keys")
	}

	if len(a) != 32 {
		t.Fatalf("len(key) = %d, want 32", len(a))
	}
}

func TestDeriveKeyPBKDF2DifferentSalt(t *testing.T) {
	passphrase := []byte("correct horse battery staple")

	a, err := DeriveKeyPBKDF2(passphrase, []byte("salt-one"), PBKDF2Params{Iterations: 1000, KeyLen: 32})
	if err != nil {
		t.Fatalf("DeriveKeyPBKDF2: %v", err)
	}

	b, err := DeriveKeyPBKDF2(passphrase, []byte("salt-two"), PBKDF2Params{Iterations: 1000, KeyLen: 32})
	if err != nil {
		t.Fatalf("DeriveKeyPBKDF2: %v", err)
	}

	if bytes.Equal(a, b) {
		t.Fatal("different salts produced the same key")
	}
}

func TestDeriveKeyPBKDF2RejectsEmptyInputs(t *testing.T) {
	if _, err := DeriveKeyPBKDF2(nil, []byte("salt"), PBKDF2Params{}); err != ErrEmptyPassphrase {
		t.Errorf("got %v, want ErrEmptyPassphrase", err)
	}

	if _, err := DeriveKeyPBKDF2([]byte("pass"), nil, PBKDF2Params{}); err != ErrEmptySalt {
		t.Errorf("got %v, want ErrEmptySalt", err)
	}
}

func TestDeriveKeyArgon2idDeterministic(t *testing.T) {
	passphrase := []byte("correct horse battery staple")
	salt := []byte("fixed-salt-value")

	params := Argon2idParams{Time: 1, MemoryKiB: 8 * 1024, Threads: 2, KeyLen: 32}

	a, err := DeriveKeyArgon2id(passphrase, salt, params)
	if err != nil {
		t.Fatalf("DeriveKeyArgon2id: %v", err)
	}

	b, err := DeriveKeyArgon2id(passphrase, salt, params)
	if err != nil {
		t.Fatalf("DeriveKeyArgon2id: %v", err)
	}

	if !bytes.Equal(a, b) {
		t.Fatal("same inputs produced different keys")
	}

	if len(a) != 32 {
		t.Fatalf("len(key) = %d, want 32", len(a))
	}
}

func TestNewSaltLength(t *testing.T) {
	salt, err := NewSalt(DefaultSaltSize)
	if err != nil {
		t.Fatalf("NewSalt: %v", err)
	}

	if len(salt) != DefaultSaltSize {
		t.Fatalf("len(salt) = %d, want %d", len(salt), DefaultSaltSize)
	}
}
