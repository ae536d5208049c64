package utils

import (
	"crypto/rand"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := make([]byte, 32)
	rand.Read(key)

	sealed, err := Encrypt(key, []byte("tok-123"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if sealed == "tok-123" {
		t.Fatal("ciphertext equals plaintext")
	}

	plain, err := Decrypt(key, sealed)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if string(plain) != "tok-123" {
		t.Errorf("Decrypt = %q, want %q", plain, "tok-123")
	}
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	key := make([]byte, 32)
	rand.Read(key)
	sealed, err := Encrypt(key, []byte("tok-123"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	wrong := make([]byte, 32)
	rand.Read(wrong)
	if _, err := Decrypt(wrong, sealed); err == nil {
		t.Error("decryption with the wrong key should fail")
	}
}

func TestEncryptRejectsBadKeySize(t *testing.T) {
	if _, err := Encrypt([]byte("short"), []byte("x")); err == nil {
		t.Error("a 5-byte key should be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Sup3r!Secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Sup3r!Secret" {
		t.Fatal("password stored verbatim")
	}

	if !CheckPassword("Sup3r!Secret", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
}
