package service

import "testing"

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	h1, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("two hashes of the same input should differ")
	}
	if !CheckPassword("s3cret", h1) || !CheckPassword("s3cret", h2) {
		t.Fatalf("both digests should verify against the original password")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	h, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if CheckPassword("wrong", h) {
		t.Fatalf("wrong password should not verify")
	}
}

func TestCheckPassword_CorruptDigest(t *testing.T) {
	if CheckPassword("s3cret", "not-a-bcrypt-digest") {
		t.Fatalf("corrupt digest should report false, not panic or pass")
	}
}
