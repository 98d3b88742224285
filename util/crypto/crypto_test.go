package crypto

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPasswordAsBcrypt("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash equals the plain password")
	}

	if !CheckPasswordHash(hash, "s3cret") {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash(hash, "wrong") {
		t.Error("wrong password accepted")
	}
	if CheckPasswordHash("not-a-bcrypt-hash", "s3cret") {
		t.Error("garbage hash accepted")
	}
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := HashPasswordAsBcrypt("same")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashPasswordAsBcrypt("same")
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical")
	}
}
