package utils

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatal(err)
	}
	if err := ComparePassword(string(hashed), "correct horse battery staple"); err != nil {
		t.Errorf("ComparePassword rejected the right password: %v", err)
	}
	if err := ComparePassword(string(hashed), "wrong password"); err == nil {
		t.Error("ComparePassword accepted the wrong password")
	}
}

// A corrupted stored hash must fail the comparison, never pass it. Login
// treats every comparison error as invalid credentials.
func TestComparePasswordMalformedHash(t *testing.T) {
	malformed := []string{"", "not-a-bcrypt-hash", "$2a$broken"}
	for _, hash := range malformed {
		if err := ComparePassword(hash, "anything"); err == nil {
			t.Errorf("ComparePassword(%q) accepted a malformed hash", hash)
		}
	}
}
