package security

import "testing"

func TestHashAndCheck(t *testing.T) {
	hash, err := HashPassword("gizli-sifre")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "gizli-sifre" {
		t.Fatal("password stored in the clear")
	}
	if !CheckPasswordHash("gizli-sifre", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("yanlis-sifre", hash) {
		t.Error("wrong password accepted")
	}
}

func TestPasswordLengthBounds(t *testing.T) {
	if _, err := HashPassword("kisa"); err == nil {
		t.Error("short password accepted")
	}
	if _, err := HashPassword("123456"); err != nil {
		t.Errorf("six characters should be enough, got %v", err)
	}
	long := make([]byte, 33)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := HashPassword(string(long)); err == nil {
		t.Error("over-long password accepted")
	}
}
