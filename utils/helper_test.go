package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-03-15", "")
	if err != nil {
		t.Fatal(err)
	}
	if got.Year() != 2025 || got.Month() != time.March || got.Day() != 15 {
		t.Errorf("ParseDate = %s", got)
	}
	if got.Location().String() != "Europe/Madrid" {
		t.Errorf("location = %s, want Europe/Madrid", got.Location())
	}

	if _, err := ParseDate("15/03/2025", ""); err == nil {
		t.Error("expected error for non ISO date")
	}
	if _, err := ParseDate("", ""); err == nil {
		t.Error("expected error for empty date")
	}
}

func TestUniqueSlice(t *testing.T) {
	got := UniqueSlice([]string{"a", "b", "a", "c", "b"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"user.name+tag@sub.example.es", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"user@", false},
	}
	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
