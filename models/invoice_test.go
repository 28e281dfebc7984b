package models

import "testing"

func TestNextDocumentNumber(t *testing.T) {
	tests := []struct {
		name string
		last string
		want string
	}{
		{"empty starts sequence", "", "001"},
		{"increments", "001", "002"},
		{"keeps padding", "007", "008"},
		{"nine to ten", "009", "010"},
		{"before width growth", "099", "100"},
		{"width grows past 999", "999", "1000"},
		{"four digit continues", "1000", "1001"},
		{"garbage starts sequence", "abc", "001"},
		{"whitespace starts sequence", "  ", "001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextDocumentNumber(tt.last); got != tt.want {
				t.Errorf("NextDocumentNumber(%q) = %q, want %q", tt.last, got, tt.want)
			}
		})
	}
}

func TestValidStatusTransition(t *testing.T) {
	tests := []struct {
		from InvoiceStatus
		to   InvoiceStatus
		want bool
	}{
		{InvoiceStatusDraft, InvoiceStatusIssued, true},
		{InvoiceStatusDraft, InvoiceStatusCancelled, true},
		{InvoiceStatusDraft, InvoiceStatusPaid, false},
		{InvoiceStatusIssued, InvoiceStatusPaid, true},
		{InvoiceStatusIssued, InvoiceStatusDraft, false},
		{InvoiceStatusPaid, InvoiceStatusPaid, true},
		{InvoiceStatusPaid, InvoiceStatusCancelled, false},
		{InvoiceStatusCancelled, InvoiceStatusIssued, false},
	}
	for _, tt := range tests {
		if got := validStatusTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("validStatusTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
