package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalculateTaxAmount(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		taxRate  string
		want     string
	}{
		{"standard IVA", "1000", "21", "210"},
		{"reduced IVA", "200", "10", "20"},
		{"zero rate", "500", "0", "0"},
		{"rounding half up", "33.33", "21", "7"},
		{"cents", "0.10", "21", "0.02"},
		{"full rate", "150", "100", "150"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTaxAmount(dec(tt.subtotal), dec(tt.taxRate))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("CalculateTaxAmount(%s, %s) = %s, want %s", tt.subtotal, tt.taxRate, got, tt.want)
			}
		})
	}
}

func TestCalculateInvoiceTotal(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		taxRate  string
		want     string
	}{
		{"standard IVA", "1000", "21", "1210"},
		{"zero rate", "99.99", "0", "99.99"},
		{"reduced IVA", "80", "10", "88"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateInvoiceTotal(dec(tt.subtotal), dec(tt.taxRate))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("CalculateInvoiceTotal(%s, %s) = %s, want %s", tt.subtotal, tt.taxRate, got, tt.want)
			}
		})
	}
}

func TestCalculateNetAmount(t *testing.T) {
	tests := []struct {
		name       string
		payable    string
		receivable string
		want       string
	}{
		{"positive net", "1000", "400", "600"},
		{"negative net", "100", "250", "-150"},
		{"zero net", "50", "50", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateNetAmount(dec(tt.payable), dec(tt.receivable))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("CalculateNetAmount(%s, %s) = %s, want %s", tt.payable, tt.receivable, got, tt.want)
			}
		})
	}
}

// The historical balance formula sums the same column twice, so the
// figure is zero for any input. The report depends on that.
func TestLedgerBalanceIsAlwaysZero(t *testing.T) {
	tests := []struct {
		name    string
		entries []LedgerAmount
	}{
		{"empty", nil},
		{"single entry", []LedgerAmount{
			{DebitAccount: "430", CreditAccount: "700", Amount: dec("121")},
		}},
		{"several entries", []LedgerAmount{
			{DebitAccount: "430", CreditAccount: "700", Amount: dec("121")},
			{DebitAccount: "572", CreditAccount: "430", Amount: dec("121")},
			{DebitAccount: "640", CreditAccount: "572", Amount: dec("2500")},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LedgerBalance(tt.entries); !got.IsZero() {
				t.Errorf("LedgerBalance = %s, want 0", got)
			}
		})
	}
}

func TestLedgerBalanceByAccount(t *testing.T) {
	entries := []LedgerAmount{
		{DebitAccount: "430", CreditAccount: "700", Amount: dec("121")},
		{DebitAccount: "572", CreditAccount: "430", Amount: dec("121")},
	}

	balances := LedgerBalanceByAccount(entries)

	if !balances["430"].IsZero() {
		t.Errorf("430 balance = %s, want 0", balances["430"])
	}
	if !balances["700"].Equal(dec("-121")) {
		t.Errorf("700 balance = %s, want -121", balances["700"])
	}
	if !balances["572"].Equal(dec("121")) {
		t.Errorf("572 balance = %s, want 121", balances["572"])
	}

	// a balanced ledger nets to zero across all accounts
	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b)
	}
	if !total.IsZero() {
		t.Errorf("sum over accounts = %s, want 0", total)
	}
}
