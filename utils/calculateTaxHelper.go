package utils

import (
	"github.com/shopspring/decimal"
)

// Derived-amount arithmetic for invoices, tax reports and the ledger.
// All functions are pure and total; inputs are validated at the boundary.
// Amounts are rounded to 2 decimal places (half away from zero).

var decimalOneHundred = decimal.NewFromInt(100)

// CalculateTaxAmount returns subtotal * taxRate / 100.
func CalculateTaxAmount(subtotal decimal.Decimal, taxRate decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(taxRate).Div(decimalOneHundred).Round(2)
}

// CalculateInvoiceTotal returns subtotal + tax amount.
func CalculateInvoiceTotal(subtotal decimal.Decimal, taxRate decimal.Decimal) decimal.Decimal {
	return subtotal.Add(CalculateTaxAmount(subtotal, taxRate)).Round(2)
}

// CalculateNetAmount returns payable - receivable.
func CalculateNetAmount(totalPayable decimal.Decimal, totalReceivable decimal.Decimal) decimal.Decimal {
	return totalPayable.Sub(totalReceivable).Round(2)
}

// LedgerAmount is the slice of an accounting entry this package needs to
// compute balances.
type LedgerAmount struct {
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
}

// LedgerBalance reproduces the dashboard's historical balance figure:
// sum(amount) - sum(amount) over the same column, which is zero for any
// input. Kept verbatim for display compatibility with the legacy report;
// use LedgerBalanceByAccount for a real double-entry check.
func LedgerBalance(entries []LedgerAmount) decimal.Decimal {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, e := range entries {
		totalDebit = totalDebit.Add(e.Amount)
		totalCredit = totalCredit.Add(e.Amount)
	}
	return totalDebit.Sub(totalCredit)
}

// LedgerBalanceByAccount returns per-account net movement: each entry debits
// one account and credits another with the same amount, so the sum over all
// accounts is zero when the ledger is balanced.
func LedgerBalanceByAccount(entries []LedgerAmount) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal)
	for _, e := range entries {
		balances[e.DebitAccount] = balances[e.DebitAccount].Add(e.Amount)
		balances[e.CreditAccount] = balances[e.CreditAccount].Sub(e.Amount)
	}
	return balances
}
