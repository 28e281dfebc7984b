package exports

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// demo categories mirror the seed data so the public feed looks like a
// real dashboard while the store is unavailable
var demoCategories = []struct {
	Name string
	Type string
}{
	{"Ventas", "INCOME"},
	{"Servicios", "INCOME"},
	{"Nómina", "EXPENSE"},
	{"Alquiler", "EXPENSE"},
	{"Suministros", "EXPENSE"},
	{"Transporte", "EXPENSE"},
}

var demoMethods = []string{"CASH", "CARD", "TRANSFER", "OTHER"}

// DemoTransactions generates n synthetic records dated within the last 30
// days. Used by the public BI feed when the database is unreachable.
func DemoTransactions(n int) []TransactionRecord {
	now := time.Now()
	records := make([]TransactionRecord, 0, n)

	for i := 0; i < n; i++ {
		category := demoCategories[rand.Intn(len(demoCategories))]
		daysAgo := rand.Intn(30)
		date := now.AddDate(0, 0, -daysAgo)
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

		// amounts between 5.00 and 1505.00
		cents := 500 + rand.Intn(150000)
		amount := decimal.New(int64(cents), -2)

		records = append(records, TransactionRecord{
			ID:            i + 1,
			Date:          date,
			Description:   fmt.Sprintf("Demo %s %d", category.Name, i+1),
			CategoryName:  category.Name,
			CategoryType:  category.Type,
			Type:          category.Type,
			Amount:        amount,
			PaymentMethod: demoMethods[rand.Intn(len(demoMethods))],
			Tags:          "demo",
			CreatedAt:     now,
		})
	}
	return records
}
