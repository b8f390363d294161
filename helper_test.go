package glmetrics

import (
	"github.com/google/uuid"
)

// entry is a helper for tests to create a ledger entry with only the fields
// the metrics look at.
func entry(category, accountType, valueType string, value float64) Entry {
	return Entry{
		AccountCategory:   category,
		AccountType:       accountType,
		ValueType:         valueType,
		TotalValue:        value,
		AccountIdentifier: uuid.NewString(),
	}
}

// sampleEntries is the entry set shared by the metrics and the loader tests
// (it is also the content of testdata/ledger.json).
//
//	revenue 10,500  expenses 4,000  sales debits 500
//	assets 4,500    liabilities -2,000
func sampleEntries() []Entry {
	return []Entry{
		entry(CategoryRevenue, TypeSales, ValueCredit, 10000),
		entry(CategoryRevenue, TypeSales, ValueDebit, 500),
		entry(CategoryExpense, TypeOverheads, ValueDebit, 4000),
		entry(CategoryAssets, TypeCurrent, ValueDebit, 3000),
		entry(CategoryAssets, TypeBank, ValueDebit, 2000),
		entry(CategoryAssets, TypeCurrentAccountsReceivable, ValueCredit, 500),
		entry(CategoryAssets, "fixed", ValueDebit, 9999),
		entry(CategoryLiability, TypeCurrent, ValueCredit, 1000),
		entry(CategoryLiability, TypeCurrentAccountsPayable, ValueCredit, 1500),
		entry(CategoryLiability, TypeCurrent, ValueDebit, 500),
	}
}

// validDoc returns a normalized ledger document that passes validation.
func validDoc() map[string]any {
	return map[string]any{
		"objectCategory":       "Statement",
		"connectionId":         uuid.NewString(),
		"user":                 uuid.NewString(),
		"objectCreationDate":   "2020-09-30T04:40:29.372Z",
		"currency":             "AUD",
		"objectOriginType":     "xero",
		"objectOriginCategory": "accounting",
		"objectType":           "ledger",
		"objectClass":          "general",
		"balanceDate":          "2020-09-30T00:00:00Z",
		"data": []any{
			validEntryDoc(),
			map[string]any{
				"accountCategory":   "expense",
				"accountCode":       "400",
				"accountCurrency":   "AUD",
				"accountIdentifier": uuid.NewString(),
				"accountStatus":     "ACTIVE",
				"valueType":         "debit",
				"accountName":       "Advertising",
				"accountType":       "overheads",
				"totalValue":        4000.0,
			},
		},
	}
}

func validEntryDoc() map[string]any {
	return map[string]any{
		"accountCategory":   "revenue",
		"accountCode":       "200",
		"accountCurrency":   "AUD",
		"accountIdentifier": uuid.NewString(),
		"accountStatus":     "ACTIVE",
		"valueType":         "credit",
		"accountName":       "Sales",
		"accountType":       "sales",
		"totalValue":        10000.0,
	}
}
