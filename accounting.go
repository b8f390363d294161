package glmetrics

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/etnz/glmetrics/date"
)

// Account types that make up current assets and current liabilities.
var (
	assetTypes     = []string{TypeCurrent, TypeBank, TypeCurrentAccountsReceivable}
	liabilityTypes = []string{TypeCurrent, TypeCurrentAccountsPayable}
)

// Metrics is a stateless engine computing accounting ratios over a list of
// ledger entries. All methods are pure queries over the entries it was
// created with.
//
// Amounts are summed as float64 with no overflow protection. A ratio whose
// denominator is exactly zero fails with a *DivisionByZeroError; there is no
// epsilon tolerance.
type Metrics struct {
	entries []Entry
}

// NewMetrics creates a metrics engine over a copy of entries.
func NewMetrics(entries []Entry) *Metrics {
	return &Metrics{entries: slices.Clone(entries)}
}

// sumWhere returns the sum of TotalValue for the entries matching pred, 0 if none match.
func (m *Metrics) sumWhere(pred func(Entry) bool) float64 {
	var sum float64
	for _, e := range m.entries {
		if pred(e) {
			sum += e.TotalValue
		}
	}
	return sum
}

// Revenue returns the sum of all "revenue" entries.
func (m *Metrics) Revenue() float64 {
	return m.sumWhere(func(e Entry) bool { return e.AccountCategory == CategoryRevenue })
}

// Expenses returns the sum of all "expense" entries.
func (m *Metrics) Expenses() float64 {
	return m.sumWhere(func(e Entry) bool { return e.AccountCategory == CategoryExpense })
}

// GrossProfitMargin returns the sales debits over the revenue.
//
// Sales debits are taken from every entry with account type "sales" and value
// type "debit", whatever its category.
func (m *Metrics) GrossProfitMargin() (float64, error) {
	revenue := m.Revenue()
	if revenue == 0 {
		return 0, &DivisionByZeroError{Denominator: "Revenue", Metric: "gross profit margin"}
	}
	grossProfit := m.sumWhere(func(e Entry) bool {
		return e.AccountType == TypeSales && e.ValueType == ValueDebit
	})
	return grossProfit / revenue, nil
}

// NetProfitMargin returns (revenue - expenses) / revenue.
func (m *Metrics) NetProfitMargin() (float64, error) {
	revenue := m.Revenue()
	if revenue == 0 {
		return 0, &DivisionByZeroError{Denominator: "Revenue", Metric: "net profit margin"}
	}
	return (revenue - m.Expenses()) / revenue, nil
}

// categoryNetValue returns the debits minus the credits of the entries in
// category whose account type is one of validTypes.
// category must be "assets" or "liability".
func (m *Metrics) categoryNetValue(category string, validTypes []string) (float64, error) {
	if category != CategoryAssets && category != CategoryLiability {
		return 0, &InvalidCategoryError{Category: category}
	}
	total := func(valueType string) float64 {
		return m.sumWhere(func(e Entry) bool {
			return e.AccountCategory == category &&
				e.ValueType == valueType &&
				slices.Contains(validTypes, e.AccountType)
		})
	}
	return total(ValueDebit) - total(ValueCredit), nil
}

// Assets returns the net value of current, bank and receivable assets.
func (m *Metrics) Assets() (float64, error) {
	return m.categoryNetValue(CategoryAssets, assetTypes)
}

// Liabilities returns the net value (debit - credit) of current and payable
// liabilities. It is usually negative.
func (m *Metrics) Liabilities() (float64, error) {
	return m.categoryNetValue(CategoryLiability, liabilityTypes)
}

// WorkingCapitalRatio returns assets / liabilities.
func (m *Metrics) WorkingCapitalRatio() (float64, error) {
	assets, err := m.Assets()
	if err != nil {
		return 0, err
	}
	liabilities, err := m.Liabilities()
	if err != nil {
		return 0, err
	}
	if liabilities == 0 {
		return 0, &DivisionByZeroError{Denominator: "Liabilities", Metric: "working capital ratio"}
	}
	return assets / liabilities, nil
}

// Summary provides an at-a-glance overview of a ledger's accounting ratios.
type Summary struct {
	Currency            string
	BalanceDate         date.Date
	Revenue             Money
	Expenses            Money
	GrossProfitMargin   Ratio
	NetProfitMargin     Ratio
	Assets              Money
	Liabilities         Money
	WorkingCapitalRatio Ratio
}

// Summarize computes every metric of a ledger. Either all metrics are
// computed or an error is returned.
func Summarize(l *Ledger) (*Summary, error) {
	balance, err := date.ParseTimestamp(l.BalanceDate)
	if err != nil {
		return nil, fmt.Errorf("invalid balance date: %w", err)
	}
	m := NewMetrics(l.Data)

	s := &Summary{
		Currency:    l.Currency,
		BalanceDate: date.Of(balance),
		Revenue:     Money(m.Revenue()),
		Expenses:    Money(m.Expenses()),
	}
	gross, err := m.GrossProfitMargin()
	if err != nil {
		return nil, err
	}
	net, err := m.NetProfitMargin()
	if err != nil {
		return nil, err
	}
	wcr, err := m.WorkingCapitalRatio()
	if err != nil {
		return nil, err
	}
	// cannot fail once the ratio has been computed.
	assets, _ := m.Assets()
	liabilities, _ := m.Liabilities()

	s.GrossProfitMargin = Ratio(gross)
	s.NetProfitMargin = Ratio(net)
	s.WorkingCapitalRatio = Ratio(wcr)
	s.Assets = Money(assets)
	s.Liabilities = Money(liabilities)
	return s, nil
}

// MarshalJSON writes the summary with a stable field order.
func (s *Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", s.Currency)
	if !s.BalanceDate.IsZero() {
		w.Append("balanceDate", s.BalanceDate)
	}
	w.Append("revenue", float64(s.Revenue))
	w.Append("expenses", float64(s.Expenses))
	w.Append("grossProfitMargin", float64(s.GrossProfitMargin))
	w.Append("netProfitMargin", float64(s.NetProfitMargin))
	w.Append("assets", float64(s.Assets))
	w.Append("liabilities", float64(s.Liabilities))
	w.Append("workingCapitalRatio", float64(s.WorkingCapitalRatio))
	return w.MarshalJSON()
}

// UnmarshalJSON reads a summary written by MarshalJSON.
func (s *Summary) UnmarshalJSON(data []byte) error {
	var aux struct {
		Currency            string    `json:"currency"`
		BalanceDate         date.Date `json:"balanceDate"`
		Revenue             float64   `json:"revenue"`
		Expenses            float64   `json:"expenses"`
		GrossProfitMargin   float64   `json:"grossProfitMargin"`
		NetProfitMargin     float64   `json:"netProfitMargin"`
		Assets              float64   `json:"assets"`
		Liabilities         float64   `json:"liabilities"`
		WorkingCapitalRatio float64   `json:"workingCapitalRatio"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*s = Summary{
		Currency:            aux.Currency,
		BalanceDate:         aux.BalanceDate,
		Revenue:             Money(aux.Revenue),
		Expenses:            Money(aux.Expenses),
		GrossProfitMargin:   Ratio(aux.GrossProfitMargin),
		NetProfitMargin:     Ratio(aux.NetProfitMargin),
		Assets:              Money(aux.Assets),
		Liabilities:         Money(aux.Liabilities),
		WorkingCapitalRatio: Ratio(aux.WorkingCapitalRatio),
	}
	return nil
}
