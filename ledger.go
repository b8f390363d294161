package glmetrics

// Account categories known to the metrics engine. The taxonomy is open: other
// categories are accepted by the validator and simply ignored by the metrics.
const (
	CategoryRevenue   = "revenue"
	CategoryExpense   = "expense"
	CategoryAssets    = "assets"
	CategoryLiability = "liability"
)

// Account types the metrics engine looks at.
const (
	TypeSales                     = "sales"
	TypeOverheads                 = "overheads"
	TypeCurrent                   = "current"
	TypeBank                      = "bank"
	TypeCurrentAccountsReceivable = "current_accounts_receivable"
	TypeCurrentAccountsPayable    = "current_accounts_payable"
)

// Value types of an entry.
const (
	ValueDebit  = "debit"
	ValueCredit = "credit"
)

// Entry is one row of financial activity in a ledger.
type Entry struct {
	AccountCategory   string  `json:"accountCategory"`
	AccountCode       string  `json:"accountCode"`
	AccountCurrency   string  `json:"accountCurrency"`
	AccountIdentifier string  `json:"accountIdentifier"`
	AccountStatus     string  `json:"accountStatus"`
	ValueType         string  `json:"valueType"`
	AccountName       string  `json:"accountName"`
	AccountType       string  `json:"accountType,omitempty"`
	AccountTypeBank   string  `json:"accountTypeBank,omitempty"`
	SystemAccount     string  `json:"systemAccount,omitempty"`
	TotalValue        float64 `json:"totalValue"`
}

// Ledger is a validated general ledger document: an opaque header and a
// non-empty list of entries.
//
// A Ledger is only obtained through Validate (or LoadLedger), and must be
// treated as immutable afterwards.
type Ledger struct {
	ObjectCategory       string  `json:"objectCategory"`
	ConnectionID         string  `json:"connectionId"`
	User                 string  `json:"user"`
	ObjectCreationDate   string  `json:"objectCreationDate"`
	Currency             string  `json:"currency"`
	ObjectOriginType     string  `json:"objectOriginType"`
	ObjectOriginCategory string  `json:"objectOriginCategory"`
	ObjectType           string  `json:"objectType"`
	ObjectClass          string  `json:"objectClass"`
	BalanceDate          string  `json:"balanceDate"`
	Data                 []Entry `json:"data"`
}
