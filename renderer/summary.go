package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/glmetrics"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the metrics of a ledger as a markdown report.
func SummaryMarkdown(s *glmetrics.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Ledger Metrics"
	if !s.BalanceDate.IsZero() {
		title = fmt.Sprintf("Ledger Metrics on %s", s.BalanceDate)
	}
	doc.H1(title)
	if s.Currency != "" {
		doc.PlainText(fmt.Sprintf("Amounts in %s.", s.Currency))
	}

	doc.H2("Profitability")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Revenue", s.Revenue.String()},
			{"Expenses", s.Expenses.String()},
			{"Gross Profit Margin", s.GrossProfitMargin.String()},
			{"Net Profit Margin", s.NetProfitMargin.String()},
		},
	})

	doc.H2("Working Capital")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Current Assets", s.Assets.String()},
			{"Current Liabilities", s.Liabilities.String()},
			{"Working Capital Ratio", s.WorkingCapitalRatio.String()},
		},
	})

	return doc.String()
}
