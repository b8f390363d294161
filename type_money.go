package glmetrics

import (
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount in the ledger currency.
type Money float64

// dollars formats whole units with thousands separators and a "$" grapheme.
var dollars = money.NewFormatter(0, ".", ",", "$", "$1")

// maxUnits is the largest amount the formatter can represent.
var maxUnits = decimal.NewFromInt(math.MaxInt64)

// String returns the amount rounded half-up to a whole unit, e.g. "$1,235"
// or "-$1,235".
func (m Money) String() string {
	f := float64(m)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	// Round on the absolute value so that -0.5 gives "-$1" like 0.5 gives "$1".
	units := decimal.NewFromFloat(f).Abs().Round(0)
	var s string
	if units.LessThanOrEqual(maxUnits) {
		s = dollars.Format(units.IntPart())
	} else {
		s = "$" + groupThousands(units.StringFixed(0))
	}
	if f < 0 {
		s = "-" + s
	}
	return s
}

// groupThousands inserts a "," every three digits of an unsigned integer.
func groupThousands(digits string) string {
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}
