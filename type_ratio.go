package glmetrics

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Ratio is a dimensionless quotient, 0.25 is 25%.
type Ratio float64

// String returns the ratio as a percentage with one decimal, e.g. "12.3%".
// Halves round away from zero, so -0.0005 gives "-0.1%".
func (r Ratio) String() string {
	f := float64(r)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return decimal.NewFromFloat(f).Shift(2).StringFixed(1) + "%"
}
