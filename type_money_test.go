package glmetrics

import (
	"math"
	"testing"
)

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		amount float64
		want   string
	}{
		{amount: 1234.56, want: "$1,235"},
		{amount: -1234.56, want: "-$1,235"},
		{amount: 1234.49, want: "$1,234"},
		{amount: 0.5, want: "$1"},
		{amount: -0.5, want: "-$1"},
		{amount: 0, want: "$0"},
		{amount: 999.5, want: "$1,000"},
		{amount: 1000000, want: "$1,000,000"},
		{amount: -9876543.21, want: "-$9,876,543"},
		{amount: 1<<53 - 1, want: "$9,007,199,254,740,991"},
		{amount: 9.2e18, want: "$9,200,000,000,000,000,000"},
		{amount: 9.3e18, want: "$9,300,000,000,000,000,000"},
		{amount: 1e21, want: "$1,000,000,000,000,000,000,000"},
		{amount: -1e21, want: "-$1,000,000,000,000,000,000,000"},
		// the sign comes from the input, not from the rounded value.
		{amount: -0.4, want: "-$0"},
		{amount: math.NaN(), want: "NaN"},
		{amount: math.Inf(-1), want: "-Inf"},
	}
	for _, tc := range testCases {
		if got := Money(tc.amount).String(); got != tc.want {
			t.Errorf("Money(%v).String() = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
