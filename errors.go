package glmetrics

import (
	"fmt"
	"strings"
)

// ReadError is returned when a ledger source cannot be read or decoded.
// When the content is not valid structured data, Err is a *ParseError.
type ReadError struct {
	Source string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read ledger source %q: %v", e.Source, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError is returned when a source content is not valid JSON or YAML.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Issue is a single schema violation.
// Path uses the camelCase names, and indexes for entries, e.g. "data[2].totalValue".
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ValidationError lists every violation found in a ledger document.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, i := range e.Issues {
		msgs = append(msgs, i.String())
	}
	return "invalid ledger: " + strings.Join(msgs, "; ")
}

// InvalidCategoryError is returned when a net value is requested for a
// category other than assets or liability.
type InvalidCategoryError struct {
	Category string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category %q: want %q or %q", e.Category, CategoryAssets, CategoryLiability)
}

// DivisionByZeroError is returned when the denominator of a ratio is exactly zero.
type DivisionByZeroError struct {
	Denominator string // e.g. "Revenue"
	Metric      string // e.g. "net profit margin"
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s cannot be zero when calculating the %s", e.Denominator, e.Metric)
}
