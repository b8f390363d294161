// Package glmetrics provides the functions and types to turn a general ledger
// export into a handful of accounting ratios. It is designed to run offline,
// once per ledger, and to refuse any input it does not fully understand.
//
// The core functionalities include:
//   - Source Reading: Decoding a raw ledger document from a JSON or YAML file
//     (or stdin), optionally selecting the ledger object with a JSONPath.
//   - Key Normalization: Rewriting snake_case or kebab-case keys to camelCase
//     at any depth, leaving values untouched.
//   - Schema Validation: A strict structural check of the normalized document
//     (required fields, UUIDs, timestamps, no unknown keys, non-empty data).
//   - Accounting Metrics: A stateless engine that sums ledger entries by
//     category, type and debit/credit flag to compute revenue, expenses,
//     margins and the working capital ratio.
//   - Presentation: Money and Ratio types that print as "$1,235" and "12.3%".
//
// This package serves as the foundational logic for the `glm` command-line
// tool.
package glmetrics
