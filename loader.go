package glmetrics

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"gopkg.in/yaml.v3"
)

// Stdin is the source name that reads the ledger from the standard input.
const Stdin = "-"

// Format is the encoding of a ledger source.
type Format string

const (
	JSON Format = "JSON"
	YAML Format = "YAML"
)

// FormatOf returns the format of a source from its file extension. Anything
// that is not .yaml or .yml is read as JSON.
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// ReadSource reads and decodes the raw ledger document named name.
//
// It returns a *ReadError if the source cannot be opened or read, or if its
// content is not valid (in which case the ReadError wraps a *ParseError).
func ReadSource(name string) (any, error) {
	var r io.Reader
	if name == Stdin {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, &ReadError{Source: name, Err: err}
		}
		defer f.Close()
		r = f
	}

	format := FormatOf(name)
	slog.Debug("reading ledger source", "source", name, "format", format)
	doc, err := Decode(r, format)
	if err != nil {
		return nil, &ReadError{Source: name, Err: err}
	}
	return doc, nil
}

// Decode decodes a single document from r.
//
// JSON objects and arrays are returned as map[string]any and []any. Content
// errors are returned as a *ParseError.
func Decode(r io.Reader, format Format) (any, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc any
	switch format {
	case YAML:
		err = yaml.Unmarshal(content, &doc)
	default:
		err = json.Unmarshal(content, &doc)
	}
	if err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}
	return doc, nil
}

// Select returns the part of doc that path designates, using JSONPath
// syntax (e.g. "$.payload.ledger"). An empty path or "$" returns doc.
func Select(doc any, path string) (any, error) {
	if path == "" || path == "$" {
		return doc, nil
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("selecting %q: %w", path, err)
	}
	// Wildcards and filters always yield a list, a lone match is the document.
	if list, ok := v.([]any); ok && len(list) == 1 {
		v = list[0]
	}
	return v, nil
}

// LoadLedger reads the source name, selects the ledger with path, normalizes
// its keys to camelCase and validates it.
func LoadLedger(name, path string) (*Ledger, error) {
	raw, err := ReadSource(name)
	if err != nil {
		return nil, err
	}
	doc, err := Select(raw, path)
	if err != nil {
		return nil, &ReadError{Source: name, Err: err}
	}
	ledger, err := Validate(Normalize(doc))
	if err != nil {
		return nil, err
	}
	slog.Debug("ledger loaded", "source", name, "entries", len(ledger.Data), "currency", ledger.Currency)
	return ledger, nil
}
