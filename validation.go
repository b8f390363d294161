package glmetrics

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/etnz/glmetrics/date"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ledgerDoc is the wire form of a Ledger, used only for validation.
// Pointers distinguish a missing (or null) field from an empty one.
type ledgerDoc struct {
	ObjectCategory       *string    `json:"objectCategory" validate:"required"`
	ConnectionID         *string    `json:"connectionId" validate:"required,canonical_uuid"`
	User                 *string    `json:"user" validate:"required,canonical_uuid"`
	ObjectCreationDate   *string    `json:"objectCreationDate" validate:"required,iso8601"`
	Currency             *string    `json:"currency" validate:"required"`
	ObjectOriginType     *string    `json:"objectOriginType" validate:"required"`
	ObjectOriginCategory *string    `json:"objectOriginCategory" validate:"required"`
	ObjectType           *string    `json:"objectType" validate:"required"`
	ObjectClass          *string    `json:"objectClass" validate:"required"`
	BalanceDate          *string    `json:"balanceDate" validate:"required,iso8601"`
	Data                 []entryDoc `json:"data" validate:"required,min=1,dive"`
}

// entryDoc is the wire form of an Entry.
// Optional fields may be absent, but a present optional field must be a string.
type entryDoc struct {
	AccountCategory   *string  `json:"accountCategory" validate:"required"`
	AccountCode       *string  `json:"accountCode" validate:"required"`
	AccountCurrency   *string  `json:"accountCurrency" validate:"required"`
	AccountIdentifier *string  `json:"accountIdentifier" validate:"required,canonical_uuid"`
	AccountStatus     *string  `json:"accountStatus" validate:"required"`
	ValueType         *string  `json:"valueType" validate:"required"`
	AccountName       *string  `json:"accountName" validate:"required"`
	AccountType       string   `json:"accountType"`
	AccountTypeBank   string   `json:"accountTypeBank"`
	SystemAccount     string   `json:"systemAccount"`
	TotalValue        *float64 `json:"totalValue" validate:"required"`
}

// optionalEntryKeys are the entry keys that may be omitted, but not null.
var optionalEntryKeys = []string{"accountType", "accountTypeBank", "systemAccount"}

// validate is safe for concurrent use and caches struct metadata, so there is one.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report camelCase names instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("canonical_uuid", isCanonicalUUID); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("iso8601", isISO8601); err != nil {
		panic(err)
	}
	return v
}

// isCanonicalUUID accepts only the 8-4-4-4-12 hexadecimal form.
func isCanonicalUUID(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return len(s) == 36 && uuid.Validate(s) == nil
}

func isISO8601(fl validator.FieldLevel) bool {
	_, err := date.ParseTimestamp(fl.Field().String())
	return err == nil
}

// Validate checks a normalized ledger document against the ledger schema, and
// returns the typed Ledger it describes.
//
// The check is strict: unknown keys (at any level), missing, null or mistyped
// fields, malformed UUIDs or timestamps, and an empty data array are all
// reported in a *ValidationError. Validate does not transform the document.
func Validate(doc any) (*Ledger, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, &ValidationError{Issues: []Issue{{Message: fmt.Sprintf("not a JSON document: %v", err)}}}
	}

	// The header is decoded first, entries are decoded one by one so that
	// their issues carry an index.
	var head struct {
		ledgerDoc
		Data []json.RawMessage `json:"data"`
	}
	if err := strictDecode(raw, &head); err != nil {
		return nil, &ValidationError{Issues: []Issue{decodeIssue("", err)}}
	}
	ld := head.ledgerDoc
	if head.Data != nil {
		ld.Data = make([]entryDoc, len(head.Data))
	}
	var issues []Issue
	for i, entry := range head.Data {
		issues = append(issues, decodeEntry(fmt.Sprintf("data[%d]", i), entry, &ld.Data[i])...)
	}
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}

	if err := validate.Struct(&ld); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("validating ledger: %w", err)
		}
		issues = make([]Issue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, fieldIssue(fe))
		}
		return nil, &ValidationError{Issues: issues}
	}
	return ld.ledger(), nil
}

// strictDecode decodes raw into v, rejecting unknown keys.
func strictDecode(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// decodeEntry decodes the entry at path into e.
func decodeEntry(path string, raw json.RawMessage, e *entryDoc) []Issue {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return []Issue{decodeIssue(path, err)}
	}
	var issues []Issue
	for _, key := range optionalEntryKeys {
		if v, ok := fields[key]; ok && string(v) == "null" {
			issues = append(issues, Issue{Path: path + "." + key, Message: "expected string, received null"})
		}
	}
	if len(issues) > 0 {
		return issues
	}
	if err := strictDecode(raw, e); err != nil {
		return []Issue{decodeIssue(path, err)}
	}
	return nil
}

// decodeIssue turns a json decoding failure of the object at path into an Issue.
func decodeIssue(path string, err error) Issue {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return Issue{
			Path:    joinPath(path, typeErr.Field),
			Message: fmt.Sprintf("expected %s, received %s", jsonKind(typeErr.Type), typeErr.Value),
		}
	}
	// DisallowUnknownFields reports with a plain error, the key is quoted at the end.
	const unknownField = "json: unknown field "
	if msg := err.Error(); strings.HasPrefix(msg, unknownField) {
		return Issue{
			Path:    joinPath(path, strings.Trim(strings.TrimPrefix(msg, unknownField), `"`)),
			Message: "unrecognized key",
		}
	}
	return Issue{Path: path, Message: err.Error()}
}

func joinPath(path, key string) string {
	switch {
	case path == "":
		return key
	case key == "":
		return path
	default:
		return path + "." + key
	}
}

// jsonKind names the JSON kind expected for a Go type.
func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64:
		return "number"
	case reflect.Slice:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return t.String()
	}
}

// fieldIssue turns a validator field error into an Issue.
func fieldIssue(fe validator.FieldError) Issue {
	// Namespace is "ledgerDoc.data[0].accountIdentifier", the root is dropped.
	_, path, _ := strings.Cut(fe.Namespace(), ".")

	var msg string
	switch fe.Tag() {
	case "required":
		msg = "required"
	case "min":
		msg = fmt.Sprintf("must contain at least %s element(s)", fe.Param())
	case "canonical_uuid":
		msg = fmt.Sprintf("invalid uuid %q", fe.Value())
	case "iso8601":
		msg = fmt.Sprintf("invalid datetime %q", fe.Value())
	default:
		msg = fmt.Sprintf("failed on the %q constraint", fe.Tag())
	}
	return Issue{Path: path, Message: msg}
}

// ledger converts a validated document. Every required pointer is non nil.
func (ld *ledgerDoc) ledger() *Ledger {
	l := &Ledger{
		ObjectCategory:       *ld.ObjectCategory,
		ConnectionID:         *ld.ConnectionID,
		User:                 *ld.User,
		ObjectCreationDate:   *ld.ObjectCreationDate,
		Currency:             *ld.Currency,
		ObjectOriginType:     *ld.ObjectOriginType,
		ObjectOriginCategory: *ld.ObjectOriginCategory,
		ObjectType:           *ld.ObjectType,
		ObjectClass:          *ld.ObjectClass,
		BalanceDate:          *ld.BalanceDate,
		Data:                 make([]Entry, 0, len(ld.Data)),
	}
	for _, e := range ld.Data {
		l.Data = append(l.Data, Entry{
			AccountCategory:   *e.AccountCategory,
			AccountCode:       *e.AccountCode,
			AccountCurrency:   *e.AccountCurrency,
			AccountIdentifier: *e.AccountIdentifier,
			AccountStatus:     *e.AccountStatus,
			ValueType:         *e.ValueType,
			AccountName:       *e.AccountName,
			AccountType:       e.AccountType,
			AccountTypeBank:   e.AccountTypeBank,
			SystemAccount:     e.SystemAccount,
			TotalValue:        *e.TotalValue,
		})
	}
	return l
}
