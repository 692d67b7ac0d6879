package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// RecordField is the key used for record rule violations declared without a field.
const RecordField = "__all__"

// Kind tells where in a record a violation was produced.
type Kind uint8

const (
	// KindField is a breach of a rule attached directly to a field.
	KindField Kind = iota
	// KindNested is a breach inside an embedded record or a collection element.
	KindNested
	// KindRecord is a breach of a cross-field or context-aware record rule.
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindNested:
		return "nested"
	case KindRecord:
		return "record"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Violation represents a single constraint breach with translation support.
//
// Field is the top-level key the violation is grouped under. Path is the full
// location inside the record, e.g. "address.street" or "variants[1].price";
// for direct field violations it equals Field. Index is the element index of
// the top-level collection field, or -1.
type Violation struct {
	Field          string
	Path           string
	Index          int
	Kind           Kind
	Code           string
	Message        string
	TranslationKey string
	Params         map[string]any
}

// NewViolation builds a violation for custom rule functions to return as an error.
func NewViolation(code, message string) *Violation {
	return &Violation{Code: code, Message: message, Index: -1}
}

// WithTranslation sets the catalog key and template parameters used to
// localize the message.
func (v *Violation) WithTranslation(key string, params map[string]any) *Violation {
	v.TranslationKey = key
	v.Params = params
	return v
}

func (v Violation) Error() string {
	loc := v.Path
	if loc == "" {
		loc = v.Field
	}
	if loc == "" {
		return v.Message
	}
	return fmt.Sprintf("%s: %s", loc, v.Message)
}

func (v Violation) clone() Violation {
	v.Params = maps.Clone(v.Params)
	return v
}

// Violations is the ordered violation mapping produced by one validation call.
// Violations of the same field keep their insertion order, and fields are
// reported in the order they were first seen.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, v.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports ErrValidationFailed as a match so callers can use errors.Is.
func (vs Violations) Is(target error) bool {
	return target == ErrValidationFailed
}

func (vs *Violations) Add(v Violation) {
	*vs = append(*vs, v)
}

func (vs Violations) Has(field string) bool {
	for _, v := range vs {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field.
func (vs Violations) Get(field string) []string {
	var messages []string
	for _, v := range vs {
		if v.Field == field {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// Codes returns the codes recorded for field.
func (vs Violations) Codes(field string) []string {
	var codes []string
	for _, v := range vs {
		if v.Field == field {
			codes = append(codes, v.Code)
		}
	}
	return codes
}

func (vs Violations) GetErrors(field string) Violations {
	var out Violations
	for _, v := range vs {
		if v.Field == field {
			out = append(out, v)
		}
	}
	return out
}

func (vs Violations) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, v := range vs {
		if !seen[v.Field] {
			fields = append(fields, v.Field)
			seen[v.Field] = true
		}
	}
	return fields
}

// Map returns the field-keyed view of the violations.
func (vs Violations) Map() map[string]Violations {
	m := make(map[string]Violations)
	for _, v := range vs {
		m[v.Field] = append(m[v.Field], v)
	}
	return m
}

// ByIndex groups the element violations of a collection field by element index.
// Violations of the field that do not belong to an element are left out.
func (vs Violations) ByIndex(field string) map[int]Violations {
	groups := make(map[int]Violations)
	for _, v := range vs {
		if v.Field == field && v.Index >= 0 {
			groups[v.Index] = append(groups[v.Index], v)
		}
	}
	return groups
}

func (vs Violations) Len() int {
	return len(vs)
}

func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

type violationJSON struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Path    string         `json:"path,omitempty"`
	Index   *int           `json:"index,omitempty"`
	Params  map[string]any `json:"params,omitempty"`
}

// MarshalJSON encodes the mapping as an object keyed by field, keeping the
// first-seen field order.
func (vs Violations) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range vs.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		items := make([]violationJSON, 0)
		for _, v := range vs.GetErrors(field) {
			item := violationJSON{Code: v.Code, Message: v.Message, Params: v.Params}
			if v.Path != v.Field {
				item.Path = v.Path
			}
			if v.Index >= 0 {
				idx := v.Index
				item.Index = &idx
			}
			items = append(items, item)
		}
		encoded, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ExtractViolations extracts Violations from an error.
func ExtractViolations(err error) Violations {
	if err == nil {
		return nil
	}

	var vs Violations
	if errors.As(err, &vs) {
		return vs
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var vs Violations
	return errors.As(err, &vs)
}

// violationFromError turns the error returned by a custom rule function into a
// violation. A returned *Violation keeps its own code and message; any other
// error becomes a violation with the fallback code and the error text.
func violationFromError(err error, code string) Violation {
	var v Violation
	var ptr *Violation
	switch {
	case errors.As(err, &ptr) && ptr != nil:
		v = ptr.clone()
	case errors.As(err, &v):
		v = v.clone()
	default:
		return Violation{Code: code, Message: err.Error(), Index: -1}
	}
	if v.Code == "" {
		v.Code = code
	}
	return v
}
