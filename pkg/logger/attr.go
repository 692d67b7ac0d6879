package logger

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Schema records the schema name under the key "schema".
func Schema(name string) slog.Attr {
	return slog.String("schema", name)
}

// Field records a record field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Violations summarizes a validation failure under the key "violations":
// the violation count and the failing fields in report order.
// Errors that carry no violations are logged with Error; nil gives an empty Attr.
func Violations(err error) slog.Attr {
	vs := validator.ExtractViolations(err)
	if vs == nil {
		return Error(err)
	}
	return Group("violations",
		slog.Int("count", vs.Len()),
		slog.Any("fields", vs.Fields()),
	)
}

// Count records a count under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Command records the CLI command name under the key "command".
func Command(name string) slog.Attr {
	return slog.String("command", name)
}

// Kind records the record kind under the key "kind".
func Kind(name string) slog.Attr {
	return slog.String("kind", name)
}

// Lang records the message language under the key "lang".
func Lang(lang string) slog.Attr {
	return slog.String("lang", lang)
}
