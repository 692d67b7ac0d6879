// Package validator provides a rule-based record validator built from
// explicit, statically constructed rule tables.
//
// A Schema describes one record type: an ordered list of fields, each with
// its own ordered rules, followed by record rules that see the whole record
// and, optionally, an external read-only context. Validating a record runs
// every rule and collects every failure into a Violations value; evaluation
// never stops at the first failure.
//
// # Architecture
//
// Rules are plain values implementing Rule[V]. The built-in families live in
// one file each (`string_rules.go`, `numeric_rules.go`, `collection_rules.go`,
// `uuid_rules.go`, `choice_rules.go`, `pattern_rules.go`, `tag_rules.go`)
// and return Check values that pair a predicate with the violation they
// report. Custom predicates plug in through Custom for fields and through
// Schema.Record / Schema.RecordWithContext for whole records.
//
// Schemas are built once and never mutated afterwards. A validation call
// keeps its state on the stack, so one schema may validate many records from
// many goroutines at the same time.
//
// Core building blocks:
//   - Schema[T, C]  – rule table for record type T and context type C
//   - Field         – rules attached to one field
//   - Nested / Each – recursion into embedded records and slices of records
//   - Violation     – one breach: field, path, code, message, i18n metadata
//   - Violations    – ordered, field-keyed collection implementing error
//
// # Usage
//
//	type Login struct{ Username, Password string }
//
//	var loginSchema = func() *validator.Schema[Login, validator.NoContext] {
//	    s := validator.New[Login, validator.NoContext]("login")
//	    validator.Field(s, "username", func(l Login) string { return l.Username },
//	        validator.Length(3, 20))
//	    validator.Field(s, "password", func(l Login) string { return l.Password },
//	        validator.Length(3, 20))
//	    return s
//	}()
//
//	if err := loginSchema.Validate(login); err != nil {
//	    if vs := validator.ExtractViolations(err); vs != nil {
//	        // vs.Fields(), vs.Get("username"), json.Marshal(vs) ...
//	    }
//	}
//
// # Length and blank checks
//
// Length counts characters (runes after NFC normalization) of the value as
// given. It does not trim: "   " satisfies Length(3, 20) and fails NotBlank.
// Declare both when whitespace-only input must be rejected.
//
// # Error Handling
//
// Violations implements error and matches ErrValidationFailed through
// errors.Is. Programmer errors, such as validating a context-aware schema
// without a context, are reported as ErrMissingContext or ErrContextType and
// never as violations. A panicking custom rule is not recovered.
package validator
