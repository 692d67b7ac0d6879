package validator

import (
	"fmt"
	"slices"
)

// NoContext is the context type of schemas whose rules never consult external data.
type NoContext = struct{}

// Schema is the rule table of record type T. Context-aware record rules receive
// a value of type C supplied through ValidateWithContext.
//
// A schema is built once, typically into a package-level variable, and is
// read-only afterwards, so concurrent validation calls need no locking.
type Schema[T, C any] struct {
	name         string
	fields       []fieldEntry[T]
	records      []recordEntry[T, C]
	needsContext bool
}

// Nester is implemented by schemas that can be embedded into a parent schema
// through Nested or Each.
type Nester[N any] interface {
	collect(value N, e *evaluation) (Violations, error)
	requiresContext() bool
}

type evaluation struct {
	ctx    any
	hasCtx bool
}

type fieldEntry[T any] struct {
	name string
	run  func(record T, e *evaluation) (Violations, error)
}

type recordEntry[T, C any] struct {
	field             string
	code              string
	message           string
	skipOnFieldErrors bool
	dependsOn         []string
	check             func(record T) error
	checkWithContext  func(record T, c C) error
}

// New creates an empty schema. The name shows up in logs and metrics.
func New[T, C any](name string) *Schema[T, C] {
	return &Schema[T, C]{name: name}
}

func (s *Schema[T, C]) Name() string {
	return s.name
}

// Fields returns the declared field names in declaration order.
func (s *Schema[T, C]) Fields() []string {
	names := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		names = append(names, f.name)
	}
	return names
}

// RequiresContext reports whether the schema, or any schema nested in it,
// declares context-aware record rules.
func (s *Schema[T, C]) RequiresContext() bool {
	return s.needsContext
}

func (s *Schema[T, C]) requiresContext() bool {
	return s.needsContext
}

// Field attaches rules to a field. Rules run in the given order and every rule
// runs, so one field may collect several violations.
func Field[T, C, V any](s *Schema[T, C], name string, get func(record T) V, rules ...Rule[V]) *Schema[T, C] {
	s.fields = append(s.fields, fieldEntry[T]{
		name: name,
		run: func(record T, _ *evaluation) (Violations, error) {
			return applyRules(name, get(record), rules), nil
		},
	})
	return s
}

// Nested validates an embedded record with its own schema and reports the
// child violations under name, e.g. "address.street".
func Nested[T, C, N any](s *Schema[T, C], name string, get func(record T) N, child Nester[N]) *Schema[T, C] {
	if child.requiresContext() {
		s.needsContext = true
	}
	s.fields = append(s.fields, fieldEntry[T]{
		name: name,
		run: func(record T, e *evaluation) (Violations, error) {
			vs, err := child.collect(get(record), e)
			if err != nil {
				return nil, err
			}
			for i := range vs {
				vs[i].Path = name + "." + vs[i].Path
				vs[i].Field = name
				vs[i].Index = -1
				vs[i].Kind = KindNested
			}
			return vs, nil
		},
	})
	return s
}

// Each applies collection rules to a slice field, then validates every element
// with the child schema. Element violations are reported under name and tagged
// with the element index. An empty slice only fails through collection rules
// such as MinItems.
func Each[T, C, N any](s *Schema[T, C], name string, get func(record T) []N, child Nester[N], rules ...Rule[[]N]) *Schema[T, C] {
	if child.requiresContext() {
		s.needsContext = true
	}
	s.fields = append(s.fields, fieldEntry[T]{
		name: name,
		run: func(record T, e *evaluation) (Violations, error) {
			items := get(record)
			out := applyRules(name, items, rules)
			for i, item := range items {
				vs, err := child.collect(item, e)
				if err != nil {
					return nil, err
				}
				for j := range vs {
					vs[j].Path = fmt.Sprintf("%s[%d].%s", name, i, vs[j].Path)
					vs[j].Field = name
					vs[j].Index = i
					vs[j].Kind = KindNested
				}
				out = append(out, vs...)
			}
			return out, nil
		},
	})
	return s
}

func applyRules[V any](name string, value V, rules []Rule[V]) Violations {
	var out Violations
	for _, r := range rules {
		v := r.Validate(value)
		if v == nil {
			continue
		}
		// Rules may return a shared violation; annotate a copy.
		vv := v.clone()
		vv.Field = name
		vv.Path = name
		vv.Index = -1
		vv.Kind = KindField
		out = append(out, vv)
	}
	return out
}

// RecordOption configures a record rule.
type RecordOption func(*recordConfig)

type recordConfig struct {
	message           string
	skipOnFieldErrors bool
	dependsOn         []string
}

// WithMessage overrides the message of the violation a record rule reports.
func WithMessage(message string) RecordOption {
	return func(c *recordConfig) {
		c.message = message
	}
}

// SkipOnFieldErrors skips the record rule when field rules already reported
// violations. Without DependsOn any field violation counts.
func SkipOnFieldErrors() RecordOption {
	return func(c *recordConfig) {
		c.skipOnFieldErrors = true
	}
}

// DependsOn narrows SkipOnFieldErrors to violations of the listed fields.
func DependsOn(fields ...string) RecordOption {
	return func(c *recordConfig) {
		c.dependsOn = append(c.dependsOn, fields...)
	}
}

// Record attaches a cross-field rule. fn receives the whole record and returns
// nil on success. The violation is reported under field (RecordField when
// empty) with the given code; a *Violation returned by fn supplies the message
// unless WithMessage overrides it.
func (s *Schema[T, C]) Record(field, code string, fn func(record T) error, opts ...RecordOption) *Schema[T, C] {
	s.records = append(s.records, newRecordEntry[T, C](field, code, opts, fn, nil))
	return s
}

// RecordWithContext attaches a record rule that also reads the validation
// context. Schemas holding such rules must be validated with ValidateWithContext.
func (s *Schema[T, C]) RecordWithContext(field, code string, fn func(record T, c C) error, opts ...RecordOption) *Schema[T, C] {
	s.records = append(s.records, newRecordEntry[T, C](field, code, opts, nil, fn))
	s.needsContext = true
	return s
}

func newRecordEntry[T, C any](field, code string, opts []RecordOption, fn func(T) error, ctxFn func(T, C) error) recordEntry[T, C] {
	cfg := recordConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if field == "" {
		field = RecordField
	}
	return recordEntry[T, C]{
		field:             field,
		code:              code,
		message:           cfg.message,
		skipOnFieldErrors: cfg.skipOnFieldErrors,
		dependsOn:         cfg.dependsOn,
		check:             fn,
		checkWithContext:  ctxFn,
	}
}

func (r recordEntry[T, C]) violation(err error) Violation {
	v := violationFromError(err, r.code)
	if r.code != "" {
		v.Code = r.code
	}
	if r.message != "" {
		v.Message = r.message
		v.TranslationKey = ""
	}
	v.Field = r.field
	v.Path = r.field
	v.Index = -1
	v.Kind = KindRecord
	return v
}

func (r recordEntry[T, C]) shouldSkip(fieldViolations Violations) bool {
	if !r.skipOnFieldErrors || len(fieldViolations) == 0 {
		return false
	}
	if len(r.dependsOn) == 0 {
		return true
	}
	for _, v := range fieldViolations {
		if slices.Contains(r.dependsOn, v.Field) {
			return true
		}
	}
	return false
}

// Validate evaluates every rule of the schema against record. It returns nil
// when no rule fails and Violations otherwise; it never stops at the first
// failure. Schemas with context-aware rules return ErrMissingContext.
func (s *Schema[T, C]) Validate(record T) error {
	if s.needsContext {
		return ErrMissingContext
	}
	return finish(s.collect(record, &evaluation{}))
}

// ValidateWithContext is Validate with an external read-only context passed to
// context-aware record rules.
func (s *Schema[T, C]) ValidateWithContext(record T, c C) error {
	return finish(s.collect(record, &evaluation{ctx: c, hasCtx: true}))
}

// Violations is Validate returning the collected mapping directly.
func (s *Schema[T, C]) Violations(record T) (Violations, error) {
	if s.needsContext {
		return nil, ErrMissingContext
	}
	return s.collect(record, &evaluation{})
}

func finish(vs Violations, err error) error {
	if err != nil {
		return err
	}
	if vs.IsEmpty() {
		return nil
	}
	return vs
}

func (s *Schema[T, C]) collect(record T, e *evaluation) (Violations, error) {
	var out Violations
	for _, f := range s.fields {
		vs, err := f.run(record, e)
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)
	}

	fieldViolations := out[:len(out):len(out)]
	for _, r := range s.records {
		if r.shouldSkip(fieldViolations) {
			continue
		}

		var err error
		if r.checkWithContext != nil {
			if !e.hasCtx {
				return nil, ErrMissingContext
			}
			c, ok := e.ctx.(C)
			if !ok {
				return nil, fmt.Errorf("%w: schema %q wants %T, got %T", ErrContextType, s.name, c, e.ctx)
			}
			err = r.checkWithContext(record, c)
		} else if r.check != nil {
			err = r.check(record)
		}

		if err != nil {
			out = append(out, r.violation(err))
		}
	}

	return out, nil
}
