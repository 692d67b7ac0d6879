package validator

// Rule checks a single field value and reports at most one violation.
// Implementations must not mutate shared state: the same rule value is used
// by every validation call of a schema.
type Rule[V any] interface {
	Validate(value V) *Violation
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc[V any] func(value V) *Violation

func (f RuleFunc[V]) Validate(value V) *Violation {
	return f(value)
}

// Check pairs a predicate with the violation reported when it returns false.
type Check[V any] struct {
	Test  func(value V) bool
	Error Violation
}

func (c Check[V]) Validate(value V) *Violation {
	if c.Test == nil || c.Test(value) {
		return nil
	}
	v := c.Error.clone()
	return &v
}

// WithCode replaces the machine-readable code of the reported violation.
func (c Check[V]) WithCode(code string) Check[V] {
	c.Error.Code = code
	return c
}

// WithMessage replaces the message of the reported violation. The translation
// key is dropped so the explicit message survives localization.
func (c Check[V]) WithMessage(message string) Check[V] {
	c.Error.Message = message
	c.Error.TranslationKey = ""
	return c
}

// WithTranslation replaces the translation key of the reported violation.
func (c Check[V]) WithTranslation(key string) Check[V] {
	c.Error.TranslationKey = key
	return c
}

// Custom registers an externally supplied predicate as a field rule.
// fn returns nil on success. Returning a *Violation (see NewViolation) keeps
// its code and message; any other error is reported under code with the error
// text as message.
func Custom[V any](code string, fn func(value V) error) Rule[V] {
	return RuleFunc[V](func(value V) *Violation {
		err := fn(value)
		if err == nil {
			return nil
		}
		v := violationFromError(err, code)
		return &v
	})
}
