// Package observe instruments schema validation with Prometheus metrics and
// structured logs.
//
// Wrap decorates any schema exposing Name, Validate and ValidateWithContext:
//
//	login := observe.Wrap(account.LoginSchema, observe.WithLogger(log))
//	if err := login.Validate(ctx, req); err != nil {
//		// err is the schema's own error, unchanged
//	}
//
// Three series are maintained per schema:
//
//	rulekit_validations_total{schema,result}
//	rulekit_violations_total{schema,field,code}
//	rulekit_validation_duration_seconds{schema,result}
//
// result is one of "valid", "invalid" or "error"; the latter covers failures
// that are not violations such as validator.ErrMissingContext.
package observe
