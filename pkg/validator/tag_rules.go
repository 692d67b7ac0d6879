package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	playground "github.com/go-playground/validator/v10"
)

// tagEngine is shared by every Tag rule; go-playground's Validate is safe for
// concurrent use once configured.
var tagEngine = sync.OnceValue(func() *playground.Validate {
	return playground.New(playground.WithRequiredStructEnabled())
})

var tagMessages = map[string]string{
	"email":    "must be a valid email address",
	"url":      "must be a valid URL",
	"http_url": "must be a valid HTTP URL",
	"alpha":    "must contain only letters",
	"alphanum": "must contain only letters and numbers",
	"numeric":  "must be numeric",
	"ip":       "must be a valid IP address",
	"hostname": "must be a valid hostname",
	"e164":     "must be a phone number in E.164 format",
	"iso4217":  "must be a valid currency code",
	"semver":   "must be a semantic version",
}

// Tag checks a value with go-playground/validator tag syntax, e.g. "email",
// "url" or "omitempty,alphanum". The code of the reported violation is the
// tag that failed. Tag panics when tag is malformed or names an unknown
// validation, so a bad tag fails while the schema is being built.
func Tag[V any](tag string) Rule[V] {
	mustParseTag[V](tag)

	return RuleFunc[V](func(value V) *Violation {
		err := tagEngine().Var(value, tag)
		if err == nil {
			return nil
		}

		var fieldErrs playground.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &Violation{
				Code:           fe.Tag(),
				Message:        tagMessage(fe.Tag(), fe.Param()),
				TranslationKey: "validation." + fe.Tag(),
				Params: map[string]any{
					"tag":   fe.Tag(),
					"param": fe.Param(),
				},
			}
		}

		return &Violation{Code: "tag", Message: err.Error()}
	})
}

// mustParseTag runs tag once against the zero value of V. go-playground parses
// and caches the tag on first use and panics on unknown validations.
func mustParseTag[V any](tag string) {
	// Interface types have no concrete zero value to check against.
	if reflect.TypeFor[V]().Kind() == reflect.Interface {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			panic(fmt.Sprintf("validator: invalid tag %q: %v", tag, r))
		}
	}()

	var zero V
	_ = tagEngine().Var(zero, tag)
}

func tagMessage(tag, param string) string {
	if msg, ok := tagMessages[tag]; ok {
		return msg
	}
	if param != "" {
		return fmt.Sprintf("failed on the %q rule with %q", tag, param)
	}
	return fmt.Sprintf("failed on the %q rule", tag)
}
