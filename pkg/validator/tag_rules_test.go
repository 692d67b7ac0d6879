package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestTag(t *testing.T) {
	t.Parallel()

	t.Run("email", func(t *testing.T) {
		rule := validator.Tag[string]("email")
		assert.Nil(t, rule.Validate("eko@example.com"))

		v := rule.Validate("not-an-email")
		require.NotNil(t, v)
		assert.Equal(t, "email", v.Code)
		assert.Equal(t, "must be a valid email address", v.Message)
		assert.Equal(t, "validation.email", v.TranslationKey)
	})

	t.Run("reports the failing tag of a chain", func(t *testing.T) {
		rule := validator.Tag[string]("required,alphanum")

		v := rule.Validate("")
		require.NotNil(t, v)
		assert.Equal(t, "required", v.Code)

		v = rule.Validate("eko-1")
		require.NotNil(t, v)
		assert.Equal(t, "alphanum", v.Code)
		assert.Equal(t, "must contain only letters and numbers", v.Message)
	})

	t.Run("omitempty skips empty values", func(t *testing.T) {
		rule := validator.Tag[string]("omitempty,url")
		assert.Nil(t, rule.Validate(""))
		assert.Nil(t, rule.Validate("https://example.com"))
		assert.NotNil(t, rule.Validate("::not a url"))
	})

	t.Run("tags with params", func(t *testing.T) {
		rule := validator.Tag[int]("gte=12")
		assert.Nil(t, rule.Validate(12))

		v := rule.Validate(11)
		require.NotNil(t, v)
		assert.Equal(t, "gte", v.Code)
		assert.Equal(t, "12", v.Params["param"])
		assert.Equal(t, `failed on the "gte" rule with "12"`, v.Message)
	})

	t.Run("unknown tag panics when the rule is built", func(t *testing.T) {
		assert.PanicsWithValue(t, `validator: invalid tag "no_such_tag": Undefined validation function 'no_such_tag' on field ''`, func() {
			validator.Tag[string]("no_such_tag")
		})
		assert.Panics(t, func() {
			validator.Tag[int]("gte=12,bogus")
		})
	})
}
