package validator_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestViolations_Error(t *testing.T) {
	t.Run("returns default message when no violations", func(t *testing.T) {
		var vs validator.Violations
		assert.Equal(t, "validation failed", vs.Error())
	})

	t.Run("returns formatted message with single violation", func(t *testing.T) {
		var vs validator.Violations
		vs.Add(validator.Violation{Field: "email", Path: "email", Message: "is required"})
		assert.Equal(t, "validation failed: email: is required", vs.Error())
	})

	t.Run("uses the full path for nested violations", func(t *testing.T) {
		var vs validator.Violations
		vs.Add(validator.Violation{Field: "address", Path: "address.city", Message: "too short"})
		vs.Add(validator.Violation{Field: "password", Path: "password", Message: "too short"})

		msg := vs.Error()
		assert.Contains(t, msg, "address.city: too short")
		assert.Contains(t, msg, "password: too short")
	})
}

func TestViolations_Accessors(t *testing.T) {
	vs := validator.Violations{
		{Field: "username", Path: "username", Index: -1, Code: "length", Message: "too short"},
		{Field: "variants", Path: "variants[1].name", Index: 1, Code: "length", Message: "bad name"},
		{Field: "username", Path: "username", Index: -1, Code: "not_blank", Message: "blank"},
		{Field: "variants", Path: "variants[0].price", Index: 0, Code: "range", Message: "bad price"},
		{Field: "variants", Path: "variants", Index: -1, Code: "min_items", Message: "empty"},
	}

	t.Run("has", func(t *testing.T) {
		assert.True(t, vs.Has("username"))
		assert.True(t, vs.Has("variants"))
		assert.False(t, vs.Has("password"))
	})

	t.Run("get returns messages in insertion order", func(t *testing.T) {
		assert.Equal(t, []string{"too short", "blank"}, vs.Get("username"))
		assert.Nil(t, vs.Get("password"))
	})

	t.Run("codes", func(t *testing.T) {
		assert.Equal(t, []string{"length", "not_blank"}, vs.Codes("username"))
	})

	t.Run("fields keep first-seen order", func(t *testing.T) {
		assert.Equal(t, []string{"username", "variants"}, vs.Fields())
	})

	t.Run("map groups by field", func(t *testing.T) {
		m := vs.Map()
		require.Len(t, m, 2)
		assert.Len(t, m["username"], 2)
		assert.Len(t, m["variants"], 3)
	})

	t.Run("by index skips collection level violations", func(t *testing.T) {
		groups := vs.ByIndex("variants")
		require.Len(t, groups, 2)
		assert.Equal(t, "bad price", groups[0][0].Message)
		assert.Equal(t, "bad name", groups[1][0].Message)
		assert.Empty(t, vs.ByIndex("username"))
	})

	t.Run("len and empty", func(t *testing.T) {
		assert.Equal(t, 5, vs.Len())
		assert.False(t, vs.IsEmpty())
		assert.True(t, validator.Violations{}.IsEmpty())
	})
}

func TestViolations_MarshalJSON(t *testing.T) {
	vs := validator.Violations{
		{Field: "username", Path: "username", Index: -1, Code: "length", Message: "too short",
			Params: map[string]any{"min": 3, "max": 20}},
		{Field: "address", Path: "address.city", Index: -1, Code: "length", Message: "too short"},
		{Field: "variants", Path: "variants[0].name", Index: 0, Code: "length", Message: "too short"},
	}

	data, err := json.Marshal(vs)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"username": [{"code": "length", "message": "too short", "params": {"min": 3, "max": 20}}],
		"address": [{"code": "length", "message": "too short", "path": "address.city"}],
		"variants": [{"code": "length", "message": "too short", "path": "variants[0].name", "index": 0}]
	}`, string(data))

	t.Run("keeps field order", func(t *testing.T) {
		s := string(data)
		assert.Less(t, indexOf(s, `"username"`), indexOf(s, `"address"`))
		assert.Less(t, indexOf(s, `"address"`), indexOf(s, `"variants"`))
	})

	t.Run("empty mapping encodes as empty object", func(t *testing.T) {
		data, err := json.Marshal(validator.Violations{})
		require.NoError(t, err)
		assert.Equal(t, "{}", string(data))
	})
}

func TestExtractViolations(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractViolations(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("unrelated error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractViolations(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("wrapped violations", func(t *testing.T) {
		vs := validator.Violations{{Field: "name", Path: "name", Message: "blank"}}
		err := fmt.Errorf("create category: %w", vs)

		assert.True(t, validator.IsValidationError(err))
		assert.Equal(t, vs, validator.ExtractViolations(err))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestNewViolation(t *testing.T) {
	v := validator.NewViolation("not_blank", "Value cannot be blank")
	assert.Equal(t, "not_blank", v.Code)
	assert.Equal(t, "Value cannot be blank", v.Error())
	assert.Equal(t, -1, v.Index)

	v = validator.NewViolation("can_register", "database is full").
		WithTranslation("account.database_full", map[string]any{"total": 100})
	assert.Equal(t, "account.database_full", v.TranslationKey)
	assert.Equal(t, map[string]any{"total": 100}, v.Params)
	assert.Equal(t, "can_register", v.Code)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "field", validator.KindField.String())
	assert.Equal(t, "nested", validator.KindNested.String())
	assert.Equal(t, "record", validator.KindRecord.String())
	assert.Equal(t, "kind(9)", validator.Kind(9).String())
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
