package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/modules/account"
	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestLocalize(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewDefaultTranslator(context.Background())
	require.NoError(t, err)

	req := account.RegisterUserRequest{
		Username:        "eko",
		Password:        "a",
		ConfirmPassword: "b",
		Name:            "Eko Kurniawan",
		Address:         account.AddressRequest{Street: "Jalan", City: "Subang", Country: "Indonesia"},
	}
	vs := validator.ExtractViolations(account.RegisterUserSchema.ValidateWithContext(req, account.DatabaseContext{Total: 5, MaxData: 5}))
	require.NotEmpty(t, vs)

	localized := i18n.Localize(tr, "id", vs)
	require.Len(t, localized, len(vs))

	assert.Equal(t, []string{
		"panjang harus antara 3 dan 20",
		"password dan konfirmasi password tidak sama",
	}, localized.Get("password"))
	assert.Equal(t, []string{"tidak dapat mendaftarkan user eko, database penuh"}, localized.Get("username"))

	t.Run("input is untouched", func(t *testing.T) {
		assert.Equal(t, "length must be between 3 and 20", vs.Get("password")[0])
	})

	t.Run("codes and paths survive", func(t *testing.T) {
		assert.Equal(t, vs.Codes("password"), localized.Codes("password"))
		assert.Equal(t, vs.Fields(), localized.Fields())
	})

	t.Run("language from context", func(t *testing.T) {
		ctx := i18n.WithLanguage(context.Background(), "en")
		assert.Equal(t, []string{"cannot register user eko, database is full"}, i18n.LocalizeContext(ctx, tr, vs).Get("username"))
	})
}

func TestLocalize_Fallbacks(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewDefaultTranslator(context.Background())
	require.NoError(t, err)

	vs := validator.Violations{
		{Field: "a", Path: "a", Index: -1, Code: "custom", Message: "no key"},
		{Field: "b", Path: "b", Index: -1, Code: "x", Message: "unknown key", TranslationKey: "validation.nope"},
		{Field: "c", Path: "c", Index: -1, Code: "one_of", Message: "orig", TranslationKey: "validation.in_list",
			Params: map[string]any{"allowed_values": []string{"draft", "published"}}},
	}

	out := i18n.Localize(tr, "en", vs)
	assert.Equal(t, "no key", out[0].Message)
	assert.Equal(t, "unknown key", out[1].Message)
	assert.Equal(t, "must be one of: draft, published", out[2].Message)

	assert.Nil(t, i18n.Localize(tr, "en", nil))
	assert.Equal(t, vs, i18n.Localize(nil, "en", vs))
}
