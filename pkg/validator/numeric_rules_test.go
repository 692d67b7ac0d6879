package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestRange(t *testing.T) {
	t.Parallel()

	price := validator.Range[int32](12, 100000000)

	tests := []struct {
		name  string
		value int32
		ok    bool
	}{
		{"lower bound", 12, true},
		{"upper bound", 100000000, true},
		{"inside", 1000, true},
		{"below", 11, false},
		{"negative", -1000, false},
		{"above", 100000001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := price.Validate(tt.value)
			if tt.ok {
				assert.Nil(t, v)
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, "range", v.Code)
			assert.Equal(t, "must be between 12 and 100000000", v.Message)
			assert.Equal(t, "validation.range", v.TranslationKey)
		})
	}
}

func TestRange_Float(t *testing.T) {
	t.Parallel()

	score := validator.Range(0.0, 100.0)
	assert.Nil(t, score.Validate(85.5))
	assert.NotNil(t, score.Validate(100.01))
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	t.Run("min", func(t *testing.T) {
		assert.Nil(t, validator.Min(18).Validate(18))
		v := validator.Min(18).Validate(17)
		require.NotNil(t, v)
		assert.Equal(t, "min", v.Code)
		assert.Equal(t, "must be at least 18", v.Message)
		assert.Equal(t, 18, v.Params["min"])
	})

	t.Run("max", func(t *testing.T) {
		assert.Nil(t, validator.Max[uint](10).Validate(10))
		v := validator.Max[uint](10).Validate(11)
		require.NotNil(t, v)
		assert.Equal(t, "max", v.Code)
		assert.Equal(t, "must be at most 10", v.Message)
	})
}
