package batch_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/batch"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type item struct {
	Name string
}

type limit struct {
	MaxLen int
}

var itemSchema = func() *validator.Schema[item, validator.NoContext] {
	s := validator.New[item, validator.NoContext]("item")
	validator.Field(s, "name", func(i item) string { return i.Name }, validator.Length(1, 5))
	return s
}()

var limitedSchema = func() *validator.Schema[item, limit] {
	s := validator.New[item, limit]("limited_item")
	s.RecordWithContext("name", "too_long", func(i item, l limit) error {
		if len(i.Name) > l.MaxLen {
			return validator.NewViolation("too_long", "name is too long")
		}
		return nil
	})
	return s
}()

func TestValidate(t *testing.T) {
	t.Parallel()

	pool := batch.New(4)
	t.Cleanup(pool.Close)

	records := make([]item, 100)
	for i := range records {
		records[i] = item{Name: fmt.Sprintf("n%d", i)}
	}
	records[7].Name = ""
	records[42].Name = "way too long"

	results, err := batch.Validate(context.Background(), pool, itemSchema, records)
	require.NoError(t, err)
	require.Len(t, results, len(records))

	for i, r := range results {
		assert.Equal(t, i, r.Index)
	}

	failed := batch.Failed(results)
	require.Len(t, failed, 2)
	assert.Equal(t, 7, failed[0].Index)
	assert.Equal(t, 42, failed[1].Index)
	assert.Equal(t, []string{"length"}, failed[1].Violations().Codes("name"))
	assert.Nil(t, results[0].Violations())
}

func TestValidateWithContext(t *testing.T) {
	t.Parallel()

	pool := batch.New(2)
	t.Cleanup(pool.Close)

	records := []item{{Name: "abc"}, {Name: "abcdef"}, {Name: "a"}}
	results, err := batch.ValidateWithContext(context.Background(), pool, limitedSchema, records, limit{MaxLen: 3})
	require.NoError(t, err)

	assert.True(t, results[0].Valid())
	assert.False(t, results[1].Valid())
	assert.True(t, results[2].Valid())
	assert.Equal(t, []string{"name is too long"}, results[1].Violations().Get("name"))
}

func TestValidate_Empty(t *testing.T) {
	t.Parallel()

	pool := batch.New(0)
	t.Cleanup(pool.Close)
	assert.Positive(t, pool.Workers())

	results, err := batch.Validate(context.Background(), pool, itemSchema, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

type countingValidator struct {
	calls atomic.Int32
}

func (c *countingValidator) Validate(item) error {
	c.calls.Add(1)
	return nil
}

func TestValidate_CancelledContext(t *testing.T) {
	t.Parallel()

	pool := batch.New(2)
	t.Cleanup(pool.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := &countingValidator{}
	results, err := batch.Validate(ctx, pool, v, make([]item, 10))
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 10)
	assert.Zero(t, v.calls.Load())

	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.ErrorIs(t, r.Err, context.Canceled)
		assert.Nil(t, r.Violations())
	}
}

func TestFunc(t *testing.T) {
	t.Parallel()

	pool := batch.New(2)
	t.Cleanup(pool.Close)

	check := batch.Func[int](func(n int) error {
		if n%2 != 0 {
			return validator.Violations{{Field: "n", Path: "n", Index: -1, Code: "even", Message: "must be even"}}
		}
		return nil
	})

	results, err := batch.Validate(context.Background(), pool, check, []int{2, 3, 4})
	require.NoError(t, err)
	assert.True(t, results[0].Valid())
	assert.Equal(t, []string{"even"}, results[1].Violations().Codes("n"))
	assert.True(t, results[2].Valid())
}
