package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rulekit/modules/catalog"
	"github.com/dmitrymomot/rulekit/pkg/batch"
	"github.com/dmitrymomot/rulekit/pkg/observe"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

const (
	KindLogin    = "login"
	KindRegister = "register"
	KindCategory = "category"
	KindProduct  = "product"
)

// checkFunc validates the records encoded in data.
type checkFunc func(ctx context.Context, rt *runtime, data []byte, many bool) ([]Outcome, error)

var kinds = map[string]checkFunc{
	KindLogin: func(ctx context.Context, rt *runtime, data []byte, many bool) ([]Outcome, error) {
		return checkRecords(ctx, rt, data, many, rt.accounts.ValidateLogin)
	},
	KindRegister: func(ctx context.Context, rt *runtime, data []byte, many bool) ([]Outcome, error) {
		return checkRecords(ctx, rt, data, many, rt.accounts.ValidateRegistration)
	},
	KindCategory: func(ctx context.Context, rt *runtime, data []byte, many bool) ([]Outcome, error) {
		schema := observe.Wrap[catalog.CreateCategoryRequest, validator.NoContext](catalog.CreateCategorySchema, rt.observeOptions()...)
		return checkRecords(ctx, rt, data, many, schema.Validate)
	},
	KindProduct: func(ctx context.Context, rt *runtime, data []byte, many bool) ([]Outcome, error) {
		schema := observe.Wrap[catalog.Product, validator.NoContext](catalog.ProductSchema, rt.observeOptions()...)
		return checkRecords(ctx, rt, data, many, schema.Validate)
	},
}

// Kinds returns the supported record kinds in sorted order.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookupKind(name string) (checkFunc, error) {
	fn, ok := kinds[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q, valid kinds are: %s", ErrUnknownKind, name, strings.Join(Kinds(), ", "))
	}
	return fn, nil
}

func (rt *runtime) observeOptions() []observe.Option {
	return []observe.Option{observe.WithLogger(rt.logger), observe.WithMetrics(rt.metrics)}
}

// decodeRecords reads one record, or a list of records when many is set, from
// YAML or JSON content. Unknown fields are rejected.
func decodeRecords[T any](data []byte, many bool) ([]T, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var records []T
	if many {
		if err := dec.Decode(&records); err != nil {
			return nil, errors.Join(ErrDecodeRecords, err)
		}
	} else {
		var record T
		if err := dec.Decode(&record); err != nil {
			return nil, errors.Join(ErrDecodeRecords, err)
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

// checkRecords validates every decoded record on the worker pool. Errors that
// are not violations abort the check.
func checkRecords[T any](ctx context.Context, rt *runtime, data []byte, many bool, validate func(context.Context, T) error) ([]Outcome, error) {
	records, err := decodeRecords[T](data, many)
	if err != nil {
		return nil, err
	}

	results, err := batch.Validate(ctx, rt.pool, batch.Func[T](func(record T) error {
		return validate(ctx, record)
	}), records)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(results))
	for _, r := range results {
		if r.Err != nil && !validator.IsValidationError(r.Err) {
			return nil, fmt.Errorf("record %d: %w", r.Index, r.Err)
		}
		outcomes = append(outcomes, newOutcome(r.Index, "", r.Err))
	}
	return outcomes, nil
}
