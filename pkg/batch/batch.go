package batch

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/alitto/pond/v2"

	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Result is the outcome of validating the record at Index.
type Result struct {
	Index int
	Err   error
}

// Valid reports whether the record passed every rule.
func (r Result) Valid() bool {
	return r.Err == nil
}

// Violations returns the violations of the record, or nil when it passed or
// failed with an error that is not a validation failure.
func (r Result) Violations() validator.Violations {
	return validator.ExtractViolations(r.Err)
}

// Pool runs validations on a fixed number of workers.
type Pool struct {
	pool   pond.Pool
	logger *slog.Logger
}

type Option func(*Pool)

func WithLogger(l *slog.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a pool with the given number of workers. A non-positive count
// uses GOMAXPROCS.
func New(workers int, opts ...Option) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		pool:   pond.NewPool(workers),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Close waits for running validations and stops the workers.
func (p *Pool) Close() {
	p.pool.StopAndWait()
}

// Workers returns the maximum number of concurrent validations.
func (p *Pool) Workers() int {
	return p.pool.MaxConcurrency()
}

// Validator is satisfied by validator.Schema for records without context.
type Validator[T any] interface {
	Validate(record T) error
}

// Func adapts a plain function to Validator.
type Func[T any] func(record T) error

func (f Func[T]) Validate(record T) error {
	return f(record)
}

// ContextValidator is satisfied by validator.Schema.
type ContextValidator[T, C any] interface {
	ValidateWithContext(record T, c C) error
}

// Validate checks every record with schema. The returned error is non-nil
// only when ctx ends before all records were checked.
func Validate[T any](ctx context.Context, p *Pool, schema Validator[T], records []T) ([]Result, error) {
	return run(ctx, p, len(records), func(i int) error {
		return schema.Validate(records[i])
	})
}

// ValidateWithContext checks every record with schema against the same
// validation context c.
func ValidateWithContext[T, C any](ctx context.Context, p *Pool, schema ContextValidator[T, C], records []T, c C) ([]Result, error) {
	return run(ctx, p, len(records), func(i int) error {
		return schema.ValidateWithContext(records[i], c)
	})
}

func run(ctx context.Context, p *Pool, n int, check func(i int) error) ([]Result, error) {
	var (
		mu      sync.Mutex
		closed  bool
		results = make([]Result, n)
		done    = make([]bool, n)
	)

	// Wait returns as soon as ctx ends, so late tasks must not touch results.
	group := p.pool.NewGroupContext(ctx)
	for i := range n {
		group.Submit(func() {
			if ctx.Err() != nil {
				return
			}
			err := check(i)

			mu.Lock()
			defer mu.Unlock()
			if !closed {
				results[i] = Result{Index: i, Err: err}
				done[i] = true
			}
		})
	}
	waitErr := group.Wait()

	mu.Lock()
	defer mu.Unlock()
	closed = true

	err := ctx.Err()
	if err == nil && waitErr != nil {
		err = waitErr
	}
	if err != nil {
		for i := range results {
			if !done[i] {
				results[i] = Result{Index: i, Err: err}
			}
		}
		p.logger.WarnContext(ctx, "batch validation interrupted", logger.Count(n), logger.Error(err))
		return results, err
	}

	p.logger.DebugContext(ctx, "batch validated",
		logger.Count(n),
		slog.Int("failed", len(Failed(results))),
	)
	return results, nil
}

// Failed returns the results that did not pass, in input order.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Valid() {
			out = append(out, r)
		}
	}
	return out
}
