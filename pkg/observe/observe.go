package observe

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Validator is the part of validator.Schema that Observed decorates.
type Validator[T, C any] interface {
	Name() string
	Validate(record T) error
	ValidateWithContext(record T, c C) error
}

type options struct {
	metrics *Metrics
	logger  *slog.Logger
	now     func() time.Time
}

type Option func(*options)

// WithMetrics records into m instead of DefaultMetrics.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithLogger logs every validation outcome to l. Valid records are logged at
// debug level, rejected ones at info and errors at error level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Observed is a schema whose validations are measured and logged.
type Observed[T, C any] struct {
	schema  Validator[T, C]
	metrics *Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// Wrap returns schema decorated with metrics and logging.
func Wrap[T, C any](schema Validator[T, C], opts ...Option) *Observed[T, C] {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.metrics == nil {
		o.metrics = DefaultMetrics()
	}
	o.metrics.init(schema.Name())

	return &Observed[T, C]{
		schema:  schema,
		metrics: o.metrics,
		logger:  o.logger.With(logger.Component("validator")),
		now:     o.now,
	}
}

// Name returns the wrapped schema's name.
func (o *Observed[T, C]) Name() string {
	return o.schema.Name()
}

// Validate runs the wrapped schema's Validate and returns its error unchanged.
func (o *Observed[T, C]) Validate(ctx context.Context, record T) error {
	start := o.now()
	err := o.schema.Validate(record)
	o.observe(ctx, start, err)
	return err
}

// ValidateWithContext runs the wrapped schema's ValidateWithContext and
// returns its error unchanged.
func (o *Observed[T, C]) ValidateWithContext(ctx context.Context, record T, c C) error {
	start := o.now()
	err := o.schema.ValidateWithContext(record, c)
	o.observe(ctx, start, err)
	return err
}

func (o *Observed[T, C]) observe(ctx context.Context, start time.Time, err error) {
	elapsed := o.now().Sub(start)
	name := o.schema.Name()
	result := Result(err)

	o.metrics.validations.WithLabelValues(name, result).Inc()
	o.metrics.duration.WithLabelValues(name, result).Observe(elapsed.Seconds())

	attrs := []slog.Attr{logger.Schema(name), logger.Duration(elapsed)}
	switch result {
	case ResultValid:
		o.logger.LogAttrs(ctx, slog.LevelDebug, "record is valid", attrs...)
	case ResultInvalid:
		vs := validator.ExtractViolations(err)
		for _, v := range vs {
			o.metrics.violations.WithLabelValues(name, v.Field, v.Code).Inc()
		}
		o.logger.LogAttrs(ctx, slog.LevelInfo, "record rejected", append(attrs, logger.Violations(err))...)
	default:
		o.logger.LogAttrs(ctx, slog.LevelError, "validation failed", append(attrs, logger.Error(err))...)
	}
}

// Result classifies the outcome of a validation as ResultValid,
// ResultInvalid or ResultError.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultValid
	case errors.Is(err, validator.ErrValidationFailed):
		return ResultInvalid
	default:
		return ResultError
	}
}
