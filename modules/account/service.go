package account

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/rulekit/pkg/capacity"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/observe"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Service validates account requests, loading the registration context from
// a capacity source.
type Service struct {
	capacity *capacity.Service
	logger   *slog.Logger
	metrics  *observe.Metrics

	login    *observe.Observed[LoginRequest, validator.NoContext]
	register *observe.Observed[RegisterUserRequest, DatabaseContext]
}

type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records validations into m instead of observe.DefaultMetrics.
func WithMetrics(m *observe.Metrics) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(counts *capacity.Service, opts ...ServiceOption) *Service {
	s := &Service{
		capacity: counts,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	observed := []observe.Option{observe.WithLogger(s.logger), observe.WithMetrics(s.metrics)}
	s.login = observe.Wrap[LoginRequest, validator.NoContext](LoginSchema, observed...)
	s.register = observe.Wrap[RegisterUserRequest, DatabaseContext](RegisterUserSchema, observed...)
	return s
}

// ValidateLogin returns validator.Violations when req breaks a rule.
func (s *Service) ValidateLogin(ctx context.Context, req LoginRequest) error {
	return s.login.Validate(ctx, req)
}

// ValidateRegistration loads the current user counts and validates req
// against them. Failing to read the counts is reported as
// ErrFailedToLoadContext, never as a violation.
func (s *Service) ValidateRegistration(ctx context.Context, req RegisterUserRequest) error {
	if s.capacity == nil {
		return ErrNoCapacitySource
	}

	db, err := LoadDatabaseContext(ctx, s.capacity)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load registration context",
			logger.Schema(RegisterUserSchema.Name()), logger.Error(err))
		return errors.Join(ErrFailedToLoadContext, err)
	}

	s.logger.DebugContext(ctx, "registration context loaded",
		slog.Int64("total", db.Total), slog.Int64("max_data", db.MaxData))
	return s.register.ValidateWithContext(ctx, req, db)
}
