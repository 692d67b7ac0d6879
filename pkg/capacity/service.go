package capacity

import (
	"context"
	"errors"
	"fmt"
	"maps"
)

// Service answers capacity questions for a fixed set of resources.
type Service struct {
	// Treated as immutable after construction.
	limits   map[Resource]int64
	counters CounterRegistry
}

// NewService creates a Service with per-resource maximums. A maximum of
// Unlimited disables the check for that resource.
func NewService(limits map[Resource]int64, counters CounterRegistry) (*Service, error) {
	for res, limit := range limits {
		if limit < Unlimited {
			return nil, errors.Join(ErrInvalidLimit, fmt.Errorf("resource %q has negative limit %d", res, limit))
		}
	}

	if counters == nil {
		counters = NewRegistry()
	}

	return &Service{
		limits:   maps.Clone(limits),
		counters: counters,
	}, nil
}

// Limit returns the configured maximum for res.
func (s *Service) Limit(res Resource) (int64, error) {
	limit, exists := s.limits[res]
	if !exists {
		return 0, ErrInvalidResource
	}
	return limit, nil
}

// Snapshot returns the current total and the maximum for res.
func (s *Service) Snapshot(ctx context.Context, res Resource) (Snapshot, error) {
	limit, err := s.Limit(res)
	if err != nil {
		return Snapshot{}, err
	}

	counter, exists := s.counters[res]
	if !exists {
		return Snapshot{}, ErrNoCounterRegistered
	}

	current, err := counter(ctx)
	if err != nil {
		return Snapshot{}, errors.Join(ErrFailedToCountResourceUsage, err)
	}

	return Snapshot{Resource: res, Total: current, Max: limit}, nil
}

// CanCreate checks if a new instance of res fits under its limit.
func (s *Service) CanCreate(ctx context.Context, res Resource) error {
	limit, err := s.Limit(res)
	if err != nil {
		return err
	}

	// -1 indicates unlimited usage
	if limit == Unlimited {
		return nil
	}

	snap, err := s.Snapshot(ctx, res)
	if err != nil {
		return err
	}

	if snap.Full() {
		return ErrLimitExceeded
	}

	return nil
}

// UsagePercentage returns usage as percentage (0-100, or -1 for unlimited).
// It returns 0 when usage cannot be obtained.
func (s *Service) UsagePercentage(ctx context.Context, res Resource) int {
	snap, err := s.Snapshot(ctx, res)
	if err != nil {
		return 0
	}

	if snap.Max == Unlimited {
		return -1
	}

	if snap.Max == 0 {
		return 100
	}

	return min(int((snap.Total*100)/snap.Max), 100)
}
