package account

import (
	"context"
	"math"

	"github.com/dmitrymomot/rulekit/pkg/capacity"
)

// DatabaseContext carries the user counts consulted by the can_register rule.
type DatabaseContext struct {
	Total   int64 `json:"total" yaml:"total"`
	MaxData int64 `json:"max_data" yaml:"max_data"`
}

// Full reports whether the user table reached its maximum.
func (c DatabaseContext) Full() bool {
	return c.Total >= c.MaxData
}

// DatabaseContextFrom converts a capacity snapshot. An unlimited resource
// becomes math.MaxInt64 so that Full never reports it as full.
func DatabaseContextFrom(snap capacity.Snapshot) DatabaseContext {
	maxData := snap.Max
	if maxData == capacity.Unlimited {
		maxData = math.MaxInt64
	}
	return DatabaseContext{Total: snap.Total, MaxData: maxData}
}

// LoadDatabaseContext reads the current user counts from svc.
func LoadDatabaseContext(ctx context.Context, svc *capacity.Service) (DatabaseContext, error) {
	snap, err := svc.Snapshot(ctx, capacity.ResourceUsers)
	if err != nil {
		return DatabaseContext{}, err
	}
	return DatabaseContextFrom(snap), nil
}
