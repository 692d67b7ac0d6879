// Package capacity reports how much of a bounded resource is already used.
//
// A Service pairs a per-resource maximum with a CounterFunc that returns the
// current total. Counters can be backed by a constant, a Redis key or a
// PostgreSQL query, so the same capacity check works in tests, in a cache and
// against the database of record.
//
// Basic usage:
//
//	counters := capacity.NewRegistry()
//	counters.Register(capacity.ResourceUsers, capacity.PostgresCounter(pool, "SELECT count(*) FROM users"))
//
//	svc, err := capacity.NewService(map[capacity.Resource]int64{
//	    capacity.ResourceUsers: 10_000,
//	}, counters)
//
//	snap, err := svc.Snapshot(ctx, capacity.ResourceUsers)
//	// snap.Total, snap.Max
//
//	if err := svc.CanCreate(ctx, capacity.ResourceUsers); errors.Is(err, capacity.ErrLimitExceeded) {
//	    // reject
//	}
//
// Limits and counters are registered at startup and never modified
// afterwards, so a Service is safe for concurrent use.
package capacity
