package capacity

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

// StaticCounter always reports n.
func StaticCounter(n int64) CounterFunc {
	return func(context.Context) (int64, error) {
		return n, nil
	}
}

// StringGetter is the subset of the go-redis client used by RedisCounter.
type StringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisCounter reads the counter stored under key. A missing key counts as zero.
func RedisCounter(client StringGetter, key string) CounterFunc {
	return func(ctx context.Context) (int64, error) {
		n, err := client.Get(ctx, key).Int64()
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}
		return n, nil
	}
}

// RowQuerier is the subset of pgx connections and pools used by PostgresCounter.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresCounter runs query and scans the single integer it returns,
// e.g. "SELECT count(*) FROM users WHERE tenant_id = $1".
func PostgresCounter(db RowQuerier, query string, args ...any) CounterFunc {
	return func(ctx context.Context) (int64, error) {
		var n int64
		if err := db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
			return 0, err
		}
		return n, nil
	}
}
