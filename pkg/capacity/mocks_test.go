package capacity_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// MockStringGetter is a mock implementation of capacity.StringGetter.
type MockStringGetter struct {
	mock.Mock
}

func (m *MockStringGetter) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

// MockRowQuerier is a mock implementation of capacity.RowQuerier.
type MockRowQuerier struct {
	mock.Mock
}

func (m *MockRowQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	called := m.Called(ctx, sql, args)
	return called.Get(0).(pgx.Row)
}

// MockCounter records calls to a CounterFunc.
type MockCounter struct {
	mock.Mock
}

func (m *MockCounter) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type fakeRow struct {
	value int64
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.value
	return nil
}
