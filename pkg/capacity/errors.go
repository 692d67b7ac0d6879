package capacity

import "errors"

var (
	// Resource limit errors
	ErrLimitExceeded       = errors.New("capacity.errors.limit_exceeded")
	ErrInvalidResource     = errors.New("capacity.errors.invalid_resource")
	ErrNoCounterRegistered = errors.New("capacity.errors.no_counter_registered")
	ErrInvalidLimit        = errors.New("capacity.errors.invalid_limit")

	// System errors
	ErrFailedToCountResourceUsage = errors.New("capacity.errors.failed_to_count_resource_usage")

	// Backend errors
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrFailedToParseDBConfig        = errors.New("failed to parse db config")
	ErrFailedToOpenDBConnection     = errors.New("failed to open db connection")
	ErrHealthcheckFailed            = errors.New("healthcheck failed, connection is not available")
)
