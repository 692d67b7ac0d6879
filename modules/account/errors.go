package account

import "errors"

var (
	ErrNoCapacitySource    = errors.New("account: no capacity source configured")
	ErrFailedToLoadContext = errors.New("account: failed to load registration context")
)
