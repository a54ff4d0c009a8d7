package domain

import "errors"

var (
	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrInvalidConfig is returned when a loaded config fails validation.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrStoreUnavailable is returned by a history store running without a database.
	ErrStoreUnavailable = errors.New("history store unavailable")
	// ErrEmptyQuery is returned when an empty query is recorded.
	ErrEmptyQuery = errors.New("query is empty")
	// ErrTransport covers connection failures and non-success HTTP statuses.
	ErrTransport = errors.New("conversation request failed")
	// ErrMalformedResponse is returned when the conversation reply does not have the expected shape.
	ErrMalformedResponse = errors.New("malformed conversation response")
)
