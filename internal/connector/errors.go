package connector

import "errors"

// Sentinel errors describing why a connection attempt failed. They are
// wrapped by the state store, match them with [errors.Is].
var (
	// ErrUnknownConnectorType is returned when the config references a
	// connector type that is not registered.
	ErrUnknownConnectorType = errors.New("unknown connector type")

	// ErrConnectorInit is returned when constructing or initialising the
	// connector failed.
	ErrConnectorInit = errors.New("connector init failed")

	// ErrEnable is returned when the provider refused authorization.
	ErrEnable = errors.New("provider enable failed")

	// ErrInfoFetch marks a failed best-effort info request. It is never
	// fatal for a connection.
	ErrInfoFetch = errors.New("provider info fetch failed")

	// ErrNilFactory is returned when registering a nil factory.
	ErrNilFactory = errors.New("connector factory is nil")

	// ErrEmptyConnectorType is returned when registering an empty type.
	ErrEmptyConnectorType = errors.New("connector type is empty")
)
