package store

import "errors"

// Sentinel errors returned by storage methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEmptyKey is returned when an operation is called with an empty key.
	ErrEmptyKey = errors.New("storage key is empty")

	// ErrStorageClosed is returned by the in-memory storage after Close.
	ErrStorageClosed = errors.New("storage is closed")
)

// Low-level database operation errors. These are wrapped by the SQLite
// storage when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan kv row")
)
