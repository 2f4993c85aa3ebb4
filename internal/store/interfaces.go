// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStorage is the persistence medium for the few values the client
// remembers between runs (last connector config, preferred currency).
//
// Values are opaque strings; callers own their serialization.
type KeyValueStorage interface {
	// GetItem returns the value stored under key. The boolean is false when
	// the key is absent; that is not an error.
	GetItem(ctx context.Context, key string) (string, bool, error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing an absent key is a no-op.
	RemoveItem(ctx context.Context, key string) error
}
