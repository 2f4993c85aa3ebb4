// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-bitcoin-connect/internal/connector"
	"github.com/MKhiriev/go-bitcoin-connect/internal/logger"
	"github.com/MKhiriev/go-bitcoin-connect/internal/store"
)

// Listener is called after every commit with the new and the previous
// snapshot.
type Listener func(next, prev State)

type subscription struct {
	id uint64
	fn Listener
}

// Option configures a Store.
type Option func(*Store)

// WithConnectTimeout bounds every connect attempt. Zero disables the bound.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(s *Store) {
		s.connectTimeout = timeout
	}
}

// Store is the observable state container.
//
// Commits are serialised by a mutex. Listeners run after the mutex is
// released, one commit at a time and in subscription order. A listener may
// call Get but must not call a mutating method synchronously.
type Store struct {
	storage  store.KeyValueStorage
	registry *connector.Registry
	log      *logger.Logger

	connectTimeout time.Duration

	mu      sync.Mutex
	state   State
	attempt uint64
	subs    []subscription
	nextSub uint64

	notifyMu sync.Mutex

	// persistMu orders KeyConfig writes with the attempt check.
	persistMu sync.Mutex
}

// persistTimeout bounds the storage calls that follow a connect chain. They
// run detached from the attempt's context, which may already be done.
const persistTimeout = 5 * time.Second

// New creates a Store in the initial disconnected state on the start route.
func New(storage store.KeyValueStorage, registry *connector.Registry, log *logger.Logger, opts ...Option) (*Store, error) {
	if storage == nil {
		return nil, ErrNilStorage
	}
	if registry == nil {
		return nil, ErrNilRegistry
	}
	if log == nil {
		log = logger.Nop()
	}

	s := &Store{
		storage:  storage,
		registry: registry,
		log:      log,
		state:    initialState(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Get returns a copy of the current state.
func (s *Store) Get() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is safe.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.subs = slices.DeleteFunc(s.subs, func(sub subscription) bool {
				return sub.id == id
			})
		})
	}
}

// commit applies fn to a copy of the current state under the lock. When fn
// returns false nothing is committed and nobody is notified.
func (s *Store) commit(fn func(st *State) bool) bool {
	s.mu.Lock()
	prev := s.state
	next := prev.clone()
	if !fn(&next) {
		s.mu.Unlock()
		return false
	}
	s.state = next
	subs := slices.Clone(s.subs)

	// keep notification order equal to commit order
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	for _, sub := range subs {
		sub.fn(next.clone(), prev.clone())
	}
	return true
}
