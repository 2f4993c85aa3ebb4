// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the observable state container of the wallet
// connection widget.
//
// A single Store owns the connection lifecycle (connect, disconnect and the
// derived capability flags), the navigation stack that drives the modal's
// multi-step UI, and a few widget-level settings. Every operation applies
// exactly one state transition; subscribers are notified after the commit
// with the new and the previous snapshot, so they never see a half-updated
// state.
//
// The Store is the only owner of the active connector and of the persisted
// keys it writes (see KeyConfig and KeyCurrency).
package state
