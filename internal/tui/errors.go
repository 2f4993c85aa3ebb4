// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-bitcoin-connect/internal/state"
	"github.com/MKhiriev/go-bitcoin-connect/models"
)

var ErrNilStore = errors.New("tui: store is nil")

// humanizeError turns the stored connection error into a message for the
// error overlay.
func humanizeError(st state.State) string {
	switch st.ErrorKind {
	case models.ErrorKindUnknownConnectorType:
		return "This wallet is not available here.\n" + st.Error
	case models.ErrorKindConnectorInit:
		return "Could not start the wallet connector.\n" + st.Error
	case models.ErrorKindEnable:
		return "The wallet refused the connection.\n" + st.Error
	case models.ErrorKindCanceled:
		return "The connection attempt timed out or was canceled."
	default:
		return st.Error
	}
}
