// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Status is the derived lifecycle phase of a wallet connection.
type Status string

const (
	StatusDisconnected Status = "disconnected"
	StatusConnecting   Status = "connecting"
	StatusConnected    Status = "connected"
	StatusError        Status = "error"
)

// ResolveStatus derives a Status from the raw connection flags.
//
// Connecting wins over everything else, then connected, then a pending error
// message. With no flag set the connection is simply disconnected.
func ResolveStatus(connected, connecting bool, errMsg string) Status {
	switch {
	case connecting:
		return StatusConnecting
	case connected:
		return StatusConnected
	case errMsg != "":
		return StatusError
	default:
		return StatusDisconnected
	}
}
