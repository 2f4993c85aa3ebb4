package tui

import "github.com/MKhiriev/go-bitcoin-connect/models"

// stateChangedMsg is sent after every store commit. The view re-reads the
// store, so it carries nothing.
type stateChangedMsg struct{}

type connectDoneMsg struct {
	err error
}

type disconnectDoneMsg struct {
	err error
}

type balanceMsg struct {
	balance models.Balance
	err     error
}

type copiedMsg struct {
	err error
}
