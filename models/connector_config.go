// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConnectorType is the discriminator used to pick a connector implementation
// from the registry.
type ConnectorType string

// Canonical connector discriminators. The registry decides which of them are
// actually available at runtime.
const (
	ConnectorTypeExtension ConnectorType = "extension.generic"
	ConnectorTypeNWCAlby   ConnectorType = "nwc.alby"
	ConnectorTypeNWC       ConnectorType = "nwc.generic"
	ConnectorTypeNWCMutiny ConnectorType = "nwc.mutiny"
	ConnectorTypeLNbits    ConnectorType = "lnbits"
	ConnectorTypeLNC       ConnectorType = "lnc"
	ConnectorTypeDev       ConnectorType = "dev"
)

// String returns the raw discriminator value.
func (t ConnectorType) String() string {
	return string(t)
}

// ConnectorConfig describes how to establish a connection with one wallet
// backend. It is the value persisted under the reconnect key, so the JSON
// field names are part of the storage format.
type ConnectorConfig struct {
	// ConnectorType selects the connector implementation.
	ConnectorType ConnectorType `json:"connectorType"`

	// ConnectorName is the human-readable name shown once connected
	// (e.g. "Alby").
	ConnectorName string `json:"connectorName"`

	// NWCURL is the Nostr Wallet Connect URL for nwc.* connectors.
	NWCURL string `json:"nwcUrl,omitempty"`

	// LNbitsAdminKey and LNbitsInstanceURL configure the lnbits connector.
	LNbitsAdminKey    string `json:"lnbitsAdminKey,omitempty"`
	LNbitsInstanceURL string `json:"lnbitsInstanceUrl,omitempty"`

	// LNCPairingPhrase configures the lnc connector.
	LNCPairingPhrase string `json:"lncPairingPhrase,omitempty"`
}
