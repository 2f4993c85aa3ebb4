// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"slices"

	"dario.cat/mergo"
)

// ProviderConfig carries provider-specific presentation options.
type ProviderConfig struct {
	// NWCAuthorizationURL overrides the page used to authorize a new NWC
	// connection.
	NWCAuthorizationURL string `json:"nwcAuthorizationUrl,omitempty"`
}

// BitcoinConnectConfig holds widget-level presentation options.
//
// Zero values mean "not specified": empty strings and nil slices/pointers
// fall back to the defaults when the config is merged. Booleans are pointers
// so that an explicit false can override a default of true.
type BitcoinConnectConfig struct {
	AppName        string          `json:"appName,omitempty"`
	AppIcon        string          `json:"appIcon,omitempty"`
	Filters        []string        `json:"filters,omitempty"`
	ShowBalance    *bool           `json:"showBalance,omitempty"`
	ProviderConfig *ProviderConfig `json:"providerConfig,omitempty"`
}

// DefaultBitcoinConnectConfig returns a fresh copy of the documented
// defaults. Callers may modify the result freely.
func DefaultBitcoinConnectConfig() BitcoinConnectConfig {
	showBalance := true
	return BitcoinConnectConfig{
		ShowBalance: &showBalance,
	}
}

// MergeBitcoinConnectConfig shallow-merges partial over the defaults.
//
// The merge base is always DefaultBitcoinConnectConfig, never a previously
// merged value. The result shares no memory with partial.
func MergeBitcoinConnectConfig(partial BitcoinConnectConfig) (BitcoinConnectConfig, error) {
	merged := DefaultBitcoinConnectConfig()
	if err := mergo.Merge(&merged, partial, mergo.WithOverride, mergo.WithoutDereference); err != nil {
		return BitcoinConnectConfig{}, fmt.Errorf("error merging bitcoin connect config: %w", err)
	}

	return merged.Clone(), nil
}

// BalanceVisible reports whether the widget should display the balance.
func (c BitcoinConnectConfig) BalanceVisible() bool {
	return c.ShowBalance != nil && *c.ShowBalance
}

// Clone returns a deep copy of c.
func (c BitcoinConnectConfig) Clone() BitcoinConnectConfig {
	out := c
	out.Filters = slices.Clone(c.Filters)
	if c.ShowBalance != nil {
		v := *c.ShowBalance
		out.ShowBalance = &v
	}
	if c.ProviderConfig != nil {
		p := *c.ProviderConfig
		out.ProviderConfig = &p
	}
	return out
}
