// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// MethodGetBalance is the method name a provider advertises when it can
// report its balance.
const MethodGetBalance = "getBalance"

// NodeInfo describes the lightning node behind a provider.
type NodeInfo struct {
	Alias  string `json:"alias"`
	Pubkey string `json:"pubkey,omitempty"`
	Color  string `json:"color,omitempty"`
}

// WalletInfo is the metadata a provider returns after a successful
// connection.
type WalletInfo struct {
	Node     NodeInfo `json:"node"`
	Methods  []string `json:"methods"`
	Version  string   `json:"version,omitempty"`
	Supports []string `json:"supports,omitempty"`
}

// SupportsMethod reports whether method is listed in the advertised methods.
// It is safe to call on a nil *WalletInfo.
func (i *WalletInfo) SupportsMethod(method string) bool {
	if i == nil {
		return false
	}
	return slices.Contains(i.Methods, method)
}

// Clone returns a deep copy of the info so snapshots never share slices.
func (i *WalletInfo) Clone() *WalletInfo {
	if i == nil {
		return nil
	}
	c := *i
	c.Methods = slices.Clone(i.Methods)
	c.Supports = slices.Clone(i.Supports)
	return &c
}

// Balance is the spendable balance reported by a provider.
type Balance struct {
	Amount   int64  `json:"balance"`
	Currency string `json:"currency,omitempty"`
}
