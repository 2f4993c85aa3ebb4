// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package connector defines the capabilities the state store consumes from
// wallet backends and the registry that maps a connector type discriminator
// to a factory.
//
// A [Connector] is constructed from a [models.ConnectorConfig] by a
// [Factory], initialised once to obtain a [Provider], and unloaded when the
// connection ends. Providers expose optional capabilities through the
// [InfoProvider] and [BalanceProvider] interfaces, detected with type
// assertions.
package connector
