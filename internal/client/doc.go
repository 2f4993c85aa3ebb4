// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It applies the widget configuration, restores the last connection,
// starts the background balance refresh and runs the terminal UI for the
// lifetime of the process.
package client
