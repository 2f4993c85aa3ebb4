// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-bitcoin-connect/models"
)

func renderBuildInfoWindow(info models.BuildInfo) string {
	body := fmt.Sprintf("Application: Bitcoin Connect\nVersion: %s\nDate: %s\nCommit: %s",
		info.Version, info.Date, info.Commit)
	return renderPage("ABOUT", body, "esc / v: back")
}
