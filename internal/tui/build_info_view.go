// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-trackspense/models"
)

// renderBuildInfoWindow shows the client build and the API version; an
// empty serverVersion means it is still being fetched.
func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString("Application: Trackspense\n")
	for _, line := range info.Lines() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("Server version: ")
	if serverVersion == "" {
		b.WriteString("loading...")
	} else {
		b.WriteString(serverVersion)
	}

	return renderPage("ABOUT", b.String(), "esc: back")
}
