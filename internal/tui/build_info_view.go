// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes/models"
)

func renderBuildInfoWindow(title string, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString("Version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Date:    ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit:  ")
	b.WriteString(info.BuildCommit())
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render("esc: back"))

	return overlayBoxStyle.Render(b.String())
}
