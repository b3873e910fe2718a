// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-art-vault/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	disabledStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	selectedStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
)

// palette is the colour set of a view theme.
type palette struct {
	accent   lipgloss.Color
	entering lipgloss.Color
}

func paletteFor(theme models.Theme) palette {
	if theme == models.ThemeBlue {
		return palette{accent: lipgloss.Color("33"), entering: lipgloss.Color("45")}
	}
	return palette{accent: lipgloss.Color("250"), entering: lipgloss.Color("214")}
}

func tileStyle(p palette, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.accent).
		Width(width).
		Padding(0, 1)
}
