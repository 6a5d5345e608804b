// ============================================================================
// roteiro - Itinerary language toolkit
// ============================================================================
//
// Package:     report
// Description: Lipgloss styles for terminal reports
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSecondary = lipgloss.Color("#10B981")
	ColorAccent    = lipgloss.Color("#F59E0B")
	ColorError     = lipgloss.Color("#EF4444")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	// Title styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(ColorFg).
			MarginTop(1)

	// Box style around the whole report
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(1, 2)

	// Schedule styles
	DayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	ActivityStyle = lipgloss.NewStyle().
			Foreground(ColorFg).
			PaddingLeft(2)

	CostStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			PaddingLeft(2)

	// Balance styles
	BalanceOKStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	OverBudgetStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)
)
