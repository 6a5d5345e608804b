// ============================================================================
// roteiro - Itinerary language toolkit
// ============================================================================
//
// Package:     report
// Description: Terminal report renderer using lipgloss
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/roteiro/foundation/roteiro/evaluator"
)

// StyledRenderer writes the report with colors and a border. The overrun
// warning is shown in red.
type StyledRenderer struct {
	width int
}

// NewStyledRenderer creates a styled renderer. A width of 0 lets the box
// size itself to the content.
func NewStyledRenderer(width int) *StyledRenderer {
	return &StyledRenderer{width: width}
}

// Name returns "styled"
func (r *StyledRenderer) Name() string { return "styled" }

// Render writes the styled report
func (r *StyledRenderer) Render(w io.Writer, trip *evaluator.TripState) error {
	if _, err := io.WriteString(w, r.Body(trip)+"\n"); err != nil {
		return renderError(err, "report.Render", r.Name())
	}
	return nil
}

// Body returns the styled report without a trailing newline
func (r *StyledRenderer) Body(trip *evaluator.TripState) string {
	doc := Build(trip)

	sections := []string{
		TitleStyle.Render(doc.Title),
		SubtitleStyle.Render(doc.Destination),
		SubtitleStyle.Render(doc.Period),
		HeadingStyle.Render(ScheduleHeading),
	}

	for _, day := range doc.Days {
		sections = append(sections, DayStyle.Render(fmt.Sprintf("Dia %d:", day.Number)))
		for _, item := range day.Items {
			style := ActivityStyle
			if strings.HasPrefix(item, "Custo:") {
				style = CostStyle
			}
			sections = append(sections, style.Render("- "+item))
		}
	}

	sections = append(sections, HeadingStyle.Render(FinanceHeading))
	lines := doc.Summary.Lines()
	sections = append(sections, lines[0], lines[1])
	if doc.Summary.OverBudget {
		sections = append(sections, OverBudgetStyle.Render(doc.Summary.BalanceLine()))
	} else {
		sections = append(sections, BalanceOKStyle.Render(doc.Summary.BalanceLine()))
	}

	box := BoxStyle
	if r.width > 0 {
		box = box.Width(r.width)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
