// ============================================================================
// roteiro - Itinerary language toolkit
// ============================================================================
//
// Package:     report
// Description: Report document model built from an evaluated trip
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package report

import (
	"fmt"

	"github.com/msto63/roteiro/foundation/roteiro/evaluator"
)

// Report headings
const (
	Title           = "Roteiro de Viagem"
	ScheduleHeading = "Cronograma Detalhado"
	FinanceHeading  = "Resumo Financeiro"
	NotAvailable    = "N/A"
)

// Document is the renderer-independent content of a trip report
type Document struct {
	Title       string  `json:"title" yaml:"title"`
	Destination string  `json:"destination" yaml:"destination"`
	Period      string  `json:"period" yaml:"period"`
	Days        []Day   `json:"days" yaml:"days"`
	Summary     Summary `json:"summary" yaml:"summary"`
}

// Day is one block of the schedule
type Day struct {
	Number int64    `json:"number" yaml:"number"`
	Items  []string `json:"items" yaml:"items"`
}

// Summary holds the financial figures of a trip
type Summary struct {
	Budget     int64 `json:"budget" yaml:"budget"`
	TotalCusto int64 `json:"total_custo" yaml:"total_custo"`
	Saldo      int64 `json:"saldo" yaml:"saldo"`
	OverBudget bool  `json:"over_budget" yaml:"over_budget"`
}

// Summarize computes the financial summary of trip
func Summarize(trip *evaluator.TripState) Summary {
	return Summary{
		Budget:     trip.Budget,
		TotalCusto: trip.TotalCusto,
		Saldo:      trip.Remaining(),
		OverBudget: trip.OverBudget(),
	}
}

// Overrun returns how far the cost exceeds the budget, 0 within budget
func (s Summary) Overrun() int64 {
	if !s.OverBudget {
		return 0
	}
	return -s.Saldo
}

// Lines returns the summary lines in report order
func (s Summary) Lines() []string {
	return []string{
		fmt.Sprintf("Orçamento Total: $%d USD", s.Budget),
		fmt.Sprintf("Custo Total Planejado: $%d USD", s.TotalCusto),
		s.BalanceLine(),
	}
}

// BalanceLine returns the remaining balance or the overrun warning
func (s Summary) BalanceLine() string {
	if s.OverBudget {
		return fmt.Sprintf("ATENÇÃO: Orçamento excedido em $%d USD!", s.Overrun())
	}
	return fmt.Sprintf("Saldo Restante: $%d USD", s.Saldo)
}

// Build creates the report document for trip
func Build(trip *evaluator.TripState) Document {
	doc := Document{
		Title:       Title,
		Destination: DestinationLine(trip),
		Period:      PeriodLine(trip),
		Days:        []Day{},
		Summary:     Summarize(trip),
	}

	for _, day := range trip.Itinerario.Days() {
		items := append([]string{}, trip.Itinerario.Entries(day)...)
		doc.Days = append(doc.Days, Day{Number: day, Items: items})
	}
	return doc
}

// DestinationLine renders "<destino>[, <pais>]", with N/A for a missing
// or empty destination
func DestinationLine(trip *evaluator.TripState) string {
	line := NotAvailable
	if trip.Destino != nil && *trip.Destino != "" {
		line = *trip.Destino
	}
	if trip.Pais != nil && *trip.Pais != "" {
		line += ", " + *trip.Pais
	}
	return line
}

// PeriodLine renders "De <inicio> até <fim>" with N/A for missing dates
func PeriodLine(trip *evaluator.TripState) string {
	inicio, fim := NotAvailable, NotAvailable
	if trip.DataInicio != nil && *trip.DataInicio != "" {
		inicio = trip.DataInicio.String()
	}
	if trip.DataFim != nil && *trip.DataFim != "" {
		fim = trip.DataFim.String()
	}
	return fmt.Sprintf("De %s até %s", inicio, fim)
}
