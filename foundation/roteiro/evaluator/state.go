// File: state.go
// Title: Trip State
// Description: The record the evaluator fills in while walking a program:
//              destination, dates, budget, accumulated cost and the
//              per-day itinerary.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial trip state implementation

package evaluator

import (
	"fmt"
	"sort"

	mdwast "github.com/msto63/roteiro/foundation/roteiro/ast"
)

// Field names accepted by TripState.Field
const (
	FieldDestino    = "destino"
	FieldPais       = "pais"
	FieldDataInicio = "data_inicio"
	FieldDataFim    = "data_fim"
	FieldBudget     = "budget"
	FieldTotalCusto = "total_custo"
	FieldItinerario = "itinerario"
	FieldCurrentDay = "current_day"
)

// FieldNames lists every field in declaration order
var FieldNames = []string{
	FieldDestino, FieldPais, FieldDataInicio, FieldDataFim,
	FieldBudget, FieldTotalCusto, FieldItinerario, FieldCurrentDay,
}

// Itinerary maps a day number to its entries in insertion order
type Itinerary map[int64][]string

// Days returns the day numbers in ascending order
func (it Itinerary) Days() []int64 {
	days := make([]int64, 0, len(it))
	for day := range it {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// Entries returns the entries of day, nil if the day has none
func (it Itinerary) Entries(day int64) []string {
	return it[day]
}

// Len returns the total number of entries over all days
func (it Itinerary) Len() int {
	n := 0
	for _, entries := range it {
		n += len(entries)
	}
	return n
}

// TripState is the result of evaluating a program
type TripState struct {
	Destino    *string      `json:"destino" yaml:"destino"`
	Pais       *string      `json:"pais" yaml:"pais"`
	DataInicio *mdwast.Date `json:"data_inicio" yaml:"data_inicio"`
	DataFim    *mdwast.Date `json:"data_fim" yaml:"data_fim"`
	Budget     int64        `json:"budget" yaml:"budget"`
	TotalCusto int64        `json:"total_custo" yaml:"total_custo"`
	Itinerario Itinerary    `json:"itinerario" yaml:"itinerario"`
	CurrentDay int64        `json:"current_day" yaml:"current_day"`
}

// NewTripState returns an empty state ready for evaluation
func NewTripState() *TripState {
	return &TripState{Itinerario: make(Itinerary)}
}

// LookupError reports an unknown or uninitialized state field
type LookupError struct {
	Field string
}

// Error implements the error interface
func (e *LookupError) Error() string {
	return fmt.Sprintf("variable '%s' not found in trip state", e.Field)
}

// Field returns the value of the named field. Unset optional fields yield
// nil without error.
func (s *TripState) Field(name string) (interface{}, error) {
	switch name {
	case FieldDestino:
		return derefString(s.Destino), nil
	case FieldPais:
		return derefString(s.Pais), nil
	case FieldDataInicio:
		return derefDate(s.DataInicio), nil
	case FieldDataFim:
		return derefDate(s.DataFim), nil
	case FieldBudget:
		return s.Budget, nil
	case FieldTotalCusto:
		return s.TotalCusto, nil
	case FieldItinerario:
		if s.Itinerario == nil {
			return nil, &LookupError{Field: name}
		}
		return s.Itinerario, nil
	case FieldCurrentDay:
		return s.CurrentDay, nil
	}
	return nil, &LookupError{Field: name}
}

// Remaining returns budget minus total cost, negative when over budget
func (s *TripState) Remaining() int64 {
	return s.Budget - s.TotalCusto
}

// OverBudget reports whether the planned cost exceeds the budget
func (s *TripState) OverBudget() bool {
	return s.TotalCusto > s.Budget
}

// Clone returns a deep copy of the state
func (s *TripState) Clone() *TripState {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Destino = copyPtr(s.Destino)
	clone.Pais = copyPtr(s.Pais)
	clone.DataInicio = copyPtr(s.DataInicio)
	clone.DataFim = copyPtr(s.DataFim)
	if s.Itinerario != nil {
		clone.Itinerario = make(Itinerary, len(s.Itinerario))
		for day, entries := range s.Itinerario {
			clone.Itinerario[day] = append([]string(nil), entries...)
		}
	}
	return &clone
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func derefString(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func derefDate(p *mdwast.Date) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
