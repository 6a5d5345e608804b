// File: evaluator_test.go
// Title: Itinerary Evaluator Tests
// Description: Tests for statement effects, loops, overwrite rules, state
//              lookup and cloning.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test implementation

package evaluator

import (
	"errors"
	"reflect"
	"testing"

	mdwerror "github.com/msto63/roteiro/foundation/core/error"
	mdwlog "github.com/msto63/roteiro/foundation/core/log"
	mdwast "github.com/msto63/roteiro/foundation/roteiro/ast"
)

func strPtr(s string) *string { return &s }

func run(t *testing.T, stmts ...mdwast.Node) *TripState {
	t.Helper()
	state := NewTripState()
	ev := New(Options{Logger: mdwlog.NewDiscard()})
	if err := ev.Evaluate(&mdwast.Program{Statements: stmts}, state); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	return state
}

func TestEvaluateLisboa(t *testing.T) {
	state := run(t,
		&mdwast.DestinoDec{Nome: "Lisboa", Pais: strPtr("Portugal")},
		&mdwast.ViagemDec{Inicio: "2025-05-01", Fim: "2025-05-03"},
		&mdwast.BudgetDec{Valor: 500},
		&mdwast.DiaBlock{Dia: 1, Body: []mdwast.Node{
			&mdwast.Atividade{Descricao: "Museu"},
			&mdwast.Custo{Valor: 50},
		}},
		&mdwast.LoopStmt{Inicio: 2, Fim: 3, Body: []mdwast.Node{
			&mdwast.Atividade{Descricao: "Passeio"},
		}},
	)

	if *state.Destino != "Lisboa" || *state.Pais != "Portugal" {
		t.Errorf("destination = %v, %v", *state.Destino, *state.Pais)
	}
	if *state.DataInicio != "2025-05-01" || *state.DataFim != "2025-05-03" {
		t.Errorf("dates = %v..%v", *state.DataInicio, *state.DataFim)
	}
	if state.Budget != 500 || state.TotalCusto != 50 {
		t.Errorf("budget = %d, total = %d", state.Budget, state.TotalCusto)
	}
	if state.CurrentDay != 3 {
		t.Errorf("CurrentDay = %d, want 3", state.CurrentDay)
	}

	want := Itinerary{
		1: {"Atividade: Museu", "Custo: $50 USD"},
		2: {"Atividade: Passeio"},
		3: {"Atividade: Passeio"},
	}
	if !reflect.DeepEqual(state.Itinerario, want) {
		t.Errorf("Itinerario = %v, want %v", state.Itinerario, want)
	}
	if state.Remaining() != 450 || state.OverBudget() {
		t.Errorf("Remaining() = %d", state.Remaining())
	}
}

func TestEvaluateEmptyProgram(t *testing.T) {
	state := run(t)
	if !reflect.DeepEqual(state, NewTripState()) {
		t.Errorf("empty program changed the state: %+v", state)
	}
}

func TestLoopRanges(t *testing.T) {
	tests := []struct {
		name       string
		inicio     int64
		fim        int64
		wantDays   []int64
		wantCusto  int64
		wantCurDay int64
	}{
		{"single day", 4, 4, []int64{4}, 10, 4},
		{"three days", 1, 3, []int64{1, 2, 3}, 30, 3},
		{"reversed range runs zero times", 5, 2, []int64{}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := run(t, &mdwast.LoopStmt{Inicio: tt.inicio, Fim: tt.fim, Body: []mdwast.Node{
				&mdwast.Custo{Valor: 10},
			}})
			if got := state.Itinerario.Days(); !reflect.DeepEqual(got, tt.wantDays) {
				t.Errorf("Days() = %v, want %v", got, tt.wantDays)
			}
			if state.TotalCusto != tt.wantCusto {
				t.Errorf("TotalCusto = %d, want %d", state.TotalCusto, tt.wantCusto)
			}
			if state.CurrentDay != tt.wantCurDay {
				t.Errorf("CurrentDay = %d, want %d", state.CurrentDay, tt.wantCurDay)
			}
		})
	}
}

func TestLoopAppendsToExistingDays(t *testing.T) {
	state := run(t,
		&mdwast.DiaBlock{Dia: 2, Body: []mdwast.Node{&mdwast.Atividade{Descricao: "Chegada"}}},
		&mdwast.LoopStmt{Inicio: 1, Fim: 2, Body: []mdwast.Node{&mdwast.Atividade{Descricao: "Café"}}},
		&mdwast.DiaBlock{Dia: 2, Body: []mdwast.Node{&mdwast.Custo{Valor: 5}}},
	)

	want := []string{"Atividade: Chegada", "Atividade: Café", "Custo: $5 USD"}
	if got := state.Itinerario.Entries(2); !reflect.DeepEqual(got, want) {
		t.Errorf("day 2 = %v, want %v", got, want)
	}
}

func TestOverwriteRules(t *testing.T) {
	state := run(t,
		&mdwast.DestinoDec{Nome: "Porto", Pais: strPtr("Portugal")},
		&mdwast.BudgetDec{Valor: 100},
		&mdwast.DestinoDec{Nome: "Faro"},
		&mdwast.BudgetDec{Valor: 300},
	)

	if *state.Destino != "Faro" {
		t.Errorf("Destino = %q, want the last declaration", *state.Destino)
	}
	if *state.Pais != "Portugal" {
		t.Errorf("a later destino without country should keep Pais, got %q", *state.Pais)
	}
	if state.Budget != 300 {
		t.Errorf("Budget = %d, want 300", state.Budget)
	}
}

func TestCostsAddUp(t *testing.T) {
	state := run(t,
		&mdwast.BudgetDec{Valor: 100},
		&mdwast.DiaBlock{Dia: 1, Body: []mdwast.Node{&mdwast.Custo{Valor: 80}, &mdwast.Custo{Valor: 0}}},
		&mdwast.DiaBlock{Dia: 2, Body: []mdwast.Node{&mdwast.Custo{Valor: 70}}},
	)

	if state.TotalCusto != 150 {
		t.Errorf("TotalCusto = %d, want 150", state.TotalCusto)
	}
	if !state.OverBudget() || state.Remaining() != -50 {
		t.Errorf("OverBudget() = %v, Remaining() = %d", state.OverBudget(), state.Remaining())
	}
	if state.Itinerario.Len() != 3 {
		t.Errorf("Len() = %d, want 3", state.Itinerario.Len())
	}
}

func TestNoOpHasNoEffect(t *testing.T) {
	state := run(t, &mdwast.NoOp{Skipped: "IDENTIFIER \"x\""})
	if !reflect.DeepEqual(state, NewTripState()) {
		t.Errorf("NoOp changed the state: %+v", state)
	}
}

func TestUninitializedItinerary(t *testing.T) {
	state := &TripState{}
	err := New(Options{Logger: mdwlog.NewDiscard()}).Evaluate(&mdwast.DiaBlock{Dia: 1, Body: []mdwast.Node{
		&mdwast.Atividade{Descricao: "x"},
	}}, state)

	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) || lookupErr.Field != FieldItinerario {
		t.Errorf("error = %v, want LookupError for itinerario", err)
	}
}

func TestField(t *testing.T) {
	state := run(t,
		&mdwast.DestinoDec{Nome: "Lisboa"},
		&mdwast.BudgetDec{Valor: 42},
	)

	tests := []struct {
		name    string
		want    interface{}
		wantErr bool
	}{
		{FieldDestino, "Lisboa", false},
		{FieldPais, nil, false},
		{FieldDataInicio, nil, false},
		{FieldBudget, int64(42), false},
		{FieldTotalCusto, int64(0), false},
		{FieldCurrentDay, int64(0), false},
		{"hotel", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := state.Field(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Field(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Field(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}

	if _, err := (&TripState{}).Field(FieldItinerario); err == nil {
		t.Error("nil itinerary should be a lookup error")
	}
	_, err := state.Field("hotel")
	if err.Error() != "variable 'hotel' not found in trip state" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestCloneIsDeep(t *testing.T) {
	state := run(t,
		&mdwast.DestinoDec{Nome: "Lisboa", Pais: strPtr("Portugal")},
		&mdwast.DiaBlock{Dia: 1, Body: []mdwast.Node{&mdwast.Atividade{Descricao: "Museu"}}},
	)
	clone := state.Clone()
	if !reflect.DeepEqual(clone, state) {
		t.Fatal("clone differs from original")
	}

	*clone.Destino = "Sintra"
	clone.Itinerario[1][0] = "changed"
	clone.Itinerario[2] = []string{"new"}

	if *state.Destino != "Lisboa" || state.Itinerario[1][0] != "Atividade: Museu" || len(state.Itinerario) != 1 {
		t.Errorf("mutating the clone changed the original: %+v", state)
	}
	if (*TripState)(nil).Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestNilInputsAreRejected(t *testing.T) {
	tests := []struct {
		name  string
		node  mdwast.Node
		state *TripState
	}{
		{"nil state", &mdwast.Program{}, nil},
		{"nil node", nil, NewTripState()},
	}

	ev := New(Options{Logger: mdwlog.NewDiscard()})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ev.Evaluate(tt.node, tt.state)
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
				t.Errorf("error = %v, want %s", err, mdwerror.CodeInvalidInput)
			}
		})
	}
}
