// File: ast_test.go
// Title: Itinerary AST Tests
// Description: Tests for node descriptions, traversal, dumps and the printer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test implementation

package ast

import (
	"strings"
	"testing"
)

func sampleProgram() *Program {
	pais := "Portugal"
	return &Program{Statements: []Node{
		&DestinoDec{Nome: "Lisboa", Pais: &pais},
		&ViagemDec{Inicio: "2025-05-01", Fim: "2025-05-03"},
		&BudgetDec{Valor: 500},
		&DiaBlock{Dia: 1, Body: []Node{
			&Atividade{Descricao: "Museu"},
			&Custo{Valor: 50},
		}},
		&LoopStmt{Inicio: 2, Fim: 3, Body: []Node{
			&Atividade{Descricao: "Passeio"},
		}},
		&NoOp{Skipped: `IDENTIFIER "hello"`},
	}}
}

func TestNodeStrings(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{&DestinoDec{Nome: "Roma"}, `DestinoDec "Roma"`},
		{&ViagemDec{Inicio: "2025-01-01", Fim: "2025-01-02"}, "ViagemDec 2025-01-01..2025-01-02"},
		{&BudgetDec{Valor: 10}, "BudgetDec 10 USD"},
		{&LoopStmt{Inicio: 1, Fim: 4}, "LoopStmt 1..4"},
		{&Custo{Valor: 7}, "Custo 7 USD"},
		{&NoOp{}, "NoOp"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoopDays(t *testing.T) {
	if got := (&LoopStmt{Inicio: 2, Fim: 4}).Days(); got != 3 {
		t.Errorf("Days() = %d, want 3", got)
	}
	if got := (&LoopStmt{Inicio: 5, Fim: 4}).Days(); got != 0 {
		t.Errorf("reversed range Days() = %d, want 0", got)
	}
}

func TestDateTime(t *testing.T) {
	tm, err := Date("2025-05-01").Time()
	if err != nil {
		t.Fatalf("Time() error = %v", err)
	}
	if tm.Month() != 5 || tm.Day() != 1 {
		t.Errorf("Time() = %v", tm)
	}
	if _, err := Date("2025-13-45").Time(); err == nil {
		t.Error("shape-valid but impossible date should fail to parse")
	}
}

func TestInspectOrder(t *testing.T) {
	var kinds []string
	Inspect(sampleProgram(), func(n Node) bool {
		kinds = append(kinds, strings.Fields(n.String())[0])
		return true
	})

	want := "Program DestinoDec ViagemDec BudgetDec DiaBlock Atividade Custo LoopStmt Atividade NoOp"
	if got := strings.Join(kinds, " "); got != want {
		t.Errorf("traversal = %q, want %q", got, want)
	}
	if Count(sampleProgram()) != 10 {
		t.Errorf("Count() = %d, want 10", Count(sampleProgram()))
	}
}

func TestDumpIndentsBodies(t *testing.T) {
	out := Dump(sampleProgram())

	for _, want := range []string{
		"Program (6 statements)\n",
		"  DiaBlock 1\n    Atividade \"Museu\"\n",
		"  LoopStmt 2..3\n    Atividade \"Passeio\"\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormat(t *testing.T) {
	want := `destino "Lisboa", país = "Portugal"
viagem de 2025-05-01 até 2025-05-03
budget 500 USD
dia 1 {
    atividade "Museu"
    custo 50 USD
}
para cada dia in 2..3 {
    atividade "Passeio"
}
`
	if got := Format(sampleProgram()); got != want {
		t.Errorf("Format() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatEmptyBlock(t *testing.T) {
	got := Format(&Program{Statements: []Node{&DiaBlock{Dia: 2}}})
	if got != "dia 2 {}\n" {
		t.Errorf("Format() = %q", got)
	}
	if Format(&Program{}) != "" {
		t.Error("empty program should format to empty text")
	}
}
