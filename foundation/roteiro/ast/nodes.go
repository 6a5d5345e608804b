// File: nodes.go
// Title: Itinerary AST Node Definitions
// Description: Defines the closed set of statement nodes of the itinerary
//              language with their payloads, children and source positions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"time"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// Accept dispatches to the visitor method for the concrete node type
	Accept(visitor Visitor) error

	// Children returns the ordered child nodes, empty for leaves
	Children() []Node

	// Position returns the source position of the node
	Position() Position

	// String returns a one-line description of the node
	String() string

	node()
}

// Position represents a position in the source text
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number in runes (1-based)
	Offset int // Byte offset (0-based)
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// DateLayout is the layout of date literals (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// Date is a date literal exactly as written in the source. The lexer only
// checks the shape, so a Date is not necessarily a valid calendar date.
type Date string

// Time parses the literal as a calendar date
func (d Date) Time() (time.Time, error) {
	return time.Parse(DateLayout, string(d))
}

// String returns the literal text
func (d Date) String() string {
	return string(d)
}

// Program is the root of every tree
type Program struct {
	Statements []Node
	Pos        Position
}

// DestinoDec declares the destination and, optionally, the country
type DestinoDec struct {
	Nome string
	Pais *string
	Pos  Position
}

// ViagemDec declares the trip's first and last date
type ViagemDec struct {
	Inicio Date
	Fim    Date
	Pos    Position
}

// BudgetDec declares the budget in USD
type BudgetDec struct {
	Valor int64
	Pos   Position
}

// DiaBlock holds the activities and costs of a single day
type DiaBlock struct {
	Dia  int64
	Body []Node
	Pos  Position
}

// LoopStmt replays its body for every day in the inclusive range Inicio..Fim
type LoopStmt struct {
	Inicio int64
	Fim    int64
	Body   []Node
	Pos    Position
}

// Atividade records an activity on the current day
type Atividade struct {
	Descricao string
	Pos       Position
}

// Custo records a cost in USD on the current day
type Custo struct {
	Valor int64
	Pos   Position
}

// NoOp is a statement without effect. The parser emits it for a stray
// top-level token, which it records in Skipped.
type NoOp struct {
	Skipped string
	Pos     Position
}

func (*Program) node()    {}
func (*DestinoDec) node() {}
func (*ViagemDec) node()  {}
func (*BudgetDec) node()  {}
func (*DiaBlock) node()   {}
func (*LoopStmt) node()   {}
func (*Atividade) node()  {}
func (*Custo) node()      {}
func (*NoOp) node()       {}

func (n *Program) Accept(v Visitor) error    { return v.VisitProgram(n) }
func (n *DestinoDec) Accept(v Visitor) error { return v.VisitDestinoDec(n) }
func (n *ViagemDec) Accept(v Visitor) error  { return v.VisitViagemDec(n) }
func (n *BudgetDec) Accept(v Visitor) error  { return v.VisitBudgetDec(n) }
func (n *DiaBlock) Accept(v Visitor) error   { return v.VisitDiaBlock(n) }
func (n *LoopStmt) Accept(v Visitor) error   { return v.VisitLoopStmt(n) }
func (n *Atividade) Accept(v Visitor) error  { return v.VisitAtividade(n) }
func (n *Custo) Accept(v Visitor) error      { return v.VisitCusto(n) }
func (n *NoOp) Accept(v Visitor) error       { return v.VisitNoOp(n) }

func (n *Program) Children() []Node    { return n.Statements }
func (n *DestinoDec) Children() []Node { return nil }
func (n *ViagemDec) Children() []Node  { return nil }
func (n *BudgetDec) Children() []Node  { return nil }
func (n *DiaBlock) Children() []Node   { return n.Body }
func (n *LoopStmt) Children() []Node   { return n.Body }
func (n *Atividade) Children() []Node  { return nil }
func (n *Custo) Children() []Node      { return nil }
func (n *NoOp) Children() []Node       { return nil }

func (n *Program) Position() Position    { return n.Pos }
func (n *DestinoDec) Position() Position { return n.Pos }
func (n *ViagemDec) Position() Position  { return n.Pos }
func (n *BudgetDec) Position() Position  { return n.Pos }
func (n *DiaBlock) Position() Position   { return n.Pos }
func (n *LoopStmt) Position() Position   { return n.Pos }
func (n *Atividade) Position() Position  { return n.Pos }
func (n *Custo) Position() Position      { return n.Pos }
func (n *NoOp) Position() Position       { return n.Pos }

func (n *Program) String() string {
	return fmt.Sprintf("Program (%d statements)", len(n.Statements))
}

func (n *DestinoDec) String() string {
	if n.Pais != nil {
		return fmt.Sprintf("DestinoDec %q país=%q", n.Nome, *n.Pais)
	}
	return fmt.Sprintf("DestinoDec %q", n.Nome)
}

func (n *ViagemDec) String() string {
	return fmt.Sprintf("ViagemDec %s..%s", n.Inicio, n.Fim)
}

func (n *BudgetDec) String() string {
	return fmt.Sprintf("BudgetDec %d USD", n.Valor)
}

func (n *DiaBlock) String() string {
	return fmt.Sprintf("DiaBlock %d", n.Dia)
}

func (n *LoopStmt) String() string {
	return fmt.Sprintf("LoopStmt %d..%d", n.Inicio, n.Fim)
}

func (n *Atividade) String() string {
	return fmt.Sprintf("Atividade %q", n.Descricao)
}

func (n *Custo) String() string {
	return fmt.Sprintf("Custo %d USD", n.Valor)
}

func (n *NoOp) String() string {
	if n.Skipped != "" {
		return fmt.Sprintf("NoOp (skipped %s)", n.Skipped)
	}
	return "NoOp"
}

// Days returns the number of days the loop visits, 0 when Fim < Inicio
func (n *LoopStmt) Days() int64 {
	if n.Fim < n.Inicio {
		return 0
	}
	return n.Fim - n.Inicio + 1
}
