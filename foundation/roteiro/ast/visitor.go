// File: visitor.go
// Title: Itinerary AST Visitor
// Description: Visitor interface over the closed node set, a depth-first
//              Inspect helper and a StringVisitor producing indented dumps.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial visitor implementation

package ast

import (
	"strings"
)

// Visitor is implemented by every tree consumer. It has one method per node
// type and deliberately no embeddable default implementation.
type Visitor interface {
	VisitProgram(node *Program) error
	VisitDestinoDec(node *DestinoDec) error
	VisitViagemDec(node *ViagemDec) error
	VisitBudgetDec(node *BudgetDec) error
	VisitDiaBlock(node *DiaBlock) error
	VisitLoopStmt(node *LoopStmt) error
	VisitAtividade(node *Atividade) error
	VisitCusto(node *Custo) error
	VisitNoOp(node *NoOp) error
}

// Inspect traverses the tree depth-first in source order. If fn returns
// false the children of that node are skipped.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for _, child := range node.Children() {
		Inspect(child, fn)
	}
}

// Count returns the number of nodes in the tree, the root included
func Count(node Node) int {
	n := 0
	Inspect(node, func(Node) bool {
		n++
		return true
	})
	return n
}

// StringVisitor renders a tree as an indented outline, one node per line
type StringVisitor struct {
	builder strings.Builder
	indent  int
}

// NewStringVisitor creates a new string visitor
func NewStringVisitor() *StringVisitor {
	return &StringVisitor{}
}

// Dump renders node with a fresh StringVisitor
func Dump(node Node) string {
	v := NewStringVisitor()
	if err := node.Accept(v); err != nil {
		return ""
	}
	return v.String()
}

// String returns the accumulated output
func (v *StringVisitor) String() string {
	return v.builder.String()
}

func (v *StringVisitor) line(node Node) {
	v.builder.WriteString(strings.Repeat("  ", v.indent))
	v.builder.WriteString(node.String())
	v.builder.WriteByte('\n')
}

func (v *StringVisitor) nested(node Node) error {
	v.line(node)
	v.indent++
	defer func() { v.indent-- }()
	for _, child := range node.Children() {
		if err := child.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

func (v *StringVisitor) VisitProgram(node *Program) error   { return v.nested(node) }
func (v *StringVisitor) VisitDiaBlock(node *DiaBlock) error { return v.nested(node) }
func (v *StringVisitor) VisitLoopStmt(node *LoopStmt) error { return v.nested(node) }

func (v *StringVisitor) VisitDestinoDec(node *DestinoDec) error {
	v.line(node)
	return nil
}

func (v *StringVisitor) VisitViagemDec(node *ViagemDec) error {
	v.line(node)
	return nil
}

func (v *StringVisitor) VisitBudgetDec(node *BudgetDec) error {
	v.line(node)
	return nil
}

func (v *StringVisitor) VisitAtividade(node *Atividade) error {
	v.line(node)
	return nil
}

func (v *StringVisitor) VisitCusto(node *Custo) error {
	v.line(node)
	return nil
}

func (v *StringVisitor) VisitNoOp(node *NoOp) error {
	v.line(node)
	return nil
}
