// File: format.go
// Title: Itinerary Source Printer
// Description: Renders a tree back into canonical itinerary source. Parsing
//              the output yields a tree that evaluates to the same state.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial printer implementation

package ast

import (
	"fmt"
	"strings"
)

// Indent is the indentation used for day and loop bodies
const Indent = "    "

// Format renders node as canonical source. NoOp statements are dropped.
// String payloads are written verbatim, so the output only round-trips for
// trees parsed from preprocessed source: a payload containing "//" is cut
// short when the printed text is preprocessed again.
func Format(node Node) string {
	p := &printer{}
	if err := node.Accept(p); err != nil {
		return ""
	}
	return p.builder.String()
}

type printer struct {
	builder strings.Builder
	depth   int
}

func (p *printer) writeLine(format string, args ...interface{}) {
	p.builder.WriteString(strings.Repeat(Indent, p.depth))
	fmt.Fprintf(&p.builder, format, args...)
	p.builder.WriteByte('\n')
}

func (p *printer) block(header string, body []Node) error {
	if len(body) == 0 {
		p.writeLine("%s {}", header)
		return nil
	}
	p.writeLine("%s {", header)
	p.depth++
	for _, child := range body {
		if err := child.Accept(p); err != nil {
			return err
		}
	}
	p.depth--
	p.writeLine("}")
	return nil
}

func (p *printer) VisitProgram(node *Program) error {
	for _, stmt := range node.Statements {
		if err := stmt.Accept(p); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) VisitDestinoDec(node *DestinoDec) error {
	if node.Pais != nil {
		p.writeLine(`destino "%s", país = "%s"`, node.Nome, *node.Pais)
		return nil
	}
	p.writeLine(`destino "%s"`, node.Nome)
	return nil
}

func (p *printer) VisitViagemDec(node *ViagemDec) error {
	p.writeLine("viagem de %s até %s", node.Inicio, node.Fim)
	return nil
}

func (p *printer) VisitBudgetDec(node *BudgetDec) error {
	p.writeLine("budget %d USD", node.Valor)
	return nil
}

func (p *printer) VisitDiaBlock(node *DiaBlock) error {
	return p.block(fmt.Sprintf("dia %d", node.Dia), node.Body)
}

func (p *printer) VisitLoopStmt(node *LoopStmt) error {
	return p.block(fmt.Sprintf("para cada dia in %d..%d", node.Inicio, node.Fim), node.Body)
}

func (p *printer) VisitAtividade(node *Atividade) error {
	p.writeLine(`atividade "%s"`, node.Descricao)
	return nil
}

func (p *printer) VisitCusto(node *Custo) error {
	p.writeLine("custo %d USD", node.Valor)
	return nil
}

func (p *printer) VisitNoOp(*NoOp) error {
	return nil
}
