// File: doc.go
// Title: Itinerary AST Package Documentation
// Description: Defines the syntax tree produced by the itinerary parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial AST implementation

/*
Package ast defines the syntax tree of the itinerary language.

The node set is closed: Program, DestinoDec, ViagemDec, BudgetDec, DiaBlock,
LoopStmt, Atividade, Custo and NoOp. Nodes carry a typed payload and an
ordered list of children, are built once by the parser and never mutated.

Every consumer implements Visitor, which has one method per node type, so a
new node type does not compile until every visitor handles it. The package
ships two visitors: StringVisitor for an indented tree dump and the printer
behind Format, which renders a tree back into source form.
*/
package ast
