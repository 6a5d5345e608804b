// File: doc.go
// Title: Itinerary Parser Package Documentation
// Description: Lexer, preprocessing and recursive descent parser for the
//              itinerary language.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial parser package

/*
Package parser turns itinerary source into an AST.

Processing runs in three steps:

	source := parser.Preprocess(raw)           // NFC + strip // comments
	tokens, err := parser.Tokenize(source)     // optional, for inspection
	p, _ := parser.New(parser.Options{})
	program, err := p.Parse(source)

Grammar:

	program   := statement*
	statement := destino | viagem | budget | dia | loop
	destino   := "destino" STRING [ "," "país" "=" STRING ]
	viagem    := "viagem" "de" DATE "até" DATE
	budget    := "budget" INTEGER "USD"
	dia       := "dia" INTEGER "{" body* "}"
	loop      := "para" "cada" "dia" "in" INTEGER ".." INTEGER "{" body* "}"
	body      := "atividade" STRING | "custo" INTEGER "USD"

At the top level a token that cannot start a statement is skipped and
recorded as a NoOp, unless Options.StrictTopLevel is set. Inside a body any
token other than atividade, custo or "}" is a *SyntaxError. Characters that
cannot start a token produce a *LexError.
*/
package parser
