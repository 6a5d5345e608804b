// File: doc.go
// Title: Roteiro Package Documentation
// Description: Entry point of the itinerary language implementation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial package documentation

/*
Package roteiro interprets travel itineraries written in a small
Portuguese-keyword language:

	destino "Lisboa", país = "Portugal"
	viagem de 2025-05-01 até 2025-05-03
	budget 500 USD

	dia 1 {
	    atividade "Museu"
	    custo 50 USD
	}

	para cada dia in 2..3 {
	    atividade "Passeio"
	}

The Engine strips // comments, lexes, parses and evaluates the source into
an evaluator.TripState:

	engine, err := roteiro.New(roteiro.Options{})
	state, err := engine.Interpret(ctx, source)

Errors carry a code from foundation/core/error: CodeLexical, CodeSyntax or
CodeLookup. The underlying *parser.LexError, *parser.SyntaxError and
*evaluator.LookupError remain available through errors.As.

Subpackages:

	ast        node types, visitors, dump and source printer
	parser     lexer, comment stripping and recursive descent parser
	evaluator  TripState and the tree-walking evaluator
*/
package roteiro
