// File: doc.go
// Title: Structured Error Package Documentation
// Description: Documents the structured error type used across roteiro.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Codes reduced to the interpreter, store and renderer domains

/*
Package error provides a structured error type carrying a code, a severity,
an operation name and free-form details on top of the standard error
interface. Errors created here unwrap to their cause, so errors.As and
errors.Is keep working on wrapped lexical or syntax errors.

Usage:

	err := mdwerror.Wrap(cause, "failed to interpret itinerary").
		WithCode(mdwerror.CodeSyntax).
		WithOperation("engine.Interpret").
		WithDetail("source", path)
*/
package error
