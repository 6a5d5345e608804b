// File: doc.go
// Title: String Utilities Package Documentation
// Description: Small string helpers shared by the interpreter, the report
//              renderers and the CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Reduced to the helpers in use

// Package stringx provides blank checks, defaults and rune-aware truncation.
package stringx
