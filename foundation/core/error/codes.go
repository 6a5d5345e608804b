// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the
//              interpreter, the configuration layer, the run store and the
//              report renderers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-17 v0.2.0: Interpreter codes, removed service and auth codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Interpreter codes
	CodeLexical Code = "ROTEIRO_LEXICAL"
	CodeSyntax  Code = "ROTEIRO_SYNTAX"
	CodeLookup  Code = "ROTEIRO_LOOKUP"

	// Infrastructure
	CodeConfigError  Code = "CONFIG_ERROR"
	CodeStorageError Code = "STORAGE_ERROR"
	CodeRenderError  Code = "RENDER_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeLexical, CodeSyntax, CodeLookup,
		CodeConfigError, CodeStorageError, CodeRenderError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeSyntax, CodeLookup:
		return "interpreter"
	case CodeConfigError:
		return "configuration"
	case CodeStorageError:
		return "storage"
	case CodeRenderError:
		return "report"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code.
// Input problems exit with 2, everything else with 1.
func (c Code) ExitCode() int {
	switch c {
	case CodeLexical, CodeSyntax, CodeInvalidInput:
		return 2
	default:
		return 1
	}
}
