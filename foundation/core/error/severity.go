// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to decide how an error is logged.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Severity mapping for interpreter codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks errors caused by the user's input, e.g. a malformed itinerary
	SeverityLow Severity = iota

	// SeverityMedium marks errors with an obvious workaround
	SeverityMedium

	// SeverityHigh marks failures of local resources such as the run store
	SeverityHigh

	// SeverityCritical marks errors that leave the program unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeStorageError:
		return SeverityHigh
	case CodeConfigError, CodeRenderError, CodeLookup:
		return SeverityMedium
	case CodeInvalidInput, CodeNotFound, CodeLexical, CodeSyntax:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
