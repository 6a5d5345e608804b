// File: prepro.go
// Title: Itinerary Source Preprocessing
// Description: Text-level passes applied before lexing: Unicode
//              normalization and removal of // line comments.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial preprocessing implementation

package parser

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CommentMarker starts a comment that runs to the end of the line
const CommentMarker = "//"

// StripComments removes everything from the first "//" to the end of each
// line. The pass is purely textual and also cuts string literals that
// contain the marker. Line breaks are kept, so token positions still match
// the original text.
func StripComments(source string) string {
	if !strings.Contains(source, CommentMarker) {
		return source
	}

	lines := strings.Split(source, "\n")
	for i, line := range lines {
		if idx := strings.Index(line, CommentMarker); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, "\n")
}

// Normalize converts source to Unicode NFC so that decomposed spellings of
// "país" and "até" still lex as keywords
func Normalize(source string) string {
	return norm.NFC.String(source)
}

// Preprocess applies Normalize and StripComments
func Preprocess(source string) string {
	return StripComments(Normalize(source))
}
