// ============================================================================
// roteiro - Itinerary language toolkit
// ============================================================================
//
// Package:     report
// Description: Plain text and structured data renderers
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/msto63/roteiro/foundation/roteiro/evaluator"
	"gopkg.in/yaml.v3"
)

// TextRenderer writes the report as plain text
type TextRenderer struct{}

// NewTextRenderer creates a plain text renderer
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Name returns "text"
func (r *TextRenderer) Name() string { return "text" }

// Render writes the plain text report
func (r *TextRenderer) Render(w io.Writer, trip *evaluator.TripState) error {
	doc := Build(trip)

	var b strings.Builder
	b.WriteString(doc.Title + "\n")
	b.WriteString(doc.Destination + "\n")
	b.WriteString(doc.Period + "\n\n")

	b.WriteString(ScheduleHeading + "\n")
	for _, day := range doc.Days {
		fmt.Fprintf(&b, "Dia %d:\n", day.Number)
		for _, item := range day.Items {
			b.WriteString("  - " + item + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(FinanceHeading + "\n")
	for _, line := range doc.Summary.Lines() {
		b.WriteString(line + "\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return renderError(err, "report.Render", r.Name())
	}
	return nil
}

// YAMLRenderer writes the report document as YAML
type YAMLRenderer struct{}

// NewYAMLRenderer creates a YAML renderer
func NewYAMLRenderer() *YAMLRenderer {
	return &YAMLRenderer{}
}

// Name returns "yaml"
func (r *YAMLRenderer) Name() string { return "yaml" }

// Render writes the YAML document
func (r *YAMLRenderer) Render(w io.Writer, trip *evaluator.TripState) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Build(trip)); err != nil {
		return renderError(err, "report.Render", r.Name())
	}
	if err := enc.Close(); err != nil {
		return renderError(err, "report.Render", r.Name())
	}
	return nil
}

// JSONRenderer writes the report document as indented JSON
type JSONRenderer struct{}

// NewJSONRenderer creates a JSON renderer
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Name returns "json"
func (r *JSONRenderer) Name() string { return "json" }

// Render writes the JSON document
func (r *JSONRenderer) Render(w io.Writer, trip *evaluator.TripState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Build(trip)); err != nil {
		return renderError(err, "report.Render", r.Name())
	}
	return nil
}
