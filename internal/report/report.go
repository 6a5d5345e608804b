// ============================================================================
// roteiro - Itinerary language toolkit
// ============================================================================
//
// Package:     report
// Description: Renderer registry and output helpers
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package report

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	mdwerror "github.com/msto63/roteiro/foundation/core/error"
	"github.com/msto63/roteiro/foundation/roteiro/evaluator"
)

// Renderer writes a trip report in one output format
type Renderer interface {
	Name() string
	Render(w io.Writer, trip *evaluator.TripState) error
}

var renderers = map[string]func() Renderer{
	"text":   func() Renderer { return NewTextRenderer() },
	"styled": func() Renderer { return NewStyledRenderer(0) },
	"yaml":   func() Renderer { return NewYAMLRenderer() },
	"json":   func() Renderer { return NewJSONRenderer() },
}

// Formats returns the supported format names in sorted order
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the renderer for format
func ByName(format string) (Renderer, error) {
	factory, ok := renderers[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, mdwerror.Newf("unknown report format %q (supported: %s)",
			format, strings.Join(Formats(), ", ")).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("report.ByName")
	}
	return factory(), nil
}

// RenderString renders trip into a string
func RenderString(r Renderer, trip *evaluator.TripState) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, trip); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteFile renders trip into path, creating parent directories. The file
// is only replaced once rendering succeeded.
func WriteFile(r Renderer, trip *evaluator.TripState, path string) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, trip); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return renderError(err, "report.WriteFile", r.Name())
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return renderError(err, "report.WriteFile", r.Name())
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return renderError(err, "report.WriteFile", r.Name())
	}
	return nil
}

func renderError(err error, operation, format string) error {
	return mdwerror.Wrap(err, "failed to render report").
		WithCode(mdwerror.CodeRenderError).
		WithOperation(operation).
		WithDetail("format", format)
}
