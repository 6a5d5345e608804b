// ============================================================================
// roteiro - Itinerary language toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the CLI and its components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for all roteiro components
const (
	// Platform version
	Platform = "0.1.0"

	// Component versions
	Language = "1.0.0" // grammar accepted by the parser
	Engine   = "0.1.0"
	Report   = "0.1.0"
	Store    = "0.1.0"
	Viewer   = "0.1.0"

	// SchemaVersion is the run history database schema
	SchemaVersion = 1
)

// Set at build time via -ldflags "-X github.com/msto63/roteiro/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "language":
		return Language
	case "engine":
		return Engine
	case "report":
		return Report
	case "store":
		return Store
	case "viewer":
		return Viewer
	default:
		return Platform
	}
}

// Info describes the running binary
type Info struct {
	Platform  string `json:"platform" yaml:"platform"`
	Language  string `json:"language" yaml:"language"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	OS        string `json:"os" yaml:"os"`
	Arch      string `json:"arch" yaml:"arch"`
}

// Get returns the build information
func Get() Info {
	return Info{
		Platform:  Platform,
		Language:  Language,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("roteiro %s (language %s, commit %s, built %s, %s %s/%s)",
		i.Platform, i.Language, i.Commit, i.BuildDate, i.GoVersion, i.OS, i.Arch)
}
