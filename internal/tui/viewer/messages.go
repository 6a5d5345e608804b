// ============================================================================
// roteiro - Itinerary language toolkit
// ============================================================================
//
// Package:     viewer
// Description: Message types for async operations in the viewer
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package viewer

import (
	"time"

	"github.com/msto63/roteiro/foundation/roteiro/evaluator"
)

// tripLoadedMsg is sent when the source has been read and interpreted
type tripLoadedMsg struct {
	trip     *evaluator.TripState
	loadedAt time.Time
	err      error
}

// reloadMsg asks the model to read the source again
type reloadMsg struct{}
