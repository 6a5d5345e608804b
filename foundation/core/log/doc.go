// Package log provides structured logging for roteiro.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with persistent context fields,
//              JSON and text output, severity-aware logging of structured
//              errors and operation timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-17 v0.2.0: Logs default to stderr so report output on stdout stays clean;
//                      dropped async buffering and request/user context
//
// Usage:
//   import mdwlog "github.com/msto63/roteiro/foundation/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithField("component", "roteiro-parser")
//
//   logger.Info("Itinerary parsed", mdwlog.Fields{"statements": 5})
//   logger.ErrorWithErr("Interpretation failed", err)
//
//   timer := logger.StartTimer("interpret")
//   // ... evaluate
//   timer.Stop()
package log
