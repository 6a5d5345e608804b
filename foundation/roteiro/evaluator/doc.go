// File: doc.go
// Title: Itinerary Evaluator Package Documentation
// Description: Tree-walking evaluation of itinerary programs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial evaluator package

// Package evaluator applies itinerary programs to a TripState.
//
// Activities append "Atividade: <text>" and costs append "Custo: $<n> USD"
// to the current day and add to TotalCusto. Budget and destination
// declarations overwrite earlier ones. Loops run over an inclusive range and
// run zero times when the range is reversed.
package evaluator
