// File: roteiro.go
// Title: Itinerary Interpretation Engine
// Description: Runs the full pipeline (preprocess, lex, parse, evaluate)
//              and maps the stage errors onto structured error codes. An
//              optional result cache keyed by source hash skips repeated
//              work for unchanged input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial engine implementation

package roteiro

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	mdwerror "github.com/msto63/roteiro/foundation/core/error"
	mdwlog "github.com/msto63/roteiro/foundation/core/log"
	mdwast "github.com/msto63/roteiro/foundation/roteiro/ast"
	mdwevaluator "github.com/msto63/roteiro/foundation/roteiro/evaluator"
	mdwparser "github.com/msto63/roteiro/foundation/roteiro/parser"
)

// ResultCache stores evaluated trip states by source hash
type ResultCache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
}

// Engine interprets itinerary sources. It is safe for concurrent use.
type Engine struct {
	logger    *mdwlog.Logger
	evaluator *mdwevaluator.Evaluator
	cache     ResultCache
	options   Options
}

// Options configures the engine
type Options struct {
	Logger         *mdwlog.Logger
	MaxSourceSize  int
	StrictTopLevel bool

	// Cache is consulted before parsing when set
	Cache ResultCache
}

// New creates a new engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxSourceSize == 0 {
		opts.MaxSourceSize = mdwparser.DefaultMaxInputLength
	}
	if opts.MaxSourceSize < 0 {
		return nil, mdwerror.Newf("invalid maximum source size %d", opts.MaxSourceSize).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("roteiro.New")
	}

	return &Engine{
		logger:    opts.Logger.WithField("component", "roteiro-engine"),
		evaluator: mdwevaluator.New(mdwevaluator.Options{Logger: opts.Logger}),
		cache:     opts.Cache,
		options:   opts,
	}, nil
}

// SourceHash returns the hex SHA-256 of the preprocessed source. Sources
// that differ only in comments share a hash.
func SourceHash(source string) string {
	return hashOf(mdwparser.Preprocess(source))
}

// Interpret runs the full pipeline on source and returns the trip state.
// The returned state is owned by the caller.
func (e *Engine) Interpret(ctx context.Context, source string) (*mdwevaluator.TripState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timer := e.logger.StartTimer("interpret").WithLevel(mdwlog.LevelDebug)
	filtered := mdwparser.Preprocess(source)
	key := hashOf(filtered)

	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			if state, ok := cached.(*mdwevaluator.TripState); ok {
				e.logger.Debug("Trip state served from cache", mdwlog.Fields{"hash": key[:12]})
				timer.Stop()
				return state.Clone(), nil
			}
		}
	}

	program, err := e.parse(filtered)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	state := mdwevaluator.NewTripState()
	if err := e.evaluator.Evaluate(program, state); err != nil {
		wrapped := classify(err, "roteiro.Interpret")
		timer.StopWithError(wrapped)
		return nil, wrapped
	}

	if e.cache != nil {
		e.cache.Set(key, state.Clone())
	}
	timer.Stop()
	return state, nil
}

// Parse preprocesses and parses source without evaluating it
func (e *Engine) Parse(source string) (*mdwast.Program, error) {
	return e.parse(mdwparser.Preprocess(source))
}

// Validate reports whether source lexes and parses
func (e *Engine) Validate(source string) error {
	_, err := e.Parse(source)
	return err
}

// Tokens preprocesses and lexes source
func (e *Engine) Tokens(source string) ([]mdwparser.Token, error) {
	tokens, err := mdwparser.Tokenize(mdwparser.Preprocess(source))
	if err != nil {
		return tokens, classify(err, "roteiro.Tokens")
	}
	return tokens, nil
}

// Close releases engine resources
func (e *Engine) Close() error {
	return nil
}

func (e *Engine) parse(filtered string) (*mdwast.Program, error) {
	p, err := mdwparser.New(mdwparser.Options{
		Logger:         e.options.Logger,
		MaxInputLength: e.options.MaxSourceSize,
		StrictTopLevel: e.options.StrictTopLevel,
	})
	if err != nil {
		return nil, err
	}
	program, err := p.Parse(filtered)
	if err != nil {
		return nil, classify(err, "roteiro.Parse")
	}
	return program, nil
}

func hashOf(filtered string) string {
	sum := sha256.Sum256([]byte(filtered))
	return hex.EncodeToString(sum[:])
}

// classify wraps a stage error with the matching error code. The stage
// error stays reachable through errors.As.
func classify(err error, operation string) error {
	var (
		lexErr    *mdwparser.LexError
		synErr    *mdwparser.SyntaxError
		lookupErr *mdwevaluator.LookupError
		mdwErr    *mdwerror.Error
	)

	switch {
	case errors.As(err, &lexErr):
		return mdwerror.Wrap(err, "invalid itinerary").
			WithCode(mdwerror.CodeLexical).
			WithOperation(operation).
			WithDetail("line", lexErr.Line).
			WithDetail("column", lexErr.Column)
	case errors.As(err, &synErr):
		return mdwerror.Wrap(err, "invalid itinerary").
			WithCode(mdwerror.CodeSyntax).
			WithOperation(operation).
			WithDetail("line", synErr.Found.Line).
			WithDetail("column", synErr.Found.Column)
	case errors.As(err, &lookupErr):
		return mdwerror.Wrap(err, "evaluation failed").
			WithCode(mdwerror.CodeLookup).
			WithOperation(operation).
			WithDetail("field", lookupErr.Field)
	case errors.As(err, &mdwErr):
		return err
	}
	return mdwerror.Wrap(err, "interpretation failed").
		WithCode(mdwerror.CodeInternal).
		WithOperation(operation)
}
