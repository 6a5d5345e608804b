// File: evaluator.go
// Title: Itinerary Evaluator
// Description: Walks a program tree and applies each statement to a
//              TripState: declarations set fields, day blocks and loops
//              append itinerary entries and accumulate costs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial evaluator implementation

package evaluator

import (
	"fmt"

	mdwerror "github.com/msto63/roteiro/foundation/core/error"
	mdwlog "github.com/msto63/roteiro/foundation/core/log"
	mdwast "github.com/msto63/roteiro/foundation/roteiro/ast"
)

// Evaluator applies program trees to trip states. It holds no per-run
// state and may be shared.
type Evaluator struct {
	logger *mdwlog.Logger
}

// Options configures the evaluator
type Options struct {
	Logger *mdwlog.Logger
}

// New creates a new evaluator
func New(opts Options) *Evaluator {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Evaluator{
		logger: opts.Logger.WithField("component", "roteiro-evaluator"),
	}
}

// Evaluate applies node to state with a default evaluator
func Evaluate(node mdwast.Node, state *TripState) error {
	return New(Options{}).Evaluate(node, state)
}

// Evaluate applies node and its subtree to state. Statements are applied
// in source order; a failing statement leaves the effects of the ones
// before it in place.
func (e *Evaluator) Evaluate(node mdwast.Node, state *TripState) error {
	if node == nil {
		return mdwerror.New("nil program node").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("evaluator.Evaluate")
	}
	if state == nil {
		return mdwerror.New("nil trip state").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("evaluator.Evaluate").
			WithDetail("node", node.String())
	}
	w := &walker{state: state, logger: e.logger}
	if err := node.Accept(w); err != nil {
		return err
	}

	e.logger.Debug("Itinerary evaluated", mdwlog.Fields{
		"days":        len(state.Itinerario),
		"total_custo": state.TotalCusto,
		"budget":      state.Budget,
	})
	return nil
}

// walker is the visitor carrying the state of one evaluation
type walker struct {
	state  *TripState
	logger *mdwlog.Logger
}

func (w *walker) all(nodes []mdwast.Node) error {
	for _, node := range nodes {
		if err := node.Accept(w); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) VisitProgram(node *mdwast.Program) error {
	return w.all(node.Statements)
}

func (w *walker) VisitDestinoDec(node *mdwast.DestinoDec) error {
	nome := node.Nome
	w.state.Destino = &nome
	if node.Pais != nil {
		pais := *node.Pais
		w.state.Pais = &pais
	}
	return nil
}

func (w *walker) VisitViagemDec(node *mdwast.ViagemDec) error {
	inicio, fim := node.Inicio, node.Fim
	w.state.DataInicio = &inicio
	w.state.DataFim = &fim
	return nil
}

func (w *walker) VisitBudgetDec(node *mdwast.BudgetDec) error {
	w.state.Budget = node.Valor
	return nil
}

func (w *walker) VisitDiaBlock(node *mdwast.DiaBlock) error {
	w.state.CurrentDay = node.Dia
	return w.all(node.Body)
}

// VisitLoopStmt replays the body once per day of the inclusive range. The
// body nodes are shared between iterations, only the current day changes.
func (w *walker) VisitLoopStmt(node *mdwast.LoopStmt) error {
	if node.Fim < node.Inicio {
		w.logger.Debug("Loop range is empty", mdwlog.Fields{
			"inicio": node.Inicio,
			"fim":    node.Fim,
		})
		return nil
	}
	for day := node.Inicio; ; day++ {
		w.state.CurrentDay = day
		if err := w.all(node.Body); err != nil {
			return err
		}
		if day == node.Fim {
			return nil
		}
	}
}

func (w *walker) VisitAtividade(node *mdwast.Atividade) error {
	return w.record("Atividade: " + node.Descricao)
}

func (w *walker) VisitCusto(node *mdwast.Custo) error {
	if err := w.record(fmt.Sprintf("Custo: $%d USD", node.Valor)); err != nil {
		return err
	}
	w.state.TotalCusto += node.Valor
	return nil
}

func (w *walker) VisitNoOp(*mdwast.NoOp) error {
	return nil
}

// record appends entry to the current day
func (w *walker) record(entry string) error {
	if w.state.Itinerario == nil {
		return &LookupError{Field: FieldItinerario}
	}
	day := w.state.CurrentDay
	w.state.Itinerario[day] = append(w.state.Itinerario[day], entry)
	return nil
}
