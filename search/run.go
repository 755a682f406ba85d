package search

import (
	"context"
	"iter"
)

// Result summarises a search driven to completion.
type Result struct {
	Path     []int   // start→goal; nil unless Found
	Cost     float64 // g(goal); 0 unless Found
	Found    bool
	Expanded int // nodes closed
	Steps    int // observations emitted, initial one included
}

// Run advances the engine until it reaches a terminal state and summarises
// the outcome. ctx is checked between steps; on cancellation Run returns
// ctx.Err() and the engine stays resumable.
//
// Run on a terminal engine returns ErrInvalidState, like Advance.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	var res Result
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		obs, err := e.Advance()
		if err != nil {
			return res, err
		}
		res.Steps++
		if obs.Terminal() {
			res.Found = obs.Kind == PathFound
			res.Path = obs.Path
			res.Cost = obs.Cost
			res.Expanded = e.expanded

			return res, nil
		}
	}
}

// Observations returns an iterator over the remaining observations. It
// stops after the terminal observation, or after yielding the first error.
//
//	for obs, err := range eng.Observations() {
//	    ...
//	}
func (e *Engine) Observations() iter.Seq2[Observation, error] {
	return func(yield func(Observation, error) bool) {
		for !e.state.Terminal() {
			obs, err := e.Advance()
			if !yield(obs, err) || err != nil {
				return
			}
		}
	}
}

// Path returns a copy of the reconstructed path once the engine is in
// GoalFound, nil otherwise.
func (e *Engine) Path() []int {
	if e.state != GoalFound {
		return nil
	}

	return append([]int(nil), e.path...)
}
