// Package simulation models the income-simulator flow as an explicit
// state machine so the service layer can only move through legal
// transitions: a submitted target loads market data, a failed load
// opens manual entry, and a result can always be re-derived from
// adjusted rates.
package simulation

import (
	"errors"

	"patrimon/internal/marketdata"
)

// State is one phase of the simulator flow.
type State string

const (
	StateAwaitingTarget State = "awaiting_target"
	StateLoading        State = "loading"
	StateResult         State = "result"
	StateManualEntry    State = "manual_entry"
	StateError          State = "error"
)

// ErrInvalidTransition is returned when a flow method is called from a
// state it is not legal in.
var ErrInvalidTransition = errors.New("simulation: invalid state transition")

// Flow tracks one simulator instance for a single asset. Nothing here
// outlives the request that drives it except the target income, which
// the service caches per ticker.
type Flow struct {
	state  State
	target float64
	quote  *marketdata.Quote
}

// NewFlow returns a flow awaiting a target income.
func NewFlow() *Flow {
	return &Flow{state: StateAwaitingTarget}
}

// State returns the current state.
func (f *Flow) State() State { return f.state }

// Target returns the submitted target monthly income.
func (f *Flow) Target() float64 { return f.target }

// Quote returns the market data the flow currently holds, if any.
func (f *Flow) Quote() *marketdata.Quote { return f.quote }

// SubmitTarget records a positive target income and moves to Loading.
func (f *Flow) SubmitTarget(target float64) error {
	if f.state != StateAwaitingTarget {
		return ErrInvalidTransition
	}
	if target <= 0 {
		return errors.New("simulation: target income must be positive")
	}
	f.target = target
	f.state = StateLoading
	return nil
}

// QuoteLoaded records a successful market-data fetch and moves to Result.
func (f *Flow) QuoteLoaded(q *marketdata.Quote) error {
	if f.state != StateLoading || q == nil {
		return ErrInvalidTransition
	}
	f.quote = q
	f.state = StateResult
	return nil
}

// LoadFailed records a failed or empty fetch and moves to Error.
func (f *Flow) LoadFailed() error {
	if f.state != StateLoading {
		return ErrInvalidTransition
	}
	f.state = StateError
	return nil
}

// EnterManual moves from a failed fetch, or from an existing result
// ("adjust rates"), to manual entry. Leaving a result discards the
// previously fetched quote.
func (f *Flow) EnterManual() error {
	switch f.state {
	case StateError, StateResult:
		f.quote = nil
		f.state = StateManualEntry
		return nil
	}
	return ErrInvalidTransition
}

// SubmitManual records user-entered price and yield and moves to Result.
func (f *Flow) SubmitManual(q *marketdata.Quote) error {
	if f.state != StateManualEntry || q == nil {
		return ErrInvalidTransition
	}
	f.quote = q
	f.state = StateResult
	return nil
}
