package automaton

import (
	"errors"
	"fmt"
)

var (
	// ErrUndefinedTransition matches every *UndefinedTransitionError.
	ErrUndefinedTransition = errors.New("undefined transition")

	// ErrNotEnoughExamples is returned by LanguageExamples when its bounded scan ends
	// before two accepted and two rejected words were found.
	ErrNotEnoughExamples = errors.New("not enough language examples")

	ErrStartNotInStates  = errors.New("start state is not a state of the automaton")
	ErrAcceptNotInStates = errors.New("accept state is not a state of the automaton")
	ErrTargetNotInStates = errors.New("transition target is not a state of the automaton")
)

// UndefinedTransitionError reports a (state, symbol) lookup with no transition.
type UndefinedTransitionError struct {
	State  State
	Symbol Symbol
}

func (e *UndefinedTransitionError) Error() string {
	return fmt.Sprintf("undefined transition from state %q on symbol %q", e.State, e.Symbol)
}

func (e *UndefinedTransitionError) Is(target error) bool {
	return target == ErrUndefinedTransition
}
