package search

import "errors"

// DefaultStepCost is the cost of an edge when the problem does not price it.
const DefaultStepCost = 1.0

// ErrNoSuccessors is raised (as a panic) when a [Funcs] problem without a
// successor function is searched.
var ErrNoSuccessors = errors.New("search: problem does not implement successor generation")

// Problem is the capability set the search core consumes.
type Problem[S comparable] interface {
	Initial() S
	GoalTest(state S) bool
	Successors(state S) []S
}

// StepCoster is implemented by problems whose edges do not all cost
// [DefaultStepCost]. Costs must be non-negative.
type StepCoster[S comparable] interface {
	StepCost(from, to S) float64
}

// Heuristic estimates the remaining cost from a state to the goal.
// A* is optimal only when the estimate never exceeds the true cost.
type Heuristic[S comparable] func(state S) float64

// StepCost returns p's cost for the edge from → to, or [DefaultStepCost].
func StepCost[S comparable](p Problem[S], from, to S) float64 {
	if c, ok := p.(StepCoster[S]); ok {
		return c.StepCost(from, to)
	}
	return DefaultStepCost
}

// Funcs adapts plain functions to [Problem] and [StepCoster].
//
// A nil Goal never matches; a nil Cost prices every edge at
// [DefaultStepCost]. A nil Next is a contract violation and panics with
// [ErrNoSuccessors] on first use.
type Funcs[S comparable] struct {
	Start S
	Goal  func(S) bool
	Next  func(S) []S
	Cost  func(from, to S) float64
}

func (f Funcs[S]) Initial() S { return f.Start }

func (f Funcs[S]) GoalTest(state S) bool {
	return f.Goal != nil && f.Goal(state)
}

func (f Funcs[S]) Successors(state S) []S {
	if f.Next == nil {
		panic(ErrNoSuccessors)
	}
	return f.Next(state)
}

func (f Funcs[S]) StepCost(from, to S) float64 {
	if f.Cost == nil {
		return DefaultStepCost
	}
	return f.Cost(from, to)
}
