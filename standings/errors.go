package standings

import "fmt"

// ParseError reports a fixture whose result string could not be read.
type ParseError struct {
	MatchNumber int
	Result      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed result %q for match %d", e.Result, e.MatchNumber)
}

// UnknownRoundError reports a round tag outside the dividend schedule.
type UnknownRoundError struct {
	Round string
}

func (e *UnknownRoundError) Error() string {
	return fmt.Sprintf("unknown round number: %q", e.Round)
}

// InvalidRoundOutcomeError reports a draw in a knockout round, which has no
// dividend defined.
type InvalidRoundOutcomeError struct {
	MatchNumber int
	Round       string
}

func (e *InvalidRoundOutcomeError) Error() string {
	return fmt.Sprintf("draw reported for knockout round %q in match %d", e.Round, e.MatchNumber)
}

// InputInconsistencyError reports a fixture referencing a team that is not
// part of the reference team list.
type InputInconsistencyError struct {
	MatchNumber int
	Team        string
}

func (e *InputInconsistencyError) Error() string {
	return fmt.Sprintf("match %d references unknown team %q", e.MatchNumber, e.Team)
}
