package standings

import (
	"sort"
	"time"
)

// Row is one user's point credit from one team's result in one fixture.
type Row struct {
	MatchNumber     int
	Round           string
	Date            time.Time
	Team            string
	User            string
	Outcome         Outcome
	Dividend        float64
	Ownership       float64
	PointsAllocated float64
}

// Ledger is the full settlement of every completed fixture against the
// ownership table. Rows are ordered by (date, match number, team, user) so
// identical inputs always produce identical output.
type Ledger struct {
	Rows []Row
}

// Settle builds the settlement ledger. Fixtures without a result contribute
// nothing. A malformed result, an unknown round tag or a knockout draw abort
// the whole computation rather than producing a partial ledger.
func Settle(fixtures []Fixture, ownership *Ownership) (*Ledger, error) {
	ledger := &Ledger{}

	sorted := make([]Fixture, len(fixtures))
	copy(sorted, fixtures)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].MatchNumber < sorted[j].MatchNumber
	})

	for _, f := range sorted {
		if !f.played() {
			continue
		}

		homeOutcome, awayOutcome, err := f.Outcomes()
		if err != nil {
			return nil, err
		}

		sides := []struct {
			team    string
			outcome Outcome
		}{
			{f.HomeTeam, homeOutcome},
			{f.AwayTeam, awayOutcome},
		}

		for _, side := range sides {
			dividend, err := Dividend(f, side.outcome)
			if err != nil {
				return nil, err
			}

			for _, user := range ownership.Users() {
				fraction := ownership.Fraction(side.team, user)
				ledger.Rows = append(ledger.Rows, Row{
					MatchNumber:     f.MatchNumber,
					Round:           f.Round,
					Date:            f.Date,
					Team:            side.team,
					User:            user,
					Outcome:         side.outcome,
					Dividend:        dividend,
					Ownership:       fraction,
					PointsAllocated: dividend * fraction,
				})
			}
		}
	}

	return ledger, nil
}

// Empty reports whether no fixture has settled yet, meaning standings are
// not yet available rather than all-zero.
func (l *Ledger) Empty() bool {
	return len(l.Rows) == 0
}

// Totals sums the points allocated to each user over the whole ledger.
func (l *Ledger) Totals() map[string]float64 {
	totals := make(map[string]float64)
	for _, row := range l.Rows {
		totals[row.User] += row.PointsAllocated
	}
	return totals
}
