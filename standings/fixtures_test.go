package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureScore(t *testing.T) {
	t.Run("Happy path - plain result", func(t *testing.T) {
		home, away, err := Fixture{MatchNumber: 1, Result: "2-1"}.Score()
		require.NoError(t, err)
		assert.Equal(t, 2, home)
		assert.Equal(t, 1, away)
	})

	t.Run("Happy path - shootout score takes precedence", func(t *testing.T) {
		home, away, err := Fixture{MatchNumber: 40, Result: "1-1 (4-3)"}.Score()
		require.NoError(t, err)
		assert.Equal(t, 4, home)
		assert.Equal(t, 3, away)
	})

	t.Run("Happy path - double digit goals", func(t *testing.T) {
		home, away, err := Fixture{MatchNumber: 2, Result: "10-0"}.Score()
		require.NoError(t, err)
		assert.Equal(t, 10, home)
		assert.Equal(t, 0, away)
	})

	t.Run("Unhappy path - goal count overflows int", func(t *testing.T) {
		for _, result := range []string{"99999999999999999999-0", "1-1 (99999999999999999999-3)"} {
			_, _, err := Fixture{MatchNumber: 7, Result: result}.Score()
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr, "result %q should not parse", result)
			assert.Equal(t, result, parseErr.Result)
		}
	})

	t.Run("Unhappy path - malformed result", func(t *testing.T) {
		for _, result := range []string{"abc", "2", "2-", "-1", "2-1 (", "2-1 4-3", "2:1"} {
			_, _, err := Fixture{MatchNumber: 7, Result: result}.Score()
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr, "result %q should not parse", result)
			assert.Equal(t, 7, parseErr.MatchNumber)
			assert.Equal(t, result, parseErr.Result)
		}
	})
}

func TestFixtureOutcomes(t *testing.T) {
	cases := []struct {
		result string
		home   Outcome
		away   Outcome
	}{
		{"2-1", Win, Loss},
		{"0-3", Loss, Win},
		{"1-1", Draw, Draw},
		{"0-0 (5-4)", Win, Loss},
		{"2-2 (3-4)", Loss, Win},
	}

	for _, c := range cases {
		home, away, err := Fixture{Result: c.result}.Outcomes()
		require.NoError(t, err)
		assert.Equal(t, c.home, home, "home outcome for %q", c.result)
		assert.Equal(t, c.away, away, "away outcome for %q", c.result)
	}
}

func TestDividendSchedule(t *testing.T) {
	t.Run("Group stage pays 1 / 0.5 / 0", func(t *testing.T) {
		for _, round := range []string{RoundGroup1, RoundGroup2, RoundGroup3} {
			f := Fixture{Round: round}

			win, err := Dividend(f, Win)
			require.NoError(t, err)
			assert.Equal(t, 1.0, win)

			draw, err := Dividend(f, Draw)
			require.NoError(t, err)
			assert.Equal(t, 0.5, draw)

			loss, err := Dividend(f, Loss)
			require.NoError(t, err)
			assert.Equal(t, 0.0, loss)
		}
	})

	t.Run("Knockout rounds double each time", func(t *testing.T) {
		expected := map[string]float64{
			RoundOf16:     2,
			QuarterFinals: 4,
			SemiFinals:    8,
			RoundFinal:    16,
		}
		for round, want := range expected {
			win, err := Dividend(Fixture{Round: round}, Win)
			require.NoError(t, err)
			assert.Equal(t, want, win, round)

			loss, err := Dividend(Fixture{Round: round}, Loss)
			require.NoError(t, err)
			assert.Equal(t, 0.0, loss, round)
		}
	})

	t.Run("Group stage conserves one point per decisive or drawn match", func(t *testing.T) {
		f := Fixture{Round: RoundGroup2}

		win, _ := Dividend(f, Win)
		loss, _ := Dividend(f, Loss)
		assert.Equal(t, 1.0, win+loss)

		draw, _ := Dividend(f, Draw)
		assert.Equal(t, 1.0, draw+draw)
	})

	t.Run("Unhappy path - knockout draw has no dividend", func(t *testing.T) {
		_, err := Dividend(Fixture{MatchNumber: 41, Round: RoundOf16}, Draw)
		var outcomeErr *InvalidRoundOutcomeError
		require.ErrorAs(t, err, &outcomeErr)
		assert.Equal(t, 41, outcomeErr.MatchNumber)
		assert.Equal(t, RoundOf16, outcomeErr.Round)
	})

	t.Run("Unhappy path - unknown round tag", func(t *testing.T) {
		_, err := Dividend(Fixture{Round: "Third Place Play-off"}, Win)
		var roundErr *UnknownRoundError
		require.ErrorAs(t, err, &roundErr)
		assert.Equal(t, "Third Place Play-off", roundErr.Round)
	})
}

func TestValidateTeams(t *testing.T) {
	teams := []string{"France", "England"}

	t.Run("Happy path - played fixtures with known teams", func(t *testing.T) {
		fixtures := []Fixture{
			{MatchNumber: 1, HomeTeam: "France", AwayTeam: "England", Result: "2-1"},
		}
		assert.NoError(t, ValidateTeams(fixtures, teams))
	})

	t.Run("Placeholder teams pass until the fixture settles", func(t *testing.T) {
		fixtures := []Fixture{
			{MatchNumber: 45, HomeTeam: "Winner Match 39", AwayTeam: "Winner Match 37"},
		}
		assert.NoError(t, ValidateTeams(fixtures, teams))
	})

	t.Run("Unhappy path - settled fixture with unknown team", func(t *testing.T) {
		fixtures := []Fixture{
			{MatchNumber: 3, HomeTeam: "France", AwayTeam: "Atlantis", Result: "1-0"},
		}
		err := ValidateTeams(fixtures, teams)
		var inconsistency *InputInconsistencyError
		require.ErrorAs(t, err, &inconsistency)
		assert.Equal(t, 3, inconsistency.MatchNumber)
		assert.Equal(t, "Atlantis", inconsistency.Team)
	})
}
