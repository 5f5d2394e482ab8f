package standings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, time.June, d, 15, 0, 0, 0, time.UTC)
}

func TestSettleEndToEnd(t *testing.T) {
	fixtures := []Fixture{
		{MatchNumber: 1, Round: RoundGroup1, Date: day(14), HomeTeam: "France", AwayTeam: "England", Result: "2-1"},
	}
	ownership := NormalizeAllocations([]Allocation{
		{User: "Alice", Team: "France", Tokens: 6},
		{User: "Alice", Team: "England", Tokens: 6},
		{User: "Bob", Team: "France", Tokens: 0},
		{User: "Bob", Team: "England", Tokens: 12},
	})

	ledger, err := Settle(fixtures, ownership)
	require.NoError(t, err)
	require.False(t, ledger.Empty())

	// Two sides, two users.
	require.Len(t, ledger.Rows, 4)

	totals := ledger.Totals()
	assert.InDelta(t, 1.0, totals["Alice"], 1e-9, "Alice owns all of France, which won a group match")
	assert.InDelta(t, 0.0, totals["Bob"], 1e-9, "Bob only owns England, which lost")

	leaderboard := ledger.Leaderboard()
	require.Len(t, leaderboard, 2)
	assert.Equal(t, Standing{Position: 1, User: "Alice", Points: 1.0}, leaderboard[0])
	assert.Equal(t, Standing{Position: 2, User: "Bob", Points: 0.0}, leaderboard[1])
}

func TestSettleExcludesFixturesWithoutResult(t *testing.T) {
	fixtures := []Fixture{
		{MatchNumber: 1, Round: RoundGroup1, Date: day(14), HomeTeam: "France", AwayTeam: "England", Result: "2-1"},
		{MatchNumber: 2, Round: RoundGroup1, Date: day(15), HomeTeam: "Spain", AwayTeam: "Italy"},
		{MatchNumber: 3, Round: RoundGroup1, Date: day(15), HomeTeam: "Albania", AwayTeam: "Poland", Result: "  "},
	}
	ownership := NormalizeAllocations([]Allocation{
		{User: "Alice", Team: "France", Tokens: 12},
	})

	ledger, err := Settle(fixtures, ownership)
	require.NoError(t, err)

	for _, row := range ledger.Rows {
		assert.Equal(t, 1, row.MatchNumber, "only the settled fixture should contribute rows")
	}
}

func TestSettleNotYetAvailable(t *testing.T) {
	fixtures := []Fixture{
		{MatchNumber: 1, Round: RoundGroup1, Date: day(14), HomeTeam: "France", AwayTeam: "England"},
	}
	ownership := NormalizeAllocations([]Allocation{
		{User: "Alice", Team: "France", Tokens: 12},
	})

	ledger, err := Settle(fixtures, ownership)
	require.NoError(t, err)
	assert.True(t, ledger.Empty())
	assert.Empty(t, ledger.Leaderboard())
}

func TestSettleAbortsOnMalformedResult(t *testing.T) {
	fixtures := []Fixture{
		{MatchNumber: 1, Round: RoundGroup1, Date: day(14), HomeTeam: "France", AwayTeam: "England", Result: "2-1"},
		{MatchNumber: 2, Round: RoundGroup1, Date: day(15), HomeTeam: "Spain", AwayTeam: "Italy", Result: "abc"},
	}
	ownership := NormalizeAllocations([]Allocation{
		{User: "Alice", Team: "France", Tokens: 12},
	})

	ledger, err := Settle(fixtures, ownership)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.MatchNumber)
	assert.Nil(t, ledger, "no partial ledger on failure")
}

func TestSettleAbortsOnUnknownRound(t *testing.T) {
	fixtures := []Fixture{
		{MatchNumber: 1, Round: "Group Stage", Date: day(14), HomeTeam: "France", AwayTeam: "England", Result: "2-1"},
	}
	ownership := NormalizeAllocations([]Allocation{
		{User: "Alice", Team: "France", Tokens: 12},
	})

	_, err := Settle(fixtures, ownership)
	var roundErr *UnknownRoundError
	require.ErrorAs(t, err, &roundErr)
	assert.Equal(t, "Group Stage", roundErr.Round)
}

func TestSettleUnknownTeamPaysNothing(t *testing.T) {
	fixtures := []Fixture{
		{MatchNumber: 1, Round: RoundGroup1, Date: day(14), HomeTeam: "Georgia", AwayTeam: "England", Result: "2-1"},
	}
	ownership := NormalizeAllocations([]Allocation{
		{User: "Alice", Team: "England", Tokens: 12},
	})

	ledger, err := Settle(fixtures, ownership)
	require.NoError(t, err)
	require.Len(t, ledger.Rows, 2)

	for _, row := range ledger.Rows {
		if row.Team == "Georgia" {
			assert.Zero(t, row.Ownership)
			assert.Zero(t, row.PointsAllocated)
			assert.Equal(t, "Alice", row.User, "the user is never omitted")
		}
	}
}

func TestCumulativeSeriesIsMonotonic(t *testing.T) {
	fixtures := []Fixture{
		{MatchNumber: 3, Round: RoundGroup1, Date: day(16), HomeTeam: "Spain", AwayTeam: "Italy", Result: "1-1"},
		{MatchNumber: 1, Round: RoundGroup1, Date: day(14), HomeTeam: "France", AwayTeam: "England", Result: "2-1"},
		{MatchNumber: 2, Round: RoundGroup1, Date: day(15), HomeTeam: "France", AwayTeam: "Spain", Result: "0-0"},
		{MatchNumber: 4, Round: RoundOf16, Date: day(29), HomeTeam: "France", AwayTeam: "Italy", Result: "1-1 (5-4)"},
	}
	ownership := NormalizeAllocations([]Allocation{
		{User: "Alice", Team: "France", Tokens: 8},
		{User: "Alice", Team: "Spain", Tokens: 4},
		{User: "Bob", Team: "Italy", Tokens: 6},
		{User: "Bob", Team: "England", Tokens: 6},
	})

	ledger, err := Settle(fixtures, ownership)
	require.NoError(t, err)

	series := ledger.CumulativeSeries()
	require.NotEmpty(t, series)

	last := make(map[string]float64)
	lastMatch := 0
	for _, point := range series {
		assert.GreaterOrEqual(t, point.CumulativePoints, last[point.User],
			"cumulative points must never decrease for %s", point.User)
		last[point.User] = point.CumulativePoints
		assert.GreaterOrEqual(t, point.MatchNumber, lastMatch, "series follows date order")
		lastMatch = point.MatchNumber
	}

	// Alice: France win (1.0), both sides of the France-Spain draw
	// (0.5 + 0.5), Spain's second draw (0.5), France shootout win (2.0).
	// Bob: England and Italy losses, plus Italy's draw (0.5).
	final := make(map[string]float64)
	for _, point := range series {
		final[point.User] = point.CumulativePoints
	}
	assert.InDelta(t, 4.5, final["Alice"], 1e-9)
	assert.InDelta(t, 0.5, final["Bob"], 1e-9)
}

func TestLeaderboardTiePolicy(t *testing.T) {
	fixtures := []Fixture{
		{MatchNumber: 1, Round: RoundGroup1, Date: day(14), HomeTeam: "France", AwayTeam: "England", Result: "2-1"},
		{MatchNumber: 2, Round: RoundGroup1, Date: day(14), HomeTeam: "Spain", AwayTeam: "Italy", Result: "3-0"},
	}
	ownership := NormalizeAllocations([]Allocation{
		{User: "Alice", Team: "France", Tokens: 12},
		{User: "Bob", Team: "Spain", Tokens: 12},
		{User: "Carol", Team: "England", Tokens: 12},
	})

	ledger, err := Settle(fixtures, ownership)
	require.NoError(t, err)

	leaderboard := ledger.Leaderboard()
	require.Len(t, leaderboard, 3)

	// Alice and Bob both hold a full winning team.
	assert.Equal(t, 1, leaderboard[0].Position)
	assert.Equal(t, 1, leaderboard[1].Position)
	assert.Equal(t, 3, leaderboard[2].Position, "next distinct rank is tied rank plus tie count")
	assert.Equal(t, "Carol", leaderboard[2].User)
}

func TestRankSeriesMatchesLeaderboardPolicy(t *testing.T) {
	fixtures := []Fixture{
		{MatchNumber: 1, Round: RoundGroup1, Date: day(14), HomeTeam: "France", AwayTeam: "England", Result: "2-1"},
		{MatchNumber: 2, Round: RoundGroup1, Date: day(15), HomeTeam: "England", AwayTeam: "France", Result: "1-0"},
	}
	ownership := NormalizeAllocations([]Allocation{
		{User: "Alice", Team: "France", Tokens: 12},
		{User: "Bob", Team: "England", Tokens: 12},
	})

	ledger, err := Settle(fixtures, ownership)
	require.NoError(t, err)

	ranks := ledger.RankSeries()
	require.Len(t, ranks, 4)

	byStep := make(map[int]map[string]int)
	for _, r := range ranks {
		if byStep[r.MatchNumber] == nil {
			byStep[r.MatchNumber] = make(map[string]int)
		}
		byStep[r.MatchNumber][r.User] = r.Position
	}

	assert.Equal(t, 1, byStep[1]["Alice"])
	assert.Equal(t, 2, byStep[1]["Bob"])

	// After both wins the users are level on 1.0 and share first place.
	assert.Equal(t, 1, byStep[2]["Alice"])
	assert.Equal(t, 1, byStep[2]["Bob"])
}

func TestSettleIsDeterministic(t *testing.T) {
	fixtures := []Fixture{
		{MatchNumber: 2, Round: RoundGroup1, Date: day(15), HomeTeam: "Spain", AwayTeam: "Italy", Result: "1-1"},
		{MatchNumber: 1, Round: RoundGroup1, Date: day(14), HomeTeam: "France", AwayTeam: "England", Result: "2-1"},
	}
	allocations := []Allocation{
		{User: "Bob", Team: "Italy", Tokens: 12},
		{User: "Alice", Team: "France", Tokens: 7},
		{User: "Alice", Team: "Spain", Tokens: 5},
	}

	first, err := Settle(fixtures, NormalizeAllocations(allocations))
	require.NoError(t, err)
	second, err := Settle(fixtures, NormalizeAllocations(allocations))
	require.NoError(t, err)

	assert.Equal(t, first.Rows, second.Rows)
	assert.Equal(t, first.Leaderboard(), second.Leaderboard())
	assert.Equal(t, first.CumulativeSeries(), second.CumulativeSeries())
}
