package standings

import (
	"sort"
	"time"
)

// Standing is one leaderboard entry. Users on the same total share the same
// rank; the next distinct total takes rank equal to the tied rank plus the
// number of users tied at it.
type Standing struct {
	Position int
	User     string
	Points   float64
}

// SeriesPoint is one step of a user's cumulative points over time.
type SeriesPoint struct {
	User             string
	MatchNumber      int
	Date             time.Time
	PointsAllocated  float64
	CumulativePoints float64
}

// RankPoint is a user's leaderboard position after a given fixture settled.
type RankPoint struct {
	User        string
	MatchNumber int
	Date        time.Time
	Position    int
}

// Leaderboard ranks users by total points allocated, descending.
func (l *Ledger) Leaderboard() []Standing {
	return rank(l.Totals())
}

// CumulativeSeries produces each user's running total, ordered by date with
// the match number as tie-break for same-day fixtures. The series is
// non-decreasing for every user.
func (l *Ledger) CumulativeSeries() []SeriesPoint {
	steps := l.matchSteps()
	users := l.users()

	perMatch := make(map[int]map[string]float64, len(steps))
	for _, row := range l.Rows {
		if perMatch[row.MatchNumber] == nil {
			perMatch[row.MatchNumber] = make(map[string]float64)
		}
		perMatch[row.MatchNumber][row.User] += row.PointsAllocated
	}

	running := make(map[string]float64)
	series := make([]SeriesPoint, 0, len(steps)*len(users))
	for _, step := range steps {
		for _, user := range users {
			allocated := perMatch[step.MatchNumber][user]
			running[user] += allocated
			series = append(series, SeriesPoint{
				User:             user,
				MatchNumber:      step.MatchNumber,
				Date:             step.Date,
				PointsAllocated:  allocated,
				CumulativePoints: running[user],
			})
		}
	}
	return series
}

// RankSeries ranks every user at each settled fixture using the same tie
// policy as the final leaderboard.
func (l *Ledger) RankSeries() []RankPoint {
	steps := l.matchSteps()

	perMatch := make(map[int]map[string]float64, len(steps))
	for _, row := range l.Rows {
		if perMatch[row.MatchNumber] == nil {
			perMatch[row.MatchNumber] = make(map[string]float64)
		}
		perMatch[row.MatchNumber][row.User] += row.PointsAllocated
	}

	running := make(map[string]float64)
	points := make([]RankPoint, 0, len(steps)*len(l.users()))
	for _, step := range steps {
		for user, allocated := range perMatch[step.MatchNumber] {
			running[user] += allocated
		}
		for _, standing := range rank(running) {
			points = append(points, RankPoint{
				User:        standing.User,
				MatchNumber: step.MatchNumber,
				Date:        step.Date,
				Position:    standing.Position,
			})
		}
	}
	return points
}

type matchStep struct {
	MatchNumber int
	Date        time.Time
}

// matchSteps lists the settled fixtures in canonical (date, match number)
// order. Ledger rows are already sorted that way.
func (l *Ledger) matchSteps() []matchStep {
	var steps []matchStep
	seen := make(map[int]bool)
	for _, row := range l.Rows {
		if seen[row.MatchNumber] {
			continue
		}
		seen[row.MatchNumber] = true
		steps = append(steps, matchStep{MatchNumber: row.MatchNumber, Date: row.Date})
	}
	return steps
}

func (l *Ledger) users() []string {
	var users []string
	seen := make(map[string]bool)
	for _, row := range l.Rows {
		if !seen[row.User] {
			seen[row.User] = true
			users = append(users, row.User)
		}
	}
	sort.Strings(users)
	return users
}

// rank applies competition ranking: sort descending by points, ties share
// the minimum rank.
func rank(totals map[string]float64) []Standing {
	standings := make([]Standing, 0, len(totals))
	for user, points := range totals {
		standings = append(standings, Standing{User: user, Points: points})
	}

	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Points != standings[j].Points {
			return standings[i].Points > standings[j].Points
		}
		return standings[i].User < standings[j].User
	})

	for i := range standings {
		if i > 0 && standings[i].Points == standings[i-1].Points {
			standings[i].Position = standings[i-1].Position
		} else {
			standings[i].Position = i + 1
		}
	}
	return standings
}
