package models

import (
	"math"
	"time"

	"github.com/jday1/euros/standings"
)

// StandingsResponse is the leaderboard. Available is false until at least
// one fixture has a result; the table is omitted rather than served empty.
type StandingsResponse struct {
	Available bool            `json:"available"`
	Standings []StandingEntry `json:"standings,omitempty"`
}

type StandingEntry struct {
	Position int     `json:"position"`
	User     string  `json:"user"`
	Points   float64 `json:"points"`
}

type SeriesResponse struct {
	Available bool          `json:"available"`
	Series    []SeriesEntry `json:"series,omitempty"`
}

type SeriesEntry struct {
	User             string    `json:"user"`
	MatchNumber      int       `json:"matchNumber"`
	Date             time.Time `json:"date"`
	CumulativePoints float64   `json:"cumulativePoints"`
}

type RanksResponse struct {
	Available bool        `json:"available"`
	Ranks     []RankEntry `json:"ranks,omitempty"`
}

type RankEntry struct {
	User        string    `json:"user"`
	MatchNumber int       `json:"matchNumber"`
	Date        time.Time `json:"date"`
	Position    int       `json:"position"`
}

type LedgerResponse struct {
	Available bool          `json:"available"`
	Rows      []LedgerEntry `json:"rows,omitempty"`
}

type LedgerEntry struct {
	MatchNumber     int       `json:"matchNumber"`
	Round           string    `json:"round"`
	Date            time.Time `json:"date"`
	Team            string    `json:"team"`
	User            string    `json:"user"`
	Outcome         string    `json:"outcome"`
	Dividend        float64   `json:"dividend"`
	Ownership       float64   `json:"ownership"`
	PointsAllocated float64   `json:"pointsAllocated"`
}

// round3 is display rounding only; the engine keeps full precision.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func TransformLeaderboard(entries []standings.Standing) StandingsResponse {
	response := StandingsResponse{Available: true, Standings: make([]StandingEntry, 0, len(entries))}
	for _, e := range entries {
		response.Standings = append(response.Standings, StandingEntry{
			Position: e.Position,
			User:     e.User,
			Points:   round3(e.Points),
		})
	}
	return response
}

func TransformSeries(points []standings.SeriesPoint) SeriesResponse {
	response := SeriesResponse{Available: true, Series: make([]SeriesEntry, 0, len(points))}
	for _, p := range points {
		response.Series = append(response.Series, SeriesEntry{
			User:             p.User,
			MatchNumber:      p.MatchNumber,
			Date:             p.Date,
			CumulativePoints: round3(p.CumulativePoints),
		})
	}
	return response
}

func TransformRanks(points []standings.RankPoint) RanksResponse {
	response := RanksResponse{Available: true, Ranks: make([]RankEntry, 0, len(points))}
	for _, p := range points {
		response.Ranks = append(response.Ranks, RankEntry{
			User:        p.User,
			MatchNumber: p.MatchNumber,
			Date:        p.Date,
			Position:    p.Position,
		})
	}
	return response
}

func TransformLedger(ledger *standings.Ledger) LedgerResponse {
	response := LedgerResponse{Available: true, Rows: make([]LedgerEntry, 0, len(ledger.Rows))}
	for _, row := range ledger.Rows {
		response.Rows = append(response.Rows, LedgerEntry{
			MatchNumber:     row.MatchNumber,
			Round:           row.Round,
			Date:            row.Date,
			Team:            row.Team,
			User:            row.User,
			Outcome:         string(row.Outcome),
			Dividend:        row.Dividend,
			Ownership:       row.Ownership,
			PointsAllocated: row.PointsAllocated,
		})
	}
	return response
}

type GroupTableResponse struct {
	Group string          `json:"group"`
	Table []GroupTableRow `json:"table"`
}

type GroupTableRow struct {
	Position       int    `json:"position"`
	Team           string `json:"team"`
	Played         int    `json:"played"`
	Points         int    `json:"points"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
}

func TransformGroupTable(group string, table []standings.TableRow) GroupTableResponse {
	response := GroupTableResponse{Group: group, Table: make([]GroupTableRow, 0, len(table))}
	for _, row := range table {
		response.Table = append(response.Table, GroupTableRow{
			Position:       row.Position,
			Team:           row.Team,
			Played:         row.Played,
			Points:         row.Points,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
		})
	}
	return response
}
