package models

import (
	"time"

	"github.com/jday1/euros/storage"
)

type FixtureResponse struct {
	MatchNumber int       `json:"matchNumber"`
	Round       string    `json:"round"`
	Group       string    `json:"group,omitempty"`
	Date        time.Time `json:"date"`
	HomeTeam    string    `json:"homeTeam"`
	AwayTeam    string    `json:"awayTeam"`
	Location    string    `json:"location"`
	Result      string    `json:"result,omitempty"`
}

type SetResultRequest struct {
	Result string `json:"result"`
}

type FixtureOwnersResponse struct {
	MatchNumber int        `json:"matchNumber"`
	Home        TeamOwners `json:"home"`
	Away        TeamOwners `json:"away"`
}

type TeamOwners struct {
	Team   string       `json:"team"`
	Owners []TokenOwner `json:"owners"`
}

type TokenOwner struct {
	User   string `json:"user"`
	Tokens int    `json:"tokens"`
}

func TransformFixtureFromStorage(f *storage.Fixture) FixtureResponse {
	return FixtureResponse{
		MatchNumber: f.MatchNumber,
		Round:       f.Round,
		Group:       f.Group,
		Date:        f.Date,
		HomeTeam:    f.HomeTeam,
		AwayTeam:    f.AwayTeam,
		Location:    f.Location,
		Result:      f.Result,
	}
}
