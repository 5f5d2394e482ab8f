package models

import (
	"time"

	"github.com/jday1/euros/storage"
)

type PickEntry struct {
	Team   string `json:"team"`
	Tokens int    `json:"tokens"`
}

type UpdatePicksRequest struct {
	Picks []PickEntry `json:"picks"`
}

type PicksResponse struct {
	Username  string      `json:"username"`
	Editable  bool        `json:"editable"`
	Picks     []PickEntry `json:"picks"`
	UpdatedAt time.Time   `json:"updatedAt,omitempty"`
}

// AllPicksResponse is the everyone's-choices table shown once picks are
// frozen: tokens per (team, user) plus each team's total.
type AllPicksResponse struct {
	Users []string         `json:"users"`
	Teams []TeamAllocation `json:"teams"`
}

type TeamAllocation struct {
	Team   string         `json:"team"`
	Tokens map[string]int `json:"tokens"`
	Total  int            `json:"total"`
}

func TransformPicksFromStorage(username string, editable bool, picks []*storage.Pick) PicksResponse {
	response := PicksResponse{
		Username: username,
		Editable: editable,
		Picks:    make([]PickEntry, 0, len(picks)),
	}
	for _, p := range picks {
		response.Picks = append(response.Picks, PickEntry{Team: p.Team, Tokens: p.Tokens})
		if p.UpdatedAt.After(response.UpdatedAt) {
			response.UpdatedAt = p.UpdatedAt
		}
	}
	return response
}
