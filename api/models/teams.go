package models

import "github.com/jday1/euros/storage"

type TeamCreateRequest struct {
	Name  string `json:"name"`
	Group string `json:"group"`
	Flag  string `json:"flag"`
}

type TeamUpdateRequest struct {
	Group string `json:"group"`
	Flag  string `json:"flag"`
}

type TeamResponse struct {
	Name  string `json:"name"`
	Group string `json:"group"`
	Flag  string `json:"flag"`
}

func TransformTeamFromStorage(t *storage.Team) TeamResponse {
	return TeamResponse{
		Name:  t.Name,
		Group: t.Group,
		Flag:  t.Flag,
	}
}
