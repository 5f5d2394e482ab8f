package controllers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jday1/euros/api/models"
	"github.com/jday1/euros/api/transport"
	"github.com/jday1/euros/logging"
	"github.com/jday1/euros/storage"
)

// tokenBudget is each player's total, and tokenMax caps a single team so
// nobody can put the whole budget on one country.
const (
	tokenBudget = 12
	tokenMax    = 11
)

type PlayController struct {
	picksStorage   storage.PickStorage
	teamsStorage   storage.TeamStorage
	playersStorage storage.PlayerStorage
	cutoff         time.Time
}

func NewPlayController(pickStorage storage.PickStorage, teamStorage storage.TeamStorage, playerStorage storage.PlayerStorage, cutoff time.Time) *PlayController {
	return &PlayController{
		picksStorage:   pickStorage,
		teamsStorage:   teamStorage,
		playersStorage: playerStorage,
		cutoff:         cutoff,
	}
}

func (c *PlayController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.GET("/picks", transport.PlayerAuthMiddleware(c.playersStorage), c.getPicks)
	group.PUT("/picks", transport.PlayerAuthMiddleware(c.playersStorage), c.updatePicks)
	group.GET("/picks/all", c.getAllPicks)
}

func (c *PlayController) editable() bool {
	return time.Now().Before(c.cutoff)
}

// getPicks godoc
// @Summary The caller's token picks
// @Description Current allocation for the authenticated player, zero-filled for unpicked teams
// @Tags play
// @Produce json
// @Success 200 {object} models.PicksResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/picks [get]
func (c *PlayController) getPicks(g *gin.Context) {
	username := g.GetString(transport.UsernameKey)

	picks, err := c.picksStorage.GetByUser(g.Request.Context(), username)
	if err != nil {
		logging.Log.Errorf("PLAY: failed to load picks for %s: %v", username, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load picks"})
		return
	}

	teams, err := c.teamsStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("PLAY: failed to load teams: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load teams"})
		return
	}

	// Zero-fill so the client always sees the complete team list.
	byTeam := make(map[string]*storage.Pick, len(picks))
	for _, p := range picks {
		byTeam[p.Team] = p
	}
	full := make([]*storage.Pick, 0, len(teams))
	for _, team := range teams {
		if p, ok := byTeam[team.Name]; ok {
			full = append(full, p)
		} else {
			full = append(full, &storage.Pick{Username: username, Team: team.Name, Tokens: 0})
		}
	}
	sort.Slice(full, func(i, j int) bool { return full[i].Team < full[j].Team })

	g.JSON(http.StatusOK, models.TransformPicksFromStorage(username, c.editable(), full))
}

// updatePicks godoc
// @Summary Update the caller's token picks
// @Description Replaces the player's allocation; rejected after the cutoff
// @Tags play
// @Accept json
// @Produce json
// @Param picks body models.UpdatePicksRequest true "Full token allocation"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/picks [put]
func (c *PlayController) updatePicks(g *gin.Context) {
	username := g.GetString(transport.UsernameKey)

	if !c.editable() {
		g.JSON(http.StatusForbidden, &models.ErrorResponse{Error: "the cutoff has passed, picks are frozen"})
		return
	}

	var req models.UpdatePicksRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	teams, err := c.teamsStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("PLAY: failed to load teams: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load teams"})
		return
	}

	known := make(map[string]bool, len(teams))
	for _, team := range teams {
		known[team.Name] = true
	}

	tokens := make(map[string]int, len(req.Picks))
	total := 0
	for _, pick := range req.Picks {
		if !known[pick.Team] {
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "unknown team: " + pick.Team})
			return
		}
		if pick.Tokens < 0 || pick.Tokens > tokenMax {
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "token values must be between 0 and 11"})
			return
		}
		tokens[pick.Team] += pick.Tokens
		total += pick.Tokens
	}
	if total != tokenBudget {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "token values must sum to 12"})
		return
	}

	// Store a row for every known team so downstream reads never have gaps.
	now := time.Now().UTC()
	full := make([]*storage.Pick, 0, len(teams))
	for _, team := range teams {
		full = append(full, &storage.Pick{
			Username:  username,
			Team:      team.Name,
			Tokens:    tokens[team.Name],
			UpdatedAt: now,
		})
	}

	if err := c.picksStorage.ReplaceForUser(g.Request.Context(), username, full); err != nil {
		logging.Log.Errorf("PLAY: failed to store picks for %s: %v", username, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save picks"})
		return
	}

	logging.Log.Infof("PLAY: %s updated picks", username)
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "picks updated"})
}

// getAllPicks godoc
// @Summary Everyone's picks
// @Description Tokens per team and user with team totals; hidden until the cutoff passes
// @Tags play
// @Produce json
// @Success 200 {object} models.AllPicksResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/picks/all [get]
func (c *PlayController) getAllPicks(g *gin.Context) {
	if c.editable() {
		g.JSON(http.StatusForbidden, &models.ErrorResponse{Error: "everyone's picks appear once selections are final"})
		return
	}

	picks, err := c.picksStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("PLAY: failed to load picks: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load picks"})
		return
	}

	players, err := c.playersStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("PLAY: failed to load players: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load players"})
		return
	}

	teams, err := c.teamsStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("PLAY: failed to load teams: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load teams"})
		return
	}

	displayName := make(map[string]string, len(players))
	users := make([]string, 0, len(players))
	for _, p := range players {
		displayName[p.Username] = p.DisplayName
		users = append(users, p.DisplayName)
	}
	sort.Strings(users)

	byTeam := make(map[string]map[string]int)
	for _, pick := range picks {
		name, ok := displayName[pick.Username]
		if !ok {
			name = pick.Username
		}
		if byTeam[pick.Team] == nil {
			byTeam[pick.Team] = make(map[string]int)
		}
		byTeam[pick.Team][name] = pick.Tokens
	}

	response := models.AllPicksResponse{Users: users, Teams: make([]models.TeamAllocation, 0, len(teams))}
	for _, team := range teams {
		allocation := models.TeamAllocation{Team: team.Name, Tokens: make(map[string]int, len(users))}
		for _, user := range users {
			count := byTeam[team.Name][user]
			allocation.Tokens[user] = count
			allocation.Total += count
		}
		response.Teams = append(response.Teams, allocation)
	}
	sort.Slice(response.Teams, func(i, j int) bool { return response.Teams[i].Team < response.Teams[j].Team })

	g.JSON(http.StatusOK, response)
}
