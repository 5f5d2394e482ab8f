package controllers

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jday1/euros/api/models"
	"github.com/jday1/euros/logging"
	"github.com/jday1/euros/storage"
)

type FixturesController struct {
	fixturesStorage storage.FixtureStorage
	picksStorage    storage.PickStorage
	playersStorage  storage.PlayerStorage
	cutoff          time.Time
}

func NewFixturesController(fixtureStorage storage.FixtureStorage, pickStorage storage.PickStorage, playerStorage storage.PlayerStorage, cutoff time.Time) *FixturesController {
	return &FixturesController{
		fixturesStorage: fixtureStorage,
		picksStorage:    pickStorage,
		playersStorage:  playerStorage,
		cutoff:          cutoff,
	}
}

func (c *FixturesController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.GET("/fixtures", c.listFixtures)
	group.GET("/fixtures/:number/owners", c.getFixtureOwners)
}

// listFixtures godoc
// @Summary List fixtures
// @Description All fixtures ordered by date, optionally filtered by team and/or round
// @Tags fixtures
// @Produce json
// @Param team query string false "Filter by home or away team"
// @Param round query string false "Filter by round tag"
// @Success 200 {array} models.FixtureResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/fixtures [get]
func (c *FixturesController) listFixtures(g *gin.Context) {
	fixtures, err := c.fixturesStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("FIXTURE: failed to list fixtures: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load fixtures"})
		return
	}

	team := g.Query("team")
	round := g.Query("round")

	responses := make([]models.FixtureResponse, 0, len(fixtures))
	for _, f := range fixtures {
		if team != "" && f.HomeTeam != team && f.AwayTeam != team {
			continue
		}
		if round != "" && f.Round != round {
			continue
		}
		responses = append(responses, models.TransformFixtureFromStorage(f))
	}

	sort.SliceStable(responses, func(i, j int) bool {
		if !responses[i].Date.Equal(responses[j].Date) {
			return responses[i].Date.Before(responses[j].Date)
		}
		return responses[i].MatchNumber < responses[j].MatchNumber
	})

	g.JSON(http.StatusOK, responses)
}

// getFixtureOwners godoc
// @Summary Token holders for both sides of a fixture
// @Description Who owns tokens in the home and away teams; hidden until the cutoff passes
// @Tags fixtures
// @Produce json
// @Param number path int true "Match number"
// @Success 200 {object} models.FixtureOwnersResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/fixtures/{number}/owners [get]
func (c *FixturesController) getFixtureOwners(g *gin.Context) {
	matchNumber, err := strconv.Atoi(g.Param("number"))
	if err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid match number"})
		return
	}

	if time.Now().Before(c.cutoff) {
		g.JSON(http.StatusForbidden, &models.ErrorResponse{Error: "token choices are hidden until the cutoff"})
		return
	}

	fixture, err := c.fixturesStorage.Get(g.Request.Context(), matchNumber)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "fixture not found"})
			return
		}
		logging.Log.Errorf("FIXTURE: failed to get match %d: %v", matchNumber, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load fixture"})
		return
	}

	picks, err := c.picksStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("FIXTURE: failed to load picks: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load picks"})
		return
	}

	players, err := c.playersStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("FIXTURE: failed to load players: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load players"})
		return
	}

	displayName := make(map[string]string, len(players))
	for _, p := range players {
		displayName[p.Username] = p.DisplayName
	}

	owners := func(team string) models.TeamOwners {
		result := models.TeamOwners{Team: team, Owners: []models.TokenOwner{}}
		for _, pick := range picks {
			if pick.Team != team || pick.Tokens <= 0 {
				continue
			}
			name, ok := displayName[pick.Username]
			if !ok {
				name = pick.Username
			}
			result.Owners = append(result.Owners, models.TokenOwner{User: name, Tokens: pick.Tokens})
		}
		sort.Slice(result.Owners, func(i, j int) bool {
			return result.Owners[i].User < result.Owners[j].User
		})
		return result
	}

	g.JSON(http.StatusOK, &models.FixtureOwnersResponse{
		MatchNumber: fixture.MatchNumber,
		Home:        owners(fixture.HomeTeam),
		Away:        owners(fixture.AwayTeam),
	})
}
