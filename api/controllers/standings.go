package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jday1/euros/api/models"
	"github.com/jday1/euros/logging"
	"github.com/jday1/euros/standings"
	"github.com/jday1/euros/storage"
)

type StandingsController struct {
	fixturesStorage storage.FixtureStorage
	picksStorage    storage.PickStorage
	playersStorage  storage.PlayerStorage
	teamsStorage    storage.TeamStorage
	customOrderings map[string][]string
}

func NewStandingsController(fixtureStorage storage.FixtureStorage, pickStorage storage.PickStorage, playerStorage storage.PlayerStorage, teamStorage storage.TeamStorage, customOrderings map[string][]string) *StandingsController {
	return &StandingsController{
		fixturesStorage: fixtureStorage,
		picksStorage:    pickStorage,
		playersStorage:  playerStorage,
		teamsStorage:    teamStorage,
		customOrderings: customOrderings,
	}
}

func (c *StandingsController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.GET("/standings", c.getStandings)
	group.GET("/standings/series", c.getSeries)
	group.GET("/standings/ranks", c.getRanks)
	group.GET("/standings/ledger", c.getLedger)
	group.GET("/groups/:group", c.getGroupTable)
}

// settle loads a fresh snapshot of fixtures, players and picks and runs the
// settlement over it. Every call recomputes from scratch; there is no cache
// to invalidate when a result lands.
func (c *StandingsController) settle(ctx context.Context) (*standings.Ledger, error) {
	fixtures, err := c.fixturesStorage.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load fixtures: %w", err)
	}
	teams, err := c.teamsStorage.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load teams: %w", err)
	}

	allocations, err := c.loadAllocations(ctx, teams)
	if err != nil {
		return nil, err
	}

	engineFixtures := make([]standings.Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		engineFixtures = append(engineFixtures, transformFixture(f))
	}

	teamNames := make([]string, 0, len(teams))
	for _, team := range teams {
		teamNames = append(teamNames, team.Name)
	}
	if err := standings.ValidateTeams(engineFixtures, teamNames); err != nil {
		return nil, err
	}

	return standings.Settle(engineFixtures, standings.NormalizeAllocations(allocations))
}

// loadAllocations builds the full (user, team) token grid. Players who never
// submitted picks, and teams a player skipped, are filled in with 0 so no
// user is ever missing from the ledger.
func (c *StandingsController) loadAllocations(ctx context.Context, teams []*storage.Team) ([]standings.Allocation, error) {
	players, err := c.playersStorage.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load players: %w", err)
	}
	picks, err := c.picksStorage.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load picks: %w", err)
	}

	displayName := make(map[string]string, len(players))
	for _, p := range players {
		displayName[p.Username] = p.DisplayName
	}

	tokens := make(map[string]map[string]int, len(players))
	for _, pick := range picks {
		name, ok := displayName[pick.Username]
		if !ok {
			// Pick rows for deleted players still count towards team totals.
			name = pick.Username
		}
		if tokens[name] == nil {
			tokens[name] = make(map[string]int)
		}
		tokens[name][pick.Team] = pick.Tokens
	}
	for _, p := range players {
		if tokens[p.DisplayName] == nil {
			tokens[p.DisplayName] = make(map[string]int)
		}
	}

	var allocations []standings.Allocation
	for user, byTeam := range tokens {
		for _, team := range teams {
			allocations = append(allocations, standings.Allocation{
				User:   user,
				Team:   team.Name,
				Tokens: byTeam[team.Name],
			})
		}
	}
	return allocations, nil
}

func transformFixture(f *storage.Fixture) standings.Fixture {
	return standings.Fixture{
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

// settlementError maps engine failures to a safe response: bad reference
// data is a server-side problem, never something to paper over with a
// partial table.
func settlementError(g *gin.Context, err error) {
	logging.Log.Errorf("STANDINGS: settlement failed: %v", err)

	var parseErr *standings.ParseError
	var roundErr *standings.UnknownRoundError
	var outcomeErr *standings.InvalidRoundOutcomeError
	var inputErr *standings.InputInconsistencyError
	if errors.As(err, &parseErr) || errors.As(err, &roundErr) || errors.As(err, &outcomeErr) || errors.As(err, &inputErr) {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "standings unavailable: bad fixture data"})
		return
	}
	g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "standings unavailable"})
}

// getStandings godoc
// @Summary Current leaderboard
// @Description Users ranked by total points allocated; not available until the first result is in
// @Tags standings
// @Produce json
// @Success 200 {object} models.StandingsResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/standings [get]
func (c *StandingsController) getStandings(g *gin.Context) {
	ledger, err := c.settle(g.Request.Context())
	if err != nil {
		settlementError(g, err)
		return
	}
	if ledger.Empty() {
		g.JSON(http.StatusOK, &models.StandingsResponse{Available: false})
		return
	}

	response := models.TransformLeaderboard(ledger.Leaderboard())
	g.JSON(http.StatusOK, response)
}

// getSeries godoc
// @Summary Cumulative points over time
// @Description Per-user running totals ordered by date then match number
// @Tags standings
// @Produce json
// @Success 200 {object} models.SeriesResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/standings/series [get]
func (c *StandingsController) getSeries(g *gin.Context) {
	ledger, err := c.settle(g.Request.Context())
	if err != nil {
		settlementError(g, err)
		return
	}
	if ledger.Empty() {
		g.JSON(http.StatusOK, &models.SeriesResponse{Available: false})
		return
	}

	g.JSON(http.StatusOK, models.TransformSeries(ledger.CumulativeSeries()))
}

// getRanks godoc
// @Summary Leaderboard position over time
// @Description Each user's rank after every settled fixture, same tie policy as the leaderboard
// @Tags standings
// @Produce json
// @Success 200 {object} models.RanksResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/standings/ranks [get]
func (c *StandingsController) getRanks(g *gin.Context) {
	ledger, err := c.settle(g.Request.Context())
	if err != nil {
		settlementError(g, err)
		return
	}
	if ledger.Empty() {
		g.JSON(http.StatusOK, &models.RanksResponse{Available: false})
		return
	}

	g.JSON(http.StatusOK, models.TransformRanks(ledger.RankSeries()))
}

// getLedger godoc
// @Summary Full settlement ledger
// @Description One row per settled fixture, side and user with the dividend and ownership applied
// @Tags standings
// @Produce json
// @Success 200 {object} models.LedgerResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/standings/ledger [get]
func (c *StandingsController) getLedger(g *gin.Context) {
	ledger, err := c.settle(g.Request.Context())
	if err != nil {
		settlementError(g, err)
		return
	}
	if ledger.Empty() {
		g.JSON(http.StatusOK, &models.LedgerResponse{Available: false})
		return
	}

	g.JSON(http.StatusOK, models.TransformLedger(ledger))
}

// getGroupTable godoc
// @Summary Group stage table
// @Description League table for one group with the usual 3/1/0 points
// @Tags standings
// @Produce json
// @Param group path string true "Group letter, e.g. A"
// @Success 200 {object} models.GroupTableResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/groups/{group} [get]
func (c *StandingsController) getGroupTable(g *gin.Context) {
	group := "Group " + g.Param("group")

	fixtures, err := c.fixturesStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("STANDINGS: failed to load fixtures for %s: %v", group, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load fixtures"})
		return
	}

	engineFixtures := make([]standings.Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		engineFixtures = append(engineFixtures, transformFixture(f))
	}

	table, err := standings.GroupTable(group, engineFixtures, c.customOrderings[strings.ToLower(group)])
	if err != nil {
		settlementError(g, err)
		return
	}

	g.JSON(http.StatusOK, models.TransformGroupTable(group, table))
}
