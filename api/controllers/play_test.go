package controllers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	testutils "github.com/jday1/euros/api/controllers/testing"
	"github.com/jday1/euros/api/models"
	"github.com/jday1/euros/logging"
	"github.com/jday1/euros/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basicAuth(username, password string) map[string]string {
	token := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return map[string]string{"Authorization": "Basic " + token}
}

func setupPlayController(t *testing.T, cutoff time.Time) (*memPickStorage, *gin.Engine) {
	t.Helper()
	logging.Log = logrus.New()

	teamStorage := &memTeamStorage{teams: []*storage.Team{
		{Name: "France", Group: "Group A"},
		{Name: "England", Group: "Group A"},
		{Name: "Germany", Group: "Group B"},
	}}
	playerStorage := &memPlayerStorage{players: []*storage.Player{
		{Username: "alice", Password: "pw", DisplayName: "Alice"},
		{Username: "bob", Password: "hunter2", DisplayName: "Bob"},
	}}
	pickStorage := &memPickStorage{}

	controller := NewPlayController(pickStorage, teamStorage, playerStorage, cutoff)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller.RegisterRoutes(r)

	return pickStorage, r
}

func TestGetPicks(t *testing.T) {
	pickStorage, router := setupPlayController(t, time.Now().Add(time.Hour))

	t.Run("Unhappy path - no credentials", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/picks", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("Unhappy path - wrong password", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/picks", nil, basicAuth("alice", "wrong"))

		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("Happy path - zero-filled when nothing picked", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/picks", nil, basicAuth("alice", "pw"))

		require.Equal(t, http.StatusOK, res.Code)

		var response models.PicksResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &response))
		assert.Equal(t, "alice", response.Username)
		assert.True(t, response.Editable)
		require.Len(t, response.Picks, 3)
		for _, pick := range response.Picks {
			assert.Equal(t, 0, pick.Tokens)
		}
	})

	t.Run("Happy path - stored picks come back", func(t *testing.T) {
		pickStorage.picks = []*storage.Pick{
			{Username: "alice", Team: "France", Tokens: 8},
			{Username: "alice", Team: "England", Tokens: 4},
		}

		res := testutils.PerformRequest(router, http.MethodGet, "/api/picks", nil, basicAuth("alice", "pw"))

		require.Equal(t, http.StatusOK, res.Code)

		var response models.PicksResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &response))
		require.Len(t, response.Picks, 3)
		// Sorted by team name
		assert.Equal(t, models.PickEntry{Team: "England", Tokens: 4}, response.Picks[0])
		assert.Equal(t, models.PickEntry{Team: "France", Tokens: 8}, response.Picks[1])
		assert.Equal(t, models.PickEntry{Team: "Germany", Tokens: 0}, response.Picks[2])
	})
}

func TestUpdatePicks(t *testing.T) {
	t.Run("Happy path - full budget accepted", func(t *testing.T) {
		pickStorage, router := setupPlayController(t, time.Now().Add(time.Hour))

		payload := models.UpdatePicksRequest{Picks: []models.PickEntry{
			{Team: "France", Tokens: 7},
			{Team: "England", Tokens: 5},
		}}
		res := testutils.PerformRequest(router, http.MethodPut, "/api/picks", payload, basicAuth("alice", "pw"))

		require.Equal(t, http.StatusOK, res.Code)
		// A row is stored for every team, including the unpicked one
		require.Len(t, pickStorage.picks, 3)
		total := 0
		for _, pick := range pickStorage.picks {
			assert.Equal(t, "alice", pick.Username)
			total += pick.Tokens
		}
		assert.Equal(t, 12, total)
	})

	t.Run("Unhappy path - wrong total", func(t *testing.T) {
		_, router := setupPlayController(t, time.Now().Add(time.Hour))

		payload := models.UpdatePicksRequest{Picks: []models.PickEntry{
			{Team: "France", Tokens: 7},
			{Team: "England", Tokens: 4},
		}}
		res := testutils.PerformRequest(router, http.MethodPut, "/api/picks", payload, basicAuth("alice", "pw"))

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unhappy path - single team over the cap", func(t *testing.T) {
		_, router := setupPlayController(t, time.Now().Add(time.Hour))

		payload := models.UpdatePicksRequest{Picks: []models.PickEntry{
			{Team: "France", Tokens: 12},
		}}
		res := testutils.PerformRequest(router, http.MethodPut, "/api/picks", payload, basicAuth("alice", "pw"))

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unhappy path - negative tokens", func(t *testing.T) {
		_, router := setupPlayController(t, time.Now().Add(time.Hour))

		payload := models.UpdatePicksRequest{Picks: []models.PickEntry{
			{Team: "France", Tokens: 13},
			{Team: "England", Tokens: -1},
		}}
		res := testutils.PerformRequest(router, http.MethodPut, "/api/picks", payload, basicAuth("alice", "pw"))

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unhappy path - unknown team", func(t *testing.T) {
		_, router := setupPlayController(t, time.Now().Add(time.Hour))

		payload := models.UpdatePicksRequest{Picks: []models.PickEntry{
			{Team: "Atlantis", Tokens: 12},
		}}
		res := testutils.PerformRequest(router, http.MethodPut, "/api/picks", payload, basicAuth("alice", "pw"))

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unhappy path - frozen after the cutoff", func(t *testing.T) {
		_, router := setupPlayController(t, time.Now().Add(-time.Hour))

		payload := models.UpdatePicksRequest{Picks: []models.PickEntry{
			{Team: "France", Tokens: 7},
			{Team: "England", Tokens: 5},
		}}
		res := testutils.PerformRequest(router, http.MethodPut, "/api/picks", payload, basicAuth("alice", "pw"))

		assert.Equal(t, http.StatusForbidden, res.Code)
	})
}

func TestGetAllPicks(t *testing.T) {
	t.Run("Unhappy path - hidden before the cutoff", func(t *testing.T) {
		_, router := setupPlayController(t, time.Now().Add(time.Hour))

		res := testutils.PerformRequest(router, http.MethodGet, "/api/picks/all", nil, nil)

		assert.Equal(t, http.StatusForbidden, res.Code)
	})

	t.Run("Happy path - full table once frozen", func(t *testing.T) {
		pickStorage, router := setupPlayController(t, time.Now().Add(-time.Hour))
		pickStorage.picks = []*storage.Pick{
			{Username: "alice", Team: "France", Tokens: 8},
			{Username: "alice", Team: "England", Tokens: 4},
			{Username: "bob", Team: "France", Tokens: 12},
		}

		res := testutils.PerformRequest(router, http.MethodGet, "/api/picks/all", nil, nil)

		require.Equal(t, http.StatusOK, res.Code)

		var response models.AllPicksResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &response))
		assert.Equal(t, []string{"Alice", "Bob"}, response.Users)
		require.Len(t, response.Teams, 3)

		// Sorted by team name: England, France, Germany
		assert.Equal(t, "England", response.Teams[0].Team)
		assert.Equal(t, 4, response.Teams[0].Total)
		assert.Equal(t, "France", response.Teams[1].Team)
		assert.Equal(t, 20, response.Teams[1].Total)
		assert.Equal(t, 8, response.Teams[1].Tokens["Alice"])
		assert.Equal(t, 12, response.Teams[1].Tokens["Bob"])
		assert.Equal(t, "Germany", response.Teams[2].Team)
		assert.Equal(t, 0, response.Teams[2].Total)
	})
}
