package controllers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/jday1/euros/api/models"
	"github.com/jday1/euros/api/transport"
	"github.com/jday1/euros/logging"
	"github.com/jday1/euros/storage"
)

type TeamMetaController struct {
	storage storage.TeamStorage
}

func NewTeamMetaController(s storage.TeamStorage) *TeamMetaController {
	return &TeamMetaController{storage: s}
}

func (c *TeamMetaController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/meta/teams")

	group.GET("", c.getAll)
	group.GET("/:name", c.get)
	group.POST("", transport.AdminAuthMiddleware(), c.create)
	group.PUT("/:name", transport.AdminAuthMiddleware(), c.update)
	group.DELETE("/:name", transport.AdminAuthMiddleware(), c.delete)
}

// @Summary Get all teams
// @Tags Meta/Teams
// @Produce json
// @Success 200 {array} models.TeamResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/teams [get]
func (c *TeamMetaController) getAll(g *gin.Context) {
	teams, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("META: failed to get all teams: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	// Sort this so it shows the same for everyone
	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].Name < teams[j].Name
	})

	responses := make([]models.TeamResponse, 0, len(teams))
	for _, team := range teams {
		responses = append(responses, models.TransformTeamFromStorage(team))
	}
	g.JSON(http.StatusOK, responses)
}

// @Summary Get a team by name
// @Tags Meta/Teams
// @Produce json
// @Param name path string true "Team name"
// @Success 200 {object} models.TeamResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/teams/{name} [get]
func (c *TeamMetaController) get(g *gin.Context) {
	name := g.Param("name")

	team, err := c.storage.Get(g.Request.Context(), name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "team not found"})
			return
		}
		logging.Log.Errorf("META: failed to get team: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	g.JSON(http.StatusOK, models.TransformTeamFromStorage(team))
}

// @Security AdminToken
// @Summary Create a team
// @Tags Meta/Teams
// @Accept json
// @Produce json
// @Param team body models.TeamCreateRequest true "Team"
// @Success 201 {object} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/teams [post]
func (c *TeamMetaController) create(g *gin.Context) {
	var req models.TeamCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Name == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid team"})
		return
	}

	team := &storage.Team{Name: req.Name, Group: req.Group, Flag: req.Flag}
	if err := c.storage.Create(g.Request.Context(), team); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			g.JSON(http.StatusConflict, models.ErrorResponse{Error: "team already exists"})
			return
		}
		logging.Log.Errorf("META: failed to create team: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	g.JSON(http.StatusCreated, models.TransformTeamFromStorage(team))
}

// @Security AdminToken
// @Summary Update a team
// @Tags Meta/Teams
// @Accept json
// @Produce json
// @Param name path string true "Team name"
// @Param team body models.TeamUpdateRequest true "Team"
// @Success 200 {object} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/teams/{name} [put]
func (c *TeamMetaController) update(g *gin.Context) {
	name := g.Param("name")

	var req models.TeamUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid team"})
		return
	}

	team := &storage.Team{Name: name, Group: req.Group, Flag: req.Flag}
	if err := c.storage.Update(g.Request.Context(), team); err != nil {
		logging.Log.Errorf("META: failed to update team: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	g.JSON(http.StatusOK, models.TransformTeamFromStorage(team))
}

// @Security AdminToken
// @Summary Delete a team
// @Tags Meta/Teams
// @Produce json
// @Param name path string true "Team name"
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/teams/{name} [delete]
func (c *TeamMetaController) delete(g *gin.Context) {
	name := g.Param("name")

	if err := c.storage.Delete(g.Request.Context(), name); err != nil {
		logging.Log.Errorf("META: failed to delete team: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	g.JSON(http.StatusOK, gin.H{"deleted": name})
}
