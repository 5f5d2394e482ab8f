package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jday1/euros/api/models"
	"github.com/jday1/euros/api/transport"
	"github.com/jday1/euros/logging"
	"github.com/jday1/euros/standings"
	"github.com/jday1/euros/storage"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type AdminController struct {
	codesStorage    storage.InviteCodeStorage
	fixturesStorage storage.FixtureStorage
	picksStorage    storage.PickStorage
	fixtureSource   storage.FixtureSource
}

func NewAdminController(codeStorage storage.InviteCodeStorage, fixtureStorage storage.FixtureStorage, pickStorage storage.PickStorage, fixtureSource storage.FixtureSource) *AdminController {
	return &AdminController{
		codesStorage:    codeStorage,
		fixturesStorage: fixtureStorage,
		picksStorage:    pickStorage,
		fixtureSource:   fixtureSource,
	}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/admin", transport.AdminAuthMiddleware())

	group.GET("/codes", c.listCodes)
	group.POST("/codes", c.createCodes)
	group.DELETE("/codes/:code", c.deleteCode)
	group.PUT("/fixtures/:number/result", c.setResult)
	group.POST("/fixtures/import", c.importFixtures)
	group.POST("/picks/reset", c.resetPicks)
}

// @Security AdminToken
// listCodes godoc
// @Summary List all invite codes
// @Tags admin
// @Produce json
// @Success 200 {array} models.CodeResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/codes [get]
func (c *AdminController) listCodes(g *gin.Context) {
	codes, err := c.codesStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to list codes: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]models.CodeResponse, 0, len(codes))
	for _, code := range codes {
		responses = append(responses, models.TransformInviteCodeFromStorage(code))
	}

	logging.Log.Infof("ADMIN: listed %d codes", len(responses))
	g.JSON(http.StatusOK, responses)
}

// @Security AdminToken
// createCodes godoc
// @Summary Create one or more invite codes
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.CreateCodeRequest true "Create Code Request"
// @Success 200 {array} models.CodeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/codes [post]
func (c *AdminController) createCodes(g *gin.Context) {
	var req models.CreateCodeRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Count < 1 {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid request, missing count"})
		return
	}

	codes := make([]models.CodeResponse, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		code := &storage.InviteCode{
			Code:      c.generateShortCode(),
			CreatedAt: time.Now().UTC(),
			Used:      false,
		}
		if err := c.codesStorage.Put(g.Request.Context(), code); err == nil {
			logging.Log.Infof("ADMIN: created code: %s", code.Code)
			codes = append(codes, models.TransformInviteCodeFromStorage(code))
		} else {
			logging.Log.Errorf("ADMIN: failed to store code: %v", err)
		}
	}

	g.JSON(http.StatusOK, codes)
}

// @Security AdminToken
// deleteCode godoc
// @Summary Delete an invite code by its value
// @Tags admin
// @Produce json
// @Param code path string true "Invite code"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/codes/{code} [delete]
func (c *AdminController) deleteCode(g *gin.Context) {
	code := g.Param("code")
	if code == "" {
		g.JSON(http.StatusBadRequest, gin.H{"error": "missing code"})
		return
	}
	if err := c.codesStorage.Delete(g.Request.Context(), code); err != nil {
		logging.Log.Errorf("ADMIN: failed to delete code %s: %v", code, err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logging.Log.Infof("ADMIN: deleted code: %s", code)
	g.JSON(http.StatusOK, gin.H{"deleted": code})
}

// @Security AdminToken
// setResult godoc
// @Summary Record a fixture result
// @Description Stores the score line for a match, e.g. "2-1" or "1-1 (4-3)"
// @Tags admin
// @Accept json
// @Produce json
// @Param number path int true "Match number"
// @Param result body models.SetResultRequest true "Score line"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/fixtures/{number}/result [put]
func (c *AdminController) setResult(g *gin.Context) {
	matchNumber, err := strconv.Atoi(g.Param("number"))
	if err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid match number"})
		return
	}

	var req models.SetResultRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Result == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "missing result"})
		return
	}

	// Reject score lines the settlement would later choke on.
	probe := standings.Fixture{MatchNumber: matchNumber, Result: req.Result}
	if _, _, err := probe.Score(); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := c.fixturesStorage.SetResult(g.Request.Context(), matchNumber, req.Result); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "fixture not found"})
			return
		}
		logging.Log.Errorf("ADMIN: failed to set result for match %d: %v", matchNumber, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save result"})
		return
	}

	g.JSON(http.StatusOK, &models.MessageResponse{Message: "result recorded"})
}

// @Security AdminToken
// importFixtures godoc
// @Summary Import fixtures from the configured CSV source
// @Description Loads fixtures.csv from S3 and upserts every row
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/fixtures/import [post]
func (c *AdminController) importFixtures(g *gin.Context) {
	fixtures, err := c.fixtureSource.Load(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: fixture import failed: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not import fixtures"})
		return
	}

	imported := 0
	for _, fixture := range fixtures {
		if err := c.fixturesStorage.Put(g.Request.Context(), fixture); err != nil {
			logging.Log.Errorf("ADMIN: failed to store fixture %d: %v", fixture.MatchNumber, err)
			g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "import failed part way through"})
			return
		}
		imported++
	}

	logging.Log.Infof("ADMIN: imported %d fixtures", imported)
	g.JSON(http.StatusOK, gin.H{"imported": imported})
}

// @Security AdminToken
// resetPicks godoc
// @Summary Delete every player's picks
// @Tags admin
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/picks/reset [post]
func (c *AdminController) resetPicks(g *gin.Context) {
	if err := c.picksStorage.DeleteAll(g.Request.Context()); err != nil {
		logging.Log.Errorf("ADMIN: failed to reset picks: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: err.Error()})
		return
	}
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "all picks deleted"})
}

func (c *AdminController) generateShortCode() string {
	id, err := gonanoid.Generate(models.Alphabet, 8)
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to generate code: %v", err)
		return ""
	}
	return id
}
