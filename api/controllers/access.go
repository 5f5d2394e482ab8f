package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jday1/euros/api/models"
	"github.com/jday1/euros/logging"
	"github.com/jday1/euros/storage"
)

type AccessController struct {
	codesStorage   storage.InviteCodeStorage
	playersStorage storage.PlayerStorage
}

func NewAccessController(codeStorage storage.InviteCodeStorage, playerStorage storage.PlayerStorage) *AccessController {
	return &AccessController{
		codesStorage:   codeStorage,
		playersStorage: playerStorage,
	}
}

func (c *AccessController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.POST("/register", c.register)
}

// register godoc
// @Summary Redeem an invite code
// @Description Creates a player account from a single-use invite code
// @Tags access
// @Accept json
// @Produce json
// @Param registration body models.RegisterRequest true "Invite code and credentials"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/register [post]
func (c *AccessController) register(g *gin.Context) {
	var req models.RegisterRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Code == "" || req.Username == "" || req.Password == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "code, username and password are required"})
		return
	}

	inviteCode, err := c.codesStorage.Get(g.Request.Context(), req.Code)
	if err != nil || inviteCode == nil || inviteCode.Used {
		g.JSON(http.StatusConflict, &models.ErrorResponse{Error: "code not valid or already used"})
		return
	}

	player := &storage.Player{
		Username:    strings.ToLower(req.Username),
		Password:    req.Password,
		DisplayName: capitalize(req.Username),
		CreatedAt:   time.Now().UTC(),
	}
	if err := c.playersStorage.Create(g.Request.Context(), player); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			g.JSON(http.StatusConflict, &models.ErrorResponse{Error: "username already taken"})
			return
		}
		logging.Log.Errorf("ACCESS: failed to create player %s: %v", player.Username, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not create player"})
		return
	}

	if err := c.codesStorage.MarkUsed(g.Request.Context(), inviteCode.Code); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			// A racing registration redeemed the code between our read and
			// the conditional write.
			g.JSON(http.StatusConflict, &models.ErrorResponse{Error: "code not valid or already used"})
			return
		}
		logging.Log.Errorf("ACCESS: failed to mark code as used: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not mark code as used"})
		return
	}

	logging.Log.Infof("ACCESS: registered player %s", player.Username)
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "registered"})
}

func capitalize(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
}
