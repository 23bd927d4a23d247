package competition

import (
	"net/http"

	"github.com/DhavalSuthar-24/nfteams-api/internal/middleware"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/logger"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CompetitionController answers in the {text, type} shape the chat client renders.
type CompetitionController struct {
	svc *Service
}

func NewCompetitionController(svc *Service) *CompetitionController {
	return &CompetitionController{svc: svc}
}

// EnterCompetition godoc
// @Summary      Enter the open competition
// @Description  Creates a pending entry for one of the caller's teams and returns payment instructions.
// @Tags         Competition
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  EnterRequest  true  "Team to enter"
// @Success      200  {object} responses.TextResponse
// @Failure      400  {object} responses.TextResponse
// @Failure      401  {object} responses.TextResponse
// @Failure      500  {object} responses.TextResponse "Failed to enter competition"
// @Router       /api/competition/enter [post]
func (cc *CompetitionController) EnterCompetition(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil || identity.WalletAddress == "" {
		responses.SendText(c, http.StatusUnauthorized, "Wallet address not found in token")
		return
	}

	var req EnterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendText(c, http.StatusBadRequest, "Team ID is required")
		return
	}

	text, err := cc.svc.Enter(c.Request.Context(), identity.WalletAddress, *req.TeamID)
	if err != nil {
		logger.From(c).Error("enter competition", zap.Error(err))
		responses.SendText(c, http.StatusInternalServerError, "Failed to enter competition")
		return
	}
	responses.SendText(c, http.StatusOK, text)
}

// UpdateCompScores godoc
// @Summary      Refresh competition scores
// @Description  Recomputes every confirmed entry's score in the active competition and returns the leaderboard.
// @Tags         Competition
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} responses.TextResponse
// @Failure      500  {object} responses.TextResponse "Failed to update competition scores"
// @Router       /api/competition/update-scores [post]
func (cc *CompetitionController) UpdateCompScores(c *gin.Context) {
	text, err := cc.svc.UpdateScores(c.Request.Context())
	if err != nil {
		logger.From(c).Error("update competition scores", zap.Error(err))
		responses.SendText(c, http.StatusInternalServerError, "Failed to update competition scores")
		return
	}
	responses.SendText(c, http.StatusOK, text)
}
