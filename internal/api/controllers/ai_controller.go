package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type AIController struct {
	tripService services.TripServiceInterface
	logger      *zap.Logger
}

func NewAIController(tripService services.TripServiceInterface, logger *zap.Logger) *AIController {
	return &AIController{
		tripService: tripService,
		logger:      logger,
	}
}

// Generate godoc
// @Summary Generate free-form itinerary text
// @Description Forward a prompt to the configured AI provider and return its reply untouched
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.PromptRequest true "Prompt payload"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/generate [post]
func (a *AIController) Generate(c *gin.Context) {
	var req request_models.PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Prompt is required")
		return
	}

	message, err := a.tripService.GenerateRaw(c.Request.Context(), req.Prompt)
	if err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	utils.RespondSuccess(c, response_models.GenerateResponse{Message: message}, "Generated successfully")
}
