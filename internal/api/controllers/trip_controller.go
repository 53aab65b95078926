package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
	logger      *zap.Logger
}

func NewTripController(tripService services.TripServiceInterface, logger *zap.Logger) *TripController {
	return &TripController{
		tripService: tripService,
		logger:      logger,
	}
}

// CreateTrip godoc
// @Summary Plan a trip
// @Description Generate an itinerary for the given destination and dates
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination, start date and end date are required")
		return
	}

	plan, err := t.tripService.PlanTrip(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}

	utils.RespondSuccess(c, plan, "Trip planned successfully")
}

// ListTrips godoc
// @Summary List the account's trips
// @Description Paginated trip metadata, newest first
// @Tags Trips
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	trips, err := t.tripService.ListTrips(c.Request.Context(), c.GetString("user_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Fetch a planned trip
// @Description Return the structured itinerary, with any saved edit applied
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	plan, err := t.tripService.GetTrip(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}

	utils.RespondSuccess(c, plan, "Trip fetched successfully")
}

// SaveContent godoc
// @Summary Save edited itinerary content
// @Description Store the edited rendering verbatim as the displayed document
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.SaveContentRequest true "Edited markup"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/content [put]
func (t *TripController) SaveContent(c *gin.Context) {
	var req request_models.SaveContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Content is required")
		return
	}

	if err := t.tripService.SaveEditedContent(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req.Content); err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}

	utils.RespondSuccess(c, nil, "Content saved")
}

// DeleteContent godoc
// @Summary Discard edited itinerary content
// @Description Revert the displayed document to the generated rendering
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/content [delete]
func (t *TripController) DeleteContent(c *gin.Context) {
	if err := t.tripService.DiscardEdit(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}

	utils.RespondSuccess(c, nil, "Edited content discarded")
}

// ExportPDF godoc
// @Summary Export a trip as PDF
// @Description Render the displayed itinerary into a downloadable PDF
// @Tags Trips
// @Produce application/pdf
// @Param id path string true "Trip ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/export [get]
func (t *TripController) ExportPDF(c *gin.Context) {
	tripID := c.Param("id")
	pdfBytes, err := t.tripService.ExportPDF(c.Request.Context(), c.GetString("user_id"), tripID)
	if err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "Trip_Itinerary.pdf"))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
