package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"izybotanic/internal/models/request_models"
	"izybotanic/internal/services"
	"izybotanic/pkg/utils"
)

type DiscoverController struct {
	discoverService services.DiscoverServiceInterface
}

func NewDiscoverController(discoverService services.DiscoverServiceInterface) *DiscoverController {
	return &DiscoverController{
		discoverService: discoverService,
	}
}

// Suggestions godoc
// @Summary Suggest new plants for the user
// @Description Matches suggestions to the existing collection and the stated preferences
// @Tags Discover
// @Accept json
// @Produce json
// @Param request body request_models.SuggestionsRequest true "Preferences payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /discover/suggestions [post]
func (d *DiscoverController) Suggestions(c *gin.Context) {
	var req request_models.SuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := d.discoverService.Suggestions(c.Request.Context(), c.GetString("user_id"), req.Preferences)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Suggestions fetched successfully")
}

// SeasonalTip godoc
// @Summary Get a seasonal gardening tip
// @Tags Discover
// @Produce json
// @Param season query string false "Season, e.g. Verão"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/tip [get]
func (d *DiscoverController) SeasonalTip(c *gin.Context) {
	result, err := d.discoverService.SeasonalTip(c.Request.Context(), c.Query("season"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Seasonal tip fetched successfully")
}
