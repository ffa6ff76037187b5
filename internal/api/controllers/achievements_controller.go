package controllers

import (
	"github.com/gin-gonic/gin"

	"izybotanic/internal/services"
	"izybotanic/pkg/utils"
)

type AchievementsController struct {
	achievementsService services.AchievementsServiceInterface
}

func NewAchievementsController(achievementsService services.AchievementsServiceInterface) *AchievementsController {
	return &AchievementsController{
		achievementsService: achievementsService,
	}
}

// List godoc
// @Summary Get the badge catalog and the user's unlocked set
// @Tags Achievements
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /achievements [get]
func (a *AchievementsController) List(c *gin.Context) {
	result, err := a.achievementsService.List(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Achievements fetched successfully")
}
