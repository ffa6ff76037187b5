package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"izybotanic/internal/models/request_models"
	"izybotanic/internal/services"
	"izybotanic/pkg/utils"
)

type GardenController struct {
	gardenService services.GardenServiceInterface
}

func NewGardenController(gardenService services.GardenServiceInterface) *GardenController {
	return &GardenController{
		gardenService: gardenService,
	}
}

// ListPlants godoc
// @Summary List the user's plants
// @Tags Garden
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plants [get]
func (g *GardenController) ListPlants(c *gin.Context) {
	plants, err := g.gardenService.ListPlants(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plants, "Plants fetched successfully")
}

// GetPlant godoc
// @Summary Get one plant by id
// @Tags Garden
// @Produce json
// @Param id path string true "Plant ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plants/{id} [get]
func (g *GardenController) GetPlant(c *gin.Context) {
	plantID := c.Param("id")
	if plantID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plant ID is required")
		return
	}

	plant, err := g.gardenService.GetPlant(c.Request.Context(), c.GetString("user_id"), plantID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plant, "Plant fetched successfully")
}

// AddPlant godoc
// @Summary Add a plant to the collection
// @Description Appends the analyzed plant and returns any newly earned achievements
// @Tags Garden
// @Accept json
// @Produce json
// @Param request body request_models.AddPlantRequest true "Plant payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plants [post]
func (g *GardenController) AddPlant(c *gin.Context) {
	var req request_models.AddPlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := g.gardenService.AddPlant(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Plant added successfully")
}

// DeletePlant godoc
// @Summary Delete a plant
// @Description Removes the plant and every journal entry that referenced it
// @Tags Garden
// @Produce json
// @Param id path string true "Plant ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plants/{id} [delete]
func (g *GardenController) DeletePlant(c *gin.Context) {
	plantID := c.Param("id")
	if plantID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plant ID is required")
		return
	}

	if err := g.gardenService.DeletePlant(c.Request.Context(), c.GetString("user_id"), plantID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plant deleted successfully")
}

// GetCarePlan godoc
// @Summary Get a plant's full care plan
// @Tags Garden
// @Produce json
// @Param id path string true "Plant ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plants/{id}/care-plan [get]
func (g *GardenController) GetCarePlan(c *gin.Context) {
	plantID := c.Param("id")
	if plantID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plant ID is required")
		return
	}

	plan, err := g.gardenService.GetCarePlan(c.Request.Context(), c.GetString("user_id"), plantID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Care plan fetched successfully")
}
