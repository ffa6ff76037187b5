package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"izybotanic/internal/models/request_models"
	"izybotanic/internal/services"
	"izybotanic/pkg/utils"
)

type JournalController struct {
	gardenService services.GardenServiceInterface
}

func NewJournalController(gardenService services.GardenServiceInterface) *JournalController {
	return &JournalController{
		gardenService: gardenService,
	}
}

// ListEntries godoc
// @Summary List journal entries
// @Description Optionally filtered by plantId
// @Tags Journal
// @Produce json
// @Param plantId query string false "Plant ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journal [get]
func (j *JournalController) ListEntries(c *gin.Context) {
	entries, err := j.gardenService.ListJournal(c.Request.Context(), c.GetString("user_id"), c.Query("plantId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Journal entries fetched successfully")
}

// AddEntry godoc
// @Summary Add a journal entry
// @Description The entry must reference an existing plant
// @Tags Journal
// @Accept json
// @Produce json
// @Param request body request_models.AddJournalEntryRequest true "Journal entry payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journal [post]
func (j *JournalController) AddEntry(c *gin.Context) {
	var req request_models.AddJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := j.gardenService.AddJournalEntry(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Journal entry added successfully")
}
