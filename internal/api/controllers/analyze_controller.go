package controllers

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"izybotanic/internal/flows"
	"izybotanic/pkg/utils"
)

type AnalyzeController struct {
	flows flows.Flows
}

func NewAnalyzeController(aiFlows flows.Flows) *AnalyzeController {
	return &AnalyzeController{
		flows: aiFlows,
	}
}

// AnalyzePlant godoc
// @Summary Analyze an uploaded plant photo
// @Description Accepts a multipart "photo" file and proxies it into the image-analysis flow
// @Tags Analyze
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Plant photo"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /analyze-plant [post]
func (a *AnalyzeController) AnalyzePlant(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "No photo uploaded")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read uploaded photo")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read uploaded photo")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))

	result, err := a.flows.AnalyzePlantImage(c.Request.Context(), flows.AnalyzePlantImageInput{PhotoDataURI: dataURI})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Plant analyzed successfully")
}
