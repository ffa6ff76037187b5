package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"izybotanic/internal/flows"
	"izybotanic/pkg/utils"
)

type stubFlows struct {
	analysis    *flows.AnalyzePlantImageOutput
	analysisErr error
	lastInput   flows.AnalyzePlantImageInput
}

func (s *stubFlows) AnalyzePlantImage(ctx context.Context, input flows.AnalyzePlantImageInput) (*flows.AnalyzePlantImageOutput, error) {
	s.lastInput = input
	if s.analysisErr != nil {
		return nil, s.analysisErr
	}
	return s.analysis, nil
}

func (s *stubFlows) ExpertChat(ctx context.Context, input flows.ExpertChatInput) (*flows.ExpertChatOutput, error) {
	return nil, errors.New("not used")
}

func (s *stubFlows) SuggestNewPlants(ctx context.Context, input flows.SuggestNewPlantsInput) (*flows.SuggestNewPlantsOutput, error) {
	return nil, errors.New("not used")
}

func (s *stubFlows) GetSeasonalTip(ctx context.Context, input flows.GetSeasonalTipInput) (*flows.GetSeasonalTipOutput, error) {
	return nil, errors.New("not used")
}

func analyzeRouter(ai flows.Flows) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/analyze-plant", NewAnalyzeController(ai).AnalyzePlant)
	return r
}

func photoRequest(t *testing.T, content []byte, contentType string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="photo"; filename="plant.png"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze-plant", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestAnalyzePlant(t *testing.T) {
	ai := &stubFlows{analysis: &flows.AnalyzePlantImageOutput{
		Species:           "Monstera deliciosa",
		Health:            flows.HealthHealthy,
		WateringFrequency: "1x por semana",
		SunlightNeeds:     "Luz indireta",
		FullCarePlan:      "Regar semanalmente.",
	}}
	router := analyzeRouter(ai)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, photoRequest(t, []byte("fake-png-bytes"), "image/png"))

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "success", envelope.Status)

	data, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var out flows.AnalyzePlantImageOutput
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "Monstera deliciosa", out.Species)
	assert.Equal(t, flows.HealthHealthy, out.Health)

	// The upload reaches the flow as a typed data URI.
	assert.True(t, strings.HasPrefix(ai.lastInput.PhotoDataURI, "data:image/png;base64,"))
}

func TestAnalyzePlant_NoPhoto(t *testing.T) {
	router := analyzeRouter(&stubFlows{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze-plant", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "No photo uploaded", envelope.Message)
}

func TestAnalyzePlant_FlowFailure(t *testing.T) {
	ai := &stubFlows{analysisErr: utils.ErrFlowFailed}
	router := analyzeRouter(ai)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, photoRequest(t, []byte("fake-png-bytes"), "image/png"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
