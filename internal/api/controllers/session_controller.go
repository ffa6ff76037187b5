package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"izybotanic/internal/models/request_models"
	"izybotanic/internal/services"
	"izybotanic/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
}

func NewSessionController(sessionService services.SessionServiceInterface) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// GetSession godoc
// @Summary Resolve the current session
// @Description Returns the application user for the bearer token; degrades to an empty-collections user when the store is unreachable
// @Tags Session
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /session [get]
func (s *SessionController) GetSession(c *gin.Context) {
	claims := &utils.Claims{
		UserID: c.GetString("user_id"),
		Name:   c.GetString("user_name"),
		Email:  c.GetString("user_email"),
	}

	session, err := s.sessionService.GetSession(c.Request.Context(), claims)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Session resolved"
	if session.Degraded {
		message = "Session resolved in degraded mode"
	}
	utils.RespondSuccess(c, session, message)
}

// Logout godoc
// @Summary End the current session
// @Description Tokens are stateless; the client discards the token after this call
// @Tags Session
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /session [delete]
func (s *SessionController) Logout(c *gin.Context) {
	utils.RespondSuccess(c, nil, "Logged out")
}

// UpdateUser godoc
// @Summary Replace the whole user document
// @Description Shallow-merges identity fields and wholesale-replaces all four collections; last write wins
// @Tags Session
// @Accept json
// @Produce json
// @Param request body request_models.UpdateUserRequest true "Whole user payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /session/user [put]
func (s *SessionController) UpdateUser(c *gin.Context) {
	var req request_models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := s.sessionService.UpdateUser(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User updated successfully")
}

// UpdateProfile godoc
// @Summary Update identity fields only
// @Tags Session
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /session/profile [put]
func (s *SessionController) UpdateProfile(c *gin.Context) {
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := s.sessionService.UpdateProfile(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "Profile updated successfully")
}
