package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"izybotanic/internal/models/request_models"
	"izybotanic/internal/services"
	"izybotanic/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// History godoc
// @Summary Get the chat history with Izy
// @Tags Chat
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat/history [get]
func (ch *ChatController) History(c *gin.Context) {
	history, err := ch.chatService.History(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, history, "Chat history fetched successfully")
}

// SendMessage godoc
// @Summary Ask Izy a question
// @Description Runs the expert-chat flow; on failure nothing is persisted
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Chat payload"
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat [post]
func (ch *ChatController) SendMessage(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reply, err := ch.chatService.SendMessage(c.Request.Context(), c.GetString("user_id"), req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply, "Izy replied")
}
