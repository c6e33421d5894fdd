package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/outflo/outflo-backend/internal/models"
	"github.com/outflo/outflo-backend/internal/services"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// GenerateMessage godoc
// @Summary Generate an outreach message
// @Description Generate one personalized outreach message for the described person
// @Tags messages
// @Accept json
// @Produce json
// @Param request body models.MessageRequest true "Person description"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /messages/generate-message [post]
func (h *MessageHandler) GenerateMessage(c *gin.Context) {
	var req models.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	response, err := h.messageService.Generate(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Err("Failed to generate message", err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.OK("Message generated successfully", response))
}
