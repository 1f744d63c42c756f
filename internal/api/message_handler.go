package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate-backend-go/internal/core"
	"tripmate-backend-go/internal/models"
)

// MessageHandler handles API endpoints for vacation group messages.
type MessageHandler struct {
	messageService core.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(ms core.MessageService) *MessageHandler {
	return &MessageHandler{messageService: ms}
}

// SendMessage handles POST /vacations/:vacationId/messages
func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	vacationID := c.Param("vacationId")

	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	message, err := h.messageService.SendMessage(c.Request.Context(), vacationID, userID, req)
	if err != nil {
		mapCoreErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

// ListMessages handles GET /vacations/:vacationId/messages
func (h *MessageHandler) ListMessages(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	vacationID := c.Param("vacationId")

	paginationParams := make(map[string]string)
	if c.Query("limit") != "" {
		paginationParams["limit"] = c.Query("limit")
	}
	if c.Query("startAfter") != "" {
		paginationParams["startAfter"] = c.Query("startAfter")
	}

	messages, err := h.messageService.ListMessages(c.Request.Context(), vacationID, userID, paginationParams)
	if err != nil {
		mapCoreErrorToStatus(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageListResponse{
		VacationID: vacationID,
		Messages:   messages,
		Count:      len(messages),
	})
}

// EditMessage handles PUT /vacations/:vacationId/messages/:messageId
func (h *MessageHandler) EditMessage(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	vacationID := c.Param("vacationId")
	messageID := c.Param("messageId")
	if messageID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Message ID is required"})
		return
	}

	var req models.EditMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	message, err := h.messageService.EditMessage(c.Request.Context(), vacationID, userID, messageID, req)
	if err != nil {
		mapCoreErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

// DeleteMessage handles DELETE /vacations/:vacationId/messages/:messageId
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	vacationID := c.Param("vacationId")
	messageID := c.Param("messageId")
	if messageID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Message ID is required"})
		return
	}

	if err := h.messageService.DeleteMessage(c.Request.Context(), vacationID, userID, messageID); err != nil {
		mapCoreErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Message deleted successfully"})
}
