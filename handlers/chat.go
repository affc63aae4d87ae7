// File: handlers/chat.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"soulace/services/chat"
	"soulace/utils"
)

// ChatHandler serves the supportive chatbot endpoints.
type ChatHandler struct {
	Service chat.ChatService
	Logger  *zap.Logger
}

// NewChatHandler constructs a ChatHandler.
func NewChatHandler(svc chat.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Service: svc, Logger: logger}
}

// ConverseHandler handles POST /api/chat.
func (h *ChatHandler) ConverseHandler(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bad_request", "invalid chat payload: "+err.Error())
		return
	}

	reply, err := h.Service.Converse(c.Request.Context(), c.GetString("userID"), req.Message)
	if err != nil {
		h.Logger.Error("chat turn failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "chat_unavailable", "The chat assistant is unavailable right now.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// ResetChatHandler handles DELETE /api/chat/context.
func (h *ChatHandler) ResetChatHandler(c *gin.Context) {
	if err := h.Service.Reset(c.Request.Context(), c.GetString("userID")); err != nil {
		h.Logger.Error("failed to reset chat context", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "An unexpected error occurred.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
