// File: handlers/forum.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"soulace/services/forum"
	"soulace/utils"
)

// ForumHandler serves the peer-support forum endpoints.
type ForumHandler struct {
	Service forum.ForumService
	Logger  *zap.Logger
}

// NewForumHandler constructs a ForumHandler.
func NewForumHandler(svc forum.ForumService, logger *zap.Logger) *ForumHandler {
	return &ForumHandler{Service: svc, Logger: logger}
}

// PublishHandler handles POST /api/forum/posts.
func (h *ForumHandler) PublishHandler(c *gin.Context) {
	var req struct {
		DisplayName string `json:"displayName"`
		Body        string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bad_request", "invalid post payload: "+err.Error())
		return
	}
	if req.DisplayName == "" {
		req.DisplayName = "anonymous"
	}

	post, err := h.Service.Publish(c.Request.Context(), c.GetString("userID"), req.DisplayName, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, forum.ErrEmptyPost):
			utils.JSONError(c, http.StatusBadRequest, "empty_post", "Post body must not be empty.")
		case errors.Is(err, forum.ErrContentRejected):
			utils.JSONError(c, http.StatusUnprocessableEntity, "content_rejected", "This post cannot be published. Please rephrase and try again.")
		default:
			h.Logger.Error("failed to publish post", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "internal", "An unexpected error occurred.")
		}
		return
	}
	c.JSON(http.StatusCreated, post)
}

// FeedHandler handles GET /api/forum/posts.
func (h *ForumHandler) FeedHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)

	posts, err := h.Service.Feed(c.Request.Context(), limit)
	if err != nil {
		h.Logger.Error("failed to load forum feed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "An unexpected error occurred.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// FlaggedHandler handles GET /api/forum/posts/flagged. Moderator only.
func (h *ForumHandler) FlaggedHandler(c *gin.Context) {
	posts, err := h.Service.Flagged(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to load flagged posts", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "An unexpected error occurred.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// ModerateHandler handles POST /api/forum/posts/:id/moderate. Moderator only.
func (h *ForumHandler) ModerateHandler(c *gin.Context) {
	var req struct {
		Approve bool `json:"approve"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bad_request", "invalid moderation payload: "+err.Error())
		return
	}

	err := h.Service.Moderate(c.Request.Context(), c.Param("id"), req.Approve)
	if err != nil {
		if errors.Is(err, forum.ErrPostNotFound) {
			utils.JSONError(c, http.StatusNotFound, "post_not_found", "Post not found.")
			return
		}
		h.Logger.Error("failed to moderate post", zap.String("postId", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "An unexpected error occurred.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "moderated"})
}
