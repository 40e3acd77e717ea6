package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streamhive/backend/internal/application"
	"github.com/streamhive/backend/internal/domain/entity"
	"github.com/streamhive/backend/pkg/response"
)

type LikeHandler struct {
	Likes *application.LikeService
}

func NewLikeHandler(likes *application.LikeService) *LikeHandler {
	return &LikeHandler{Likes: likes}
}

func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	h.toggle(c, entity.LikeTargetVideo, c.Param("videoId"))
}

func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	h.toggle(c, entity.LikeTargetComment, c.Param("commentId"))
}

func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	h.toggle(c, entity.LikeTargetTweet, c.Param("tweetId"))
}

func (h *LikeHandler) toggle(c *gin.Context, target entity.LikeTarget, targetID string) {
	liked, err := h.Likes.Toggle(c.Request.Context(), c.GetString("userID"), target, targetID)
	if err != nil {
		fail(c, err)
		return
	}
	msg := "like removed"
	if liked {
		msg = "liked successfully"
	}
	response.Success(c, http.StatusOK, gin.H{"liked": liked}, msg)
}

func (h *LikeHandler) LikedVideos(c *gin.Context) {
	out, err := h.Likes.LikedVideos(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "liked videos fetched successfully")
}
