package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streamhive/backend/internal/application"
	"github.com/streamhive/backend/pkg/response"
)

type CommentHandler struct {
	Comments *application.CommentService
}

func NewCommentHandler(comments *application.CommentService) *CommentHandler {
	return &CommentHandler{Comments: comments}
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *CommentHandler) Add(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	comment, err := h.Comments.Add(c.Request.Context(), c.Param("videoId"), c.GetString("userID"), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, comment, "comment added successfully")
}

func (h *CommentHandler) ListByVideo(c *gin.Context) {
	page, limit := pageParams(c)
	comments, total, err := h.Comments.ListByVideo(c.Request.Context(), c.Param("videoId"), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"comments": comments,
		"total":    total,
		"page":     page,
		"limit":    limit,
	}, "comments fetched successfully")
}

func (h *CommentHandler) Update(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	comment, err := h.Comments.Update(c.Request.Context(), c.Param("commentId"), c.GetString("userID"), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, comment, "comment updated successfully")
}

func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.Comments.Delete(c.Request.Context(), c.Param("commentId"), c.GetString("userID")); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "comment deleted successfully")
}
