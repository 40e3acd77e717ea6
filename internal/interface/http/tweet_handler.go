package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streamhive/backend/internal/application"
	"github.com/streamhive/backend/pkg/response"
)

type TweetHandler struct {
	Tweets *application.TweetService
}

func NewTweetHandler(tweets *application.TweetService) *TweetHandler {
	return &TweetHandler{Tweets: tweets}
}

type tweetRequest struct {
	Content string `json:"content" binding:"required,max=280"`
}

func (h *TweetHandler) Create(c *gin.Context) {
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	t, err := h.Tweets.Create(c.Request.Context(), c.GetString("userID"), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, t, "tweet created successfully")
}

func (h *TweetHandler) ListByOwner(c *gin.Context) {
	out, err := h.Tweets.ListByOwner(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "tweets fetched successfully")
}

func (h *TweetHandler) Update(c *gin.Context) {
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	t, err := h.Tweets.Update(c.Request.Context(), c.Param("tweetId"), c.GetString("userID"), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "tweet updated successfully")
}

func (h *TweetHandler) Delete(c *gin.Context) {
	if err := h.Tweets.Delete(c.Request.Context(), c.Param("tweetId"), c.GetString("userID")); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "tweet deleted successfully")
}
