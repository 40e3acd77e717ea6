package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streamhive/backend/internal/application"
	"github.com/streamhive/backend/pkg/response"
)

type SubscriptionHandler struct {
	Subs *application.SubscriptionService
}

func NewSubscriptionHandler(subs *application.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{Subs: subs}
}

func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	subscribed, err := h.Subs.Toggle(c.Request.Context(), c.GetString("userID"), c.Param("channelId"))
	if err != nil {
		fail(c, err)
		return
	}
	msg := "unsubscribed successfully"
	if subscribed {
		msg = "subscribed successfully"
	}
	response.Success(c, http.StatusOK, gin.H{"subscribed": subscribed}, msg)
}

func (h *SubscriptionHandler) Subscribers(c *gin.Context) {
	out, err := h.Subs.Subscribers(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "subscribers fetched successfully")
}

func (h *SubscriptionHandler) SubscribedChannels(c *gin.Context) {
	out, err := h.Subs.SubscribedChannels(c.Request.Context(), c.Param("subscriberId"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "subscribed channels fetched successfully")
}
