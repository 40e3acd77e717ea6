package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streamhive/backend/internal/application"
	"github.com/streamhive/backend/pkg/response"
)

type DashboardHandler struct {
	Dashboard *application.DashboardService
}

func NewDashboardHandler(dashboard *application.DashboardService) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.Dashboard.Stats(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats, "channel stats fetched successfully")
}

func (h *DashboardHandler) Videos(c *gin.Context) {
	page, limit := pageParams(c)
	videos, total, err := h.Dashboard.ChannelVideos(c.Request.Context(), c.GetString("userID"), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"videos": videos,
		"total":  total,
		"page":   page,
		"limit":  limit,
	}, "channel videos fetched successfully")
}
