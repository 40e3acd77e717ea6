package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streamhive/backend/internal/application"
	"github.com/streamhive/backend/pkg/response"
)

type PlaylistHandler struct {
	Playlists *application.PlaylistService
}

func NewPlaylistHandler(playlists *application.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{Playlists: playlists}
}

type playlistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *PlaylistHandler) Create(c *gin.Context) {
	var req playlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.Playlists.Create(c.Request.Context(), c.GetString("userID"), req.Name, req.Description)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "playlist created successfully")
}

func (h *PlaylistHandler) Get(c *gin.Context) {
	p, err := h.Playlists.Get(c.Request.Context(), c.Param("playlistId"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "playlist fetched successfully")
}

func (h *PlaylistHandler) ListByOwner(c *gin.Context) {
	out, err := h.Playlists.ListByOwner(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "playlists fetched successfully")
}

func (h *PlaylistHandler) Update(c *gin.Context) {
	var req playlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.Playlists.Update(c.Request.Context(), c.Param("playlistId"), c.GetString("userID"), req.Name, req.Description)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "playlist updated successfully")
}

func (h *PlaylistHandler) Delete(c *gin.Context) {
	if err := h.Playlists.Delete(c.Request.Context(), c.Param("playlistId"), c.GetString("userID")); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "playlist deleted successfully")
}

func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	p, err := h.Playlists.AddVideo(c.Request.Context(), c.Param("playlistId"), c.Param("videoId"), c.GetString("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "video added to playlist")
}

func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	p, err := h.Playlists.RemoveVideo(c.Request.Context(), c.Param("playlistId"), c.Param("videoId"), c.GetString("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "video removed from playlist")
}
