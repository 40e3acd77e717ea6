package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/streamhive/backend/internal/application"
	"github.com/streamhive/backend/internal/domain/repository"
	"github.com/streamhive/backend/pkg/response"
)

type VideoHandler struct {
	Videos *application.VideoService
	Logger *logrus.Logger
}

func NewVideoHandler(videos *application.VideoService, logger *logrus.Logger) *VideoHandler {
	return &VideoHandler{Videos: videos, Logger: logger}
}

// Publish accepts a multipart form with title, description, duration and
// the videoFile/thumbnail files.
func (h *VideoHandler) Publish(c *gin.Context) {
	var req struct {
		Title       string `form:"title" binding:"required"`
		Description string `form:"description"`
		Duration    string `form:"duration"`
	}
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}
	duration, _ := strconv.ParseFloat(req.Duration, 64)

	in := application.PublishVideoInput{
		OwnerID:     c.GetString("userID"),
		Title:       req.Title,
		Description: req.Description,
		Duration:    duration,
	}

	videoFH, err := c.FormFile("videoFile")
	if err != nil {
		resp := response.Error(c, http.StatusBadRequest, "video file is required", nil)
		c.JSON(resp.StatusCode, resp)
		return
	}
	videoUp, closeVideo, err := openUpload(videoFH)
	if err != nil {
		resp := response.Error(c, http.StatusBadRequest, "failed to read video file", nil)
		c.JSON(resp.StatusCode, resp)
		return
	}
	defer closeVideo()
	in.VideoFile = videoUp

	thumbFH, err := c.FormFile("thumbnail")
	if err != nil {
		resp := response.Error(c, http.StatusBadRequest, "thumbnail file is required", nil)
		c.JSON(resp.StatusCode, resp)
		return
	}
	thumbUp, closeThumb, err := openUpload(thumbFH)
	if err != nil {
		resp := response.Error(c, http.StatusBadRequest, "failed to read thumbnail file", nil)
		c.JSON(resp.StatusCode, resp)
		return
	}
	defer closeThumb()
	in.Thumbnail = thumbUp

	v, err := h.Videos.Publish(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, v, "video published successfully")
}

// List supports ?query=, ?sortBy=, ?sortType=asc|desc, ?userId= and paging.
func (h *VideoHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	p := repository.ListVideosParams{
		OwnerID:       c.Query("userId"),
		Query:         c.Query("query"),
		SortBy:        c.Query("sortBy"),
		SortAsc:       c.Query("sortType") == "asc",
		Page:          page,
		Limit:         limit,
		OnlyPublished: true,
	}
	videos, total, err := h.Videos.List(c.Request.Context(), p)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"videos": videos,
		"total":  total,
		"page":   page,
		"limit":  limit,
	}, "videos fetched successfully")
}

func (h *VideoHandler) Get(c *gin.Context) {
	d, err := h.Videos.Get(c.Request.Context(), c.Param("videoId"), c.GetString("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, d, "video fetched successfully")
}

func (h *VideoHandler) Update(c *gin.Context) {
	var req struct {
		Title       string `form:"title" binding:"required"`
		Description string `form:"description"`
	}
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	in := application.UpdateVideoInput{
		VideoID:     c.Param("videoId"),
		CallerID:    c.GetString("userID"),
		Title:       req.Title,
		Description: req.Description,
	}
	if fh, err := c.FormFile("thumbnail"); err == nil {
		up, closeUp, err := openUpload(fh)
		if err != nil {
			resp := response.Error(c, http.StatusBadRequest, "failed to read thumbnail file", nil)
			c.JSON(resp.StatusCode, resp)
			return
		}
		defer closeUp()
		in.Thumbnail = up
	}

	v, err := h.Videos.Update(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, v, "video updated successfully")
}

func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.Videos.Delete(c.Request.Context(), c.Param("videoId"), c.GetString("userID")); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c *gin.Context) {
	v, err := h.Videos.TogglePublish(c.Request.Context(), c.Param("videoId"), c.GetString("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, v, "publish status toggled")
}
