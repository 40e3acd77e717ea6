package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/streamhive/backend/internal/application"
	"github.com/streamhive/backend/internal/container"
	handlers "github.com/streamhive/backend/internal/interface/http"
	"github.com/streamhive/backend/internal/interface/middleware"
)

// VideoModule wires the video catalog routes. Listing and single-video
// reads are public but viewer-aware; everything else needs a session.
type VideoModule struct {
	Handler *handlers.VideoHandler
	Auth    *application.AuthService
}

func NewVideoModule(h *handlers.VideoHandler, auth *application.AuthService) *VideoModule {
	return &VideoModule{Handler: h, Auth: auth}
}

func (m *VideoModule) Register(rg *gin.RouterGroup) {
	publishLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Hour, middleware.KeyByUserID(), nil)

	videos := rg.Group("/videos")
	videos.GET("", middleware.OptionalAuth(m.Auth), m.Handler.List)
	videos.GET("/:videoId", middleware.OptionalAuth(m.Auth), m.Handler.Get)

	auth := videos.Group("/")
	auth.Use(middleware.Auth(m.Auth))
	{
		auth.POST("", publishLimiter, m.Handler.Publish)
		auth.PATCH("/:videoId", m.Handler.Update)
		auth.DELETE("/:videoId", m.Handler.Delete)
		auth.PATCH("/toggle/publish/:videoId", m.Handler.TogglePublish)
	}
}
