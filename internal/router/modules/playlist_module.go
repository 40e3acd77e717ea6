package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/streamhive/backend/internal/application"
	handlers "github.com/streamhive/backend/internal/interface/http"
	"github.com/streamhive/backend/internal/interface/middleware"
)

type PlaylistModule struct {
	Handler *handlers.PlaylistHandler
	Auth    *application.AuthService
}

func NewPlaylistModule(h *handlers.PlaylistHandler, auth *application.AuthService) *PlaylistModule {
	return &PlaylistModule{Handler: h, Auth: auth}
}

func (m *PlaylistModule) Register(rg *gin.RouterGroup) {
	playlists := rg.Group("/playlists")
	playlists.GET("/:playlistId", m.Handler.Get)
	playlists.GET("/user/:userId", m.Handler.ListByOwner)

	auth := playlists.Group("/")
	auth.Use(middleware.Auth(m.Auth))
	{
		auth.POST("", m.Handler.Create)
		auth.PATCH("/:playlistId", m.Handler.Update)
		auth.DELETE("/:playlistId", m.Handler.Delete)
		auth.PATCH("/add/:videoId/:playlistId", m.Handler.AddVideo)
		auth.PATCH("/remove/:videoId/:playlistId", m.Handler.RemoveVideo)
	}
}
