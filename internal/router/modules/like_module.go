package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/streamhive/backend/internal/application"
	handlers "github.com/streamhive/backend/internal/interface/http"
	"github.com/streamhive/backend/internal/interface/middleware"
)

type LikeModule struct {
	Handler *handlers.LikeHandler
	Auth    *application.AuthService
}

func NewLikeModule(h *handlers.LikeHandler, auth *application.AuthService) *LikeModule {
	return &LikeModule{Handler: h, Auth: auth}
}

func (m *LikeModule) Register(rg *gin.RouterGroup) {
	likes := rg.Group("/likes")
	likes.Use(middleware.Auth(m.Auth))
	{
		likes.POST("/toggle/v/:videoId", m.Handler.ToggleVideoLike)
		likes.POST("/toggle/c/:commentId", m.Handler.ToggleCommentLike)
		likes.POST("/toggle/t/:tweetId", m.Handler.ToggleTweetLike)
		likes.GET("/videos", m.Handler.LikedVideos)
	}
}
