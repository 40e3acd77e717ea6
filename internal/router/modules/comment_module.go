package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/streamhive/backend/internal/application"
	handlers "github.com/streamhive/backend/internal/interface/http"
	"github.com/streamhive/backend/internal/interface/middleware"
)

type CommentModule struct {
	Handler *handlers.CommentHandler
	Auth    *application.AuthService
}

func NewCommentModule(h *handlers.CommentHandler, auth *application.AuthService) *CommentModule {
	return &CommentModule{Handler: h, Auth: auth}
}

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	comments := rg.Group("/comments")
	comments.GET("/:videoId", m.Handler.ListByVideo)

	auth := comments.Group("/")
	auth.Use(middleware.Auth(m.Auth))
	{
		auth.POST("/:videoId", m.Handler.Add)
		auth.PATCH("/c/:commentId", m.Handler.Update)
		auth.DELETE("/c/:commentId", m.Handler.Delete)
	}
}
