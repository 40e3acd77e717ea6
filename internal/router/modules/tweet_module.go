package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/streamhive/backend/internal/application"
	handlers "github.com/streamhive/backend/internal/interface/http"
	"github.com/streamhive/backend/internal/interface/middleware"
)

type TweetModule struct {
	Handler *handlers.TweetHandler
	Auth    *application.AuthService
}

func NewTweetModule(h *handlers.TweetHandler, auth *application.AuthService) *TweetModule {
	return &TweetModule{Handler: h, Auth: auth}
}

func (m *TweetModule) Register(rg *gin.RouterGroup) {
	tweets := rg.Group("/tweets")
	tweets.GET("/user/:userId", m.Handler.ListByOwner)

	auth := tweets.Group("/")
	auth.Use(middleware.Auth(m.Auth))
	{
		auth.POST("", m.Handler.Create)
		auth.PATCH("/:tweetId", m.Handler.Update)
		auth.DELETE("/:tweetId", m.Handler.Delete)
	}
}
