package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/streamhive/backend/internal/application"
	handlers "github.com/streamhive/backend/internal/interface/http"
	"github.com/streamhive/backend/internal/interface/middleware"
)

type SubscriptionModule struct {
	Handler *handlers.SubscriptionHandler
	Auth    *application.AuthService
}

func NewSubscriptionModule(h *handlers.SubscriptionHandler, auth *application.AuthService) *SubscriptionModule {
	return &SubscriptionModule{Handler: h, Auth: auth}
}

func (m *SubscriptionModule) Register(rg *gin.RouterGroup) {
	subs := rg.Group("/subscriptions")
	subs.Use(middleware.Auth(m.Auth))
	{
		subs.POST("/c/:channelId", m.Handler.Toggle)
		subs.GET("/c/:channelId", m.Handler.Subscribers)
		subs.GET("/u/:subscriberId", m.Handler.SubscribedChannels)
	}
}
