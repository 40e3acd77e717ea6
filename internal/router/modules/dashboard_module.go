package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/streamhive/backend/internal/application"
	handlers "github.com/streamhive/backend/internal/interface/http"
	"github.com/streamhive/backend/internal/interface/middleware"
)

type DashboardModule struct {
	Handler *handlers.DashboardHandler
	Auth    *application.AuthService
}

func NewDashboardModule(h *handlers.DashboardHandler, auth *application.AuthService) *DashboardModule {
	return &DashboardModule{Handler: h, Auth: auth}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(middleware.Auth(m.Auth))
	{
		dashboard.GET("/stats", m.Handler.Stats)
		dashboard.GET("/videos", m.Handler.Videos)
	}
}
