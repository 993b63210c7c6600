package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/posty-app/post-api/internal/config"
	"github.com/posty-app/post-api/internal/interfaces/httpserver/handlers/adminhandler"
	"github.com/posty-app/post-api/internal/interfaces/httpserver/handlers/chathandler"
	"github.com/posty-app/post-api/internal/interfaces/httpserver/handlers/imagehandler"
)

type V1Route struct {
	cfg          *config.Config
	chatHandler  *chathandler.ChatHandler
	imageHandler *imagehandler.ImageHandler
	adminHandler *adminhandler.AdminHandler
}

func NewV1Route(
	cfg *config.Config,
	chatHandler *chathandler.ChatHandler,
	imageHandler *imagehandler.ImageHandler,
	adminHandler *adminhandler.AdminHandler,
) *V1Route {
	return &V1Route{
		cfg,
		chatHandler,
		imageHandler,
		adminHandler,
	}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Router.GET("/version", v1Route.getVersion)

	sessions := v1Router.Group("/sessions")
	sessions.POST("", v1Route.chatHandler.CreateSession)
	sessions.GET("/:id", v1Route.chatHandler.GetSession)
	sessions.POST("/:id/answers", v1Route.chatHandler.SubmitAnswer)
	sessions.POST("/:id/tones/confirm", v1Route.chatHandler.ConfirmTones)
	sessions.POST("/:id/restart", v1Route.chatHandler.Restart)

	images := v1Router.Group("/images")
	images.POST("/suggest", v1Route.imageHandler.Suggest)
	images.GET("/search", v1Route.imageHandler.Search)
	images.GET("/curated", v1Route.imageHandler.Curated)
	images.POST("/select", v1Route.imageHandler.Select)

	admin := v1Router.Group("/admin")
	admin.POST("/cache/clear", v1Route.adminHandler.ClearImageCache)
}

func (v1Route *V1Route) getVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": config.Version, "service": v1Route.cfg.ServiceName})
}
