package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/posty-app/post-api/internal/config"
	"github.com/posty-app/post-api/internal/infrastructure/logger"
	middleware "github.com/posty-app/post-api/internal/interfaces/httpserver/middlewares"
	v1 "github.com/posty-app/post-api/internal/interfaces/httpserver/routes/v1"
)

type HTTPServer struct {
	engine  *gin.Engine
	v1Route *v1.V1Route
	config  *config.Config
}

func NewHttpServer(
	v1Route *v1.V1Route,
	cfg *config.Config,
) *HTTPServer {
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	server := HTTPServer{
		gin.New(),
		v1Route,
		cfg,
	}
	server.engine.Use(gin.Recovery())
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.LoggingMiddleware(logger.GetLogger()))
	server.engine.Use(middleware.MetricsMiddleware())
	server.engine.Use(middleware.CORSMiddleware())

	server.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	server.engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	server.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &server
}

// Engine exposes the underlying router, used by tests.
func (httpServer *HTTPServer) Engine() *gin.Engine {
	return httpServer.engine
}

func (httpServer *HTTPServer) Run() error {
	httpServer.v1Route.RegisterRouter(httpServer.engine)

	addr := fmt.Sprintf(":%d", httpServer.config.HTTPPort)
	log := logger.GetLogger()
	log.Info().Str("addr", addr).Msg("[HTTPServer] listening")
	return httpServer.engine.Run(addr)
}
