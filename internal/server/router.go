package server

import (
	"github.com/gin-gonic/gin"
	"github.com/kapu/member-directory-go/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with all middleware and routes registered.
func NewRouter(handler *Handler, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(logger))
	router.Use(metrics.PrometheusMiddleware())

	router.GET("/healthz", Liveness)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/members/range", handler.GetMemberRange)
		api.GET("/members/:id", handler.GetMember)
		api.GET("/extractor/metrics", handler.GetMetrics)
	}

	return router
}
