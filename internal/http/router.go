package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configures the gin router with middlewares and routes.
func NewRouter(logger *zap.Logger, advisorH *AdvisorHandler) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery())

	r.GET("/healthz", advisorH.Health)
	r.GET("/questionnaire", advisorH.GetQuestionnaire)
	r.GET("/catalog", advisorH.GetCatalog)
	r.POST("/score", advisorH.Score)

	return r
}

// zapLoggerMiddleware creates a simple request logging middleware.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
