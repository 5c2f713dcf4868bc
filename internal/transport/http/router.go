// Package http exposes the room coordinator over a JSON API. Authentication
// is a signed bearer token whose subject is the caller identity.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hexroom/internal/room/service"
)

// Server wires the coordinator into a gin router.
type Server struct {
	coordinator *service.Coordinator
	logger      *zap.Logger
}

// NewRouter builds the API router. The token secret signs and verifies
// bearer tokens.
func NewRouter(coordinator *service.Coordinator, secret []byte, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{coordinator: coordinator, logger: logger}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	rooms := router.Group("/rooms")
	rooms.Use(bearerAuth(secret, logger))
	{
		rooms.POST("", s.createRoom)
		rooms.POST("/join", s.joinRoom)
		rooms.POST("/:id/intents", s.submitIntent)
		rooms.POST("/:id/leave", s.leaveRoom)
		rooms.POST("/:id/kick", s.kickPlayer)
		rooms.POST("/:id/reset", s.resetRoom)
		rooms.GET("/:id/log", s.roomLog)
	}
	return router
}

// requestLogger records one structured line per request.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
