// Package web provides the keep-alive HTTP server with the bot status
// endpoints. It uses the Gin framework.
package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Server represents the web server
type Server struct {
	engine *gin.Engine
}

var server *Server

// Init initializes the global web server
func Init() *Server {
	server = NewServer()
	return server
}

// Get returns the global web server
func Get() *Server {
	return server
}

// NewServer creates a new web server
func NewServer() *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{engine: engine}
	s.engine.Use(s.logsMiddleware())

	return s
}

// Engine returns the underlying Gin engine
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// logsMiddleware logs all incoming requests
func (s *Server) logsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug(fmt.Sprintf("%s %s -> %d (%v)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start)), "WebServer")
	}
}

// Group creates a route group on the engine
func (s *Server) Group(path string) *gin.RouterGroup {
	return s.engine.Group(path)
}

// StartAsync starts the server in a background goroutine
func (s *Server) StartAsync(port string) {
	go func() {
		logger.System("Servidor web escuchando en el puerto "+port, "WebServer")
		if err := s.engine.Run(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Error(fmt.Sprintf("Error en el servidor web: %v", err), "WebServer")
		}
	}()
}
