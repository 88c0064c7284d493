// Package web provides API routes for the web server.
package web

import (
	"net/http"

	"github.com/PancyStudios/PancyModGo/pkg/config"
	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server) {
	s.Engine().GET("/", rootHandler)

	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
	}
}

// rootHandler is the keep-alive page pinged by uptime monitors
func rootHandler(c *gin.Context) {
	c.String(http.StatusOK, "PancyMod Go está en línea 💫")
}

// statusHandler returns the bot status
func statusHandler(c *gin.Context) {
	client := discord.Get()

	botOnline := false
	guilds := 0
	if client != nil {
		botOnline = client.IsReady()
		guilds = client.GuildCount()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": config.Version,
		"bot": gin.H{
			"isOnline": botOnline,
			"guilds":   guilds,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "PancyMod Go is running",
	})
}
