package main

import (
	"github.com/gin-gonic/gin"

	"github.com/osdatum/server/api/rest/auth"
	"github.com/osdatum/server/api/rest/health"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server.config))
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.exchangeSvc, server.userRepo, server.tokens, server.rateLimit)
	}
}
