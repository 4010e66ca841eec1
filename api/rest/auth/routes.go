package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/osdatum/server/internal/exchange"
	"github.com/osdatum/server/internal/session"
)

// registers all authentication routes
func RegisterRoutes(
	router *gin.RouterGroup,
	svc *exchange.Service,
	directory UserFinder,
	tokens *session.TokenService,
	rateLimit gin.HandlerFunc,
) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/exchange", rateLimit, ExchangeHandler(svc))
		authGroup.GET("/me", session.Middleware(tokens), GetCurrentUserHandler(directory))
	}
}
