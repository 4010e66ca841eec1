package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osdatum/server/internal/config"
	"github.com/osdatum/server/internal/exchange"
	"github.com/osdatum/server/internal/session"
	"github.com/osdatum/server/osdatum/users"
)

// holds all dependencies and state for the API server
type Server struct {
	db          *pgxpool.Pool
	config      *config.Config
	userRepo    *users.Repository
	exchangeSvc *exchange.Service
	tokens      *session.TokenService
	rateLimit   gin.HandlerFunc
	router      *gin.Engine
}
