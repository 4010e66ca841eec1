package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// origins allowed to call the API when ALLOWED_ORIGINS is not set.
// wildcard entries cover the preview deployments (one per branch).
var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"https://osdatum.vercel.app",
	"https://osdatum-app.vercel.app",
	"https://osdatum-app.onrender.com",
	"https://osdatum-*.vercel.app",
	"https://*.vercel.app",
	"https://*.onrender.com",
}

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	issuerURL := os.Getenv("IDENTITY_ISSUER_URL")
	audience := os.Getenv("IDENTITY_AUDIENCE")
	redisURL := os.Getenv("REDIS_URL")
	environment := os.Getenv("ENVIRONMENT")
	port := os.Getenv("PORT")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if issuerURL == "" {
		return nil, fmt.Errorf("IDENTITY_ISSUER_URL environment variable is required")
	}

	if audience == "" {
		return nil, fmt.Errorf("IDENTITY_AUDIENCE environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	if port == "" {
		port = "3000"
	}

	return &Config{
		Port:              port,
		Environment:       environment,
		DatabaseURL:       databaseURL,
		RedisURL:          redisURL,
		JWTSecret:         jwtSecret,
		IdentityIssuerURL: issuerURL,
		IdentityAudience:  audience,
		AllowedOrigins:    parseAllowedOrigins(os.Getenv("ALLOWED_ORIGINS")),
	}, nil
}

// parses a comma-separated origin list, falling back to the defaults
func parseAllowedOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return defaultAllowedOrigins
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))

	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	if len(origins) == 0 {
		return defaultAllowedOrigins
	}

	return origins
}
