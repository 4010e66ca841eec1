package config

// Config holds all server configuration loaded from the environment.
type Config struct {
	Port              string
	Environment       string
	DatabaseURL       string
	RedisURL          string
	JWTSecret         string
	IdentityIssuerURL string
	IdentityAudience  string
	AllowedOrigins    []string
}
