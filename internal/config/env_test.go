package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/osdatum")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("IDENTITY_ISSUER_URL", "https://securetoken.example.com/osdatum")
	t.Setenv("IDENTITY_AUDIENCE", "osdatum")
}

func TestLoadEnvironmentVariables_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, defaultAllowedOrigins, cfg.AllowedOrigins)
}

func TestLoadEnvironmentVariables_MissingRequired(t *testing.T) {
	required := []string{"DATABASE_URL", "JWT_SECRET", "IDENTITY_ISSUER_URL", "IDENTITY_AUDIENCE"}

	for _, missing := range required {
		t.Run(missing, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(missing, "")

			_, err := LoadEnvironmentVariables()

			require.Error(t, err)
			assert.Contains(t, err.Error(), missing)
		})
	}
}

func TestParseAllowedOrigins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "empty falls back to defaults",
			raw:  "",
			want: defaultAllowedOrigins,
		},
		{
			name: "single origin",
			raw:  "https://osdatum.example.com",
			want: []string{"https://osdatum.example.com"},
		},
		{
			name: "multiple origins with whitespace",
			raw:  " http://localhost:5173 , https://osdatum-*.vercel.app ",
			want: []string{"http://localhost:5173", "https://osdatum-*.vercel.app"},
		},
		{
			name: "only separators falls back to defaults",
			raw:  " , ,",
			want: defaultAllowedOrigins,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseAllowedOrigins(tt.raw))
		})
	}
}
