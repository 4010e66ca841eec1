package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError_Categories(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category string
	}{
		{"nil error", nil, CategoryUnknown},
		{"pgx error", &pgconn.PgError{Code: "23505", Message: "duplicate key"}, CategoryDatabase},
		{"no rows", pgx.ErrNoRows, CategoryNotFound},
		{"wrapped no rows", fmt.Errorf("lookup: %w", pgx.ErrNoRows), CategoryNotFound},
		{"deadline exceeded", context.DeadlineExceeded, CategoryTimeout},
		{"canceled", context.Canceled, CategoryTimeout},
		{"timeout string", fmt.Errorf("request timeout after 10s"), CategoryTimeout},
		{"connection string", fmt.Errorf("dial tcp: connection refused"), CategoryNetwork},
		{"validation string", fmt.Errorf("binding failed for field mode"), CategoryValidation},
		{"auth string", fmt.Errorf("unauthorized access"), CategoryAuth},
		{"unknown", fmt.Errorf("something odd happened"), CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := classifyError(tt.err)
			assert.Equal(t, tt.category, info.category)
		})
	}
}

func TestClassifyError_SanitizesInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	info := classifyError(&pgconn.PgError{Code: "08006", Message: "server closed the connection"})

	assert.Equal(t, "database operation failed", info.sanitized)
}

func TestClassifyError_VerboseInDevelopment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")

	err := fmt.Errorf("lookup: %w", pgx.ErrNoRows)
	info := classifyError(err)

	assert.Equal(t, err.Error(), info.sanitized)
}
