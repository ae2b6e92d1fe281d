package db

import (
	"os"
	"testing"
)

// TestConnectPostgres exercises the connection path when a database is
// available; otherwise it only documents the DATABASE_URL requirement.
func TestConnectPostgres(t *testing.T) {
	originalDSN := os.Getenv("DATABASE_URL")
	defer func() {
		if originalDSN != "" {
			os.Setenv("DATABASE_URL", originalDSN)
		} else {
			os.Unsetenv("DATABASE_URL")
		}
	}()

	t.Run("valid DATABASE_URL should connect", func(t *testing.T) {
		if os.Getenv("DATABASE_URL") == "" {
			t.Skip("DATABASE_URL not set, skipping integration test")
		}
		pool := ConnectPostgres()
		defer pool.Close()
	})
}
