package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/benx421/homebid/internal/config"
	"github.com/benx421/homebid/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func assertServiceError(t *testing.T, err error, code string, kind ErrorKind) {
	t.Helper()

	var svcErr *ServiceError
	if assert.ErrorAs(t, err, &svcErr) {
		assert.Equal(t, code, svcErr.Code)
	}
	assert.Equal(t, kind, KindOf(err))
}

// setupTestDB connects to the Postgres described by the environment. Tests are
// skipped when no database is reachable.
func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err, "failed to load config")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	database, err := db.ConnectForTest(ctx, &cfg.Database)
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close() //nolint:errcheck // test cleanup
	})

	return database
}

func int64Ptr(v int64) *int64 {
	return &v
}
