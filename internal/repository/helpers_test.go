package repository

import (
	"context"
	"testing"
	"time"

	"github.com/benx421/homebid/internal/config"
	"github.com/benx421/homebid/internal/db"
	"github.com/benx421/homebid/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to the Postgres described by the environment and applies
// the schema. Tests are skipped when no database is reachable. Every test works
// on freshly generated ids, so nothing is truncated between runs.
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

func seedProject(t *testing.T, database *db.DB) (*models.Project, *models.Milestone) {
	t.Helper()

	project, milestone, err := database.SeedProject(context.Background(), uuid.New())
	require.NoError(t, err)

	return project, milestone
}

func seedRequest(t *testing.T, database *db.DB) *models.EstimateRequest {
	t.Helper()

	req := &models.EstimateRequest{
		HomeownerID:    uuid.New(),
		ServiceID:      uuid.New(),
		PropertyID:     uuid.New(),
		Status:         models.RequestStatusOpen,
		BudgetMinCents: 40000,
		BudgetMaxCents: int64Ptr(80000),
		Timeline:       "within 2 weeks",
	}
	require.NoError(t, NewEstimateRequestRepository(database).Create(context.Background(), req))

	return req
}

func seedResponse(t *testing.T, database *db.DB, requestID uuid.UUID, priceCents int64) *models.EstimateResponse {
	t.Helper()

	resp := &models.EstimateResponse{
		RequestID:  requestID,
		ProviderID: uuid.New(),
		PriceCents: priceCents,
		Timeline:   "5 days",
		Status:     models.ResponseStatusPending,
	}
	require.NoError(t, NewEstimateResponseRepository(database).Create(context.Background(), resp))

	return resp
}

func int64Ptr(v int64) *int64 {
	return &v
}
