package db

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/benx421/homebid/internal/config"
	"github.com/benx421/homebid/internal/models"
	"github.com/google/uuid"
)

// ConnectForTest connects with a discarding logger and applies the schema.
// This is only for tests that run against a live database.
func ConnectForTest(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	database, err := Connect(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx); err != nil {
		_ = database.Close() //nolint:errcheck // already failing
		return nil, err
	}
	return database, nil
}

// SeedProject inserts a project owned by homeownerID with one milestone.
// Projects belong to an external directory, so only tests write them.
func (db *DB) SeedProject(ctx context.Context, homeownerID uuid.UUID) (*models.Project, *models.Milestone, error) {
	project := &models.Project{ID: uuid.New(), HomeownerID: homeownerID}
	milestone := &models.Milestone{ID: uuid.New(), ProjectID: project.ID}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO projects (id, homeowner_id) VALUES ($1, $2)`, project.ID, project.HomeownerID); err != nil {
		return nil, nil, fmt.Errorf("failed to seed project: %w", err)
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO milestones (id, project_id) VALUES ($1, $2)`, milestone.ID, milestone.ProjectID); err != nil {
		return nil, nil, fmt.Errorf("failed to seed milestone: %w", err)
	}
	return project, milestone, nil
}
