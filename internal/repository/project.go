package repository

import (
	"context"

	"github.com/benx421/homebid/internal/models"
	"github.com/google/uuid"
)

// ProjectRepository reads the externally owned project directory
type ProjectRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	FindMilestone(ctx context.Context, id uuid.UUID) (*models.Milestone, error)
}

type projectRepository struct {
	db DBTX
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db DBTX) ProjectRepository {
	return &projectRepository{db: db}
}

// FindByID retrieves a project by its UUID
func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.QueryRowContext(ctx,
		`SELECT id, homeowner_id FROM projects WHERE id = $1`, id,
	).Scan(&project.ID, &project.HomeownerID)
	if err != nil {
		return nil, translateError(err, "failed to find project")
	}
	return &project, nil
}

// FindMilestone retrieves a milestone by its UUID
func (r *projectRepository) FindMilestone(ctx context.Context, id uuid.UUID) (*models.Milestone, error) {
	var milestone models.Milestone
	err := r.db.QueryRowContext(ctx,
		`SELECT id, project_id FROM milestones WHERE id = $1`, id,
	).Scan(&milestone.ID, &milestone.ProjectID)
	if err != nil {
		return nil, translateError(err, "failed to find milestone")
	}
	return &milestone, nil
}
