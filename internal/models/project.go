package models

import "github.com/google/uuid"

// Project is the slice of an externally managed project record needed for
// ownership checks. Projects are not created or mutated by this service.
type Project struct {
	ID          uuid.UUID `db:"id"`
	HomeownerID uuid.UUID `db:"homeowner_id"`
}

// Milestone is a billable stage of a project.
type Milestone struct {
	ID        uuid.UUID `db:"id"`
	ProjectID uuid.UUID `db:"project_id"`
}
