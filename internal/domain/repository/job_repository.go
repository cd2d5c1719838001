package repository

import (
	"context"

	"github.com/hirestack/jobboard-api/internal/domain/entity"
)

// JobRepository defines the interface for job-related database operations.
// List returns jobs in insertion order together with the total count.
type JobRepository interface {
	Create(ctx context.Context, j *entity.Job) error
	GetByID(ctx context.Context, id string) (*entity.Job, error)
	List(ctx context.Context, offset, limit int) ([]entity.Job, int, error)
	ListFeatured(ctx context.Context) ([]entity.Job, error)
	Patch(ctx context.Context, id string, p entity.JobPatch) (*entity.Job, error)
	Delete(ctx context.Context, id string) error
}
