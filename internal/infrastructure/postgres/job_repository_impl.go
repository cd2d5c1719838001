package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hirestack/jobboard-api/internal/domain/entity"
	"github.com/hirestack/jobboard-api/internal/domain/repository"
)

const jobColumns = "id, title, description, company, location, salary, requirements, featured, created_at, updated_at"

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func scanJob(row pgx.Row, j *entity.Job) error {
	return row.Scan(&j.ID, &j.Title, &j.Description, &j.Company, &j.Location,
		&j.Salary, &j.Requirements, &j.Featured, &j.CreatedAt, &j.UpdatedAt)
}

func (r *JobRepository) Create(ctx context.Context, j *entity.Job) error {
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO jobs (title, description, company, location, salary, requirements)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+jobColumns+`
	`, j.Title, j.Description, j.Company, j.Location, j.Salary, j.Requirements)

	return scanJob(row, j)
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	j := &entity.Job{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE id = $1
	`, id)

	if err := scanJob(row, j); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return j, nil
}

// List returns one page of jobs in insertion order plus the total row count.
func (r *JobRepository) List(ctx context.Context, offset, limit int) ([]entity.Job, int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		ORDER BY created_at, id
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := make([]entity.Job, 0, limit)
	for rows.Next() {
		var j entity.Job
		if err := scanJob(rows, &j); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM jobs`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepository) ListFeatured(ctx context.Context) ([]entity.Job, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE featured
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]entity.Job, 0)
	for rows.Next() {
		var j entity.Job
		if err := scanJob(rows, &j); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// Patch applies the non-nil fields of p and returns the updated row.
func (r *JobRepository) Patch(ctx context.Context, id string, p entity.JobPatch) (*entity.Job, error) {
	if p.Empty() {
		return r.GetByID(ctx, id)
	}

	sets := make([]string, 0, 8)
	args := make([]any, 0, 8)
	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.Company != nil {
		add("company", *p.Company)
	}
	if p.Location != nil {
		add("location", *p.Location)
	}
	if p.Salary != nil {
		add("salary", *p.Salary)
	}
	if p.Requirements != nil {
		add("requirements", *p.Requirements)
	}
	if p.Featured != nil {
		add("featured", *p.Featured)
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	q := fmt.Sprintf(`
		UPDATE jobs
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), len(args), jobColumns)

	j := &entity.Job{}
	if err := scanJob(r.pool.QueryRow(ctx, q, args...), j); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return j, nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.JobRepository = (*JobRepository)(nil)
