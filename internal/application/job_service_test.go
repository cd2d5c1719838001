package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirestack/jobboard-api/internal/domain/entity"
	"github.com/hirestack/jobboard-api/internal/domain/repository"
)

// stubJobRepo returns a fixed total and echoes the requested window size.
type stubJobRepo struct {
	total      int
	lastOffset int
	lastLimit  int
}

func (s *stubJobRepo) Create(context.Context, *entity.Job) error { return nil }
func (s *stubJobRepo) GetByID(context.Context, string) (*entity.Job, error) {
	return nil, repository.ErrNotFound
}
func (s *stubJobRepo) ListFeatured(context.Context) ([]entity.Job, error) { return nil, nil }
func (s *stubJobRepo) Patch(context.Context, string, entity.JobPatch) (*entity.Job, error) {
	return nil, repository.ErrNotFound
}
func (s *stubJobRepo) Delete(context.Context, string) error { return nil }

func (s *stubJobRepo) List(_ context.Context, offset, limit int) ([]entity.Job, int, error) {
	s.lastOffset = offset
	s.lastLimit = limit
	n := s.total - offset
	if n < 0 {
		n = 0
	}
	if n > limit {
		n = limit
	}
	return make([]entity.Job, n), s.total, nil
}

func TestListPaginationMath(t *testing.T) {
	repo := &stubJobRepo{total: 25}
	svc := &JobService{Repo: repo}

	page, err := svc.List(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Len(t, page.Jobs, 10)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 25, page.TotalJobs)
	assert.Equal(t, 10, repo.lastOffset)

	// Last page is short
	page, err = svc.List(context.Background(), 3, 10)
	require.NoError(t, err)
	assert.Len(t, page.Jobs, 5)
}

func TestListPaginationNormalization(t *testing.T) {
	repo := &stubJobRepo{total: 5}
	svc := &JobService{Repo: repo}

	page, err := svc.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, DefaultPageSize, repo.lastLimit)
	assert.Equal(t, 0, repo.lastOffset)
	assert.Equal(t, 1, page.TotalPages)
}

func TestListPaginationEmpty(t *testing.T) {
	svc := &JobService{Repo: &stubJobRepo{total: 0}}

	page, err := svc.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Jobs)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 0, page.TotalJobs)
}

func TestSearchWithoutES(t *testing.T) {
	svc := &JobService{Repo: &stubJobRepo{}}
	hits, err := svc.Search(context.Background(), "go", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
