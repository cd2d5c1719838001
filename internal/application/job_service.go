package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/hirestack/jobboard-api/internal/domain/entity"
	repo "github.com/hirestack/jobboard-api/internal/domain/repository"
)

const (
	DefaultPageSize = 100
	maxSearchSize   = 50
)

// JobService owns job CRUD, the paginated listing and the search index.
type JobService struct {
	Repo        repo.JobRepository
	ES          *elasticsearch.Client
	ESJobsIndex string
	Logger      *logrus.Logger
}

func (s *JobService) Create(ctx context.Context, j *entity.Job) error {
	if err := s.Repo.Create(ctx, j); err != nil {
		return err
	}
	s.indexJob(ctx, j)
	return nil
}

func (s *JobService) Get(ctx context.Context, id string) (*entity.Job, error) {
	return s.Repo.GetByID(ctx, id)
}

// JobPage is the paginated listing response.
type JobPage struct {
	Jobs        []entity.Job `json:"jobs"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	TotalJobs   int          `json:"totalJobs"`
}

// List returns one page of jobs in insertion order. page and limit fall back
// to 1 and DefaultPageSize when out of range; totalPages = ceil(total/limit).
func (s *JobService) List(ctx context.Context, page, limit int) (*JobPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	skip := (page - 1) * limit

	jobs, total, err := s.Repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return &JobPage{
		Jobs:        jobs,
		CurrentPage: page,
		TotalPages:  (total + limit - 1) / limit,
		TotalJobs:   total,
	}, nil
}

func (s *JobService) ListFeatured(ctx context.Context) ([]entity.Job, error) {
	return s.Repo.ListFeatured(ctx)
}

func (s *JobService) Patch(ctx context.Context, id string, p entity.JobPatch) (*entity.Job, error) {
	j, err := s.Repo.Patch(ctx, id, p)
	if err != nil {
		return nil, err
	}
	s.indexJob(ctx, j)
	return j, nil
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.deleteJobIndex(ctx, id)
	return nil
}

// indexJob mirrors the job into Elasticsearch. Best effort: failures are
// logged and never surfaced to the request.
func (s *JobService) indexJob(ctx context.Context, j *entity.Job) {
	if s.ES == nil || s.ESJobsIndex == "" {
		return
	}
	doc := map[string]any{
		"id":           j.ID,
		"title":        j.Title,
		"description":  j.Description,
		"company":      j.Company,
		"location":     j.Location,
		"salary":       j.Salary,
		"requirements": j.Requirements,
		"featured":     j.Featured,
		"created_at":   j.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESJobsIndex, DocumentID: j.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("job_id", j.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("job_id", j.ID).Warn("es index response error")
	}
}

func (s *JobService) deleteJobIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESJobsIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESJobsIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("job_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query over title, company and description.
func (s *JobService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESJobsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > maxSearchSize {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "company", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESJobsIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
