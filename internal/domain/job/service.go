package job

import (
	"context"
	"fmt"

	"github.com/jobease/jobease-admin/internal/domain"
	"github.com/jobease/jobease-admin/internal/repository"
	"github.com/jobease/jobease-admin/pkg/logging"
)

// ApprovedAtResult summarizes an approvedAt backfill
type ApprovedAtResult struct {
	Matched int
	Updated int
	Skipped int
}

// Service runs maintenance tasks over the jobs collection
type Service struct {
	repo   repository.JobRepository
	logger *logging.Logger
}

// NewService creates a Service with direct dependencies (Wire-compatible)
func NewService(repo repository.JobRepository, logger *logging.Logger) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("job.Service: repository is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Service{repo: repo, logger: logger}, nil
}

// AddApprovedAt sets approvedAt on approved jobs that lack it, using the
// job's postedDate when it is a timestamp and server time otherwise
func (s *Service) AddApprovedAt(ctx context.Context) (ApprovedAtResult, error) {
	s.logger.Info("fetching approved jobs")

	jobs, err := s.repo.ListByApprovalStatus(ctx, domain.ApprovalApproved, 0)
	if err != nil {
		return ApprovedAtResult{}, fmt.Errorf("list approved jobs: %w", err)
	}

	result := ApprovedAtResult{Matched: len(jobs)}
	s.logger.Info("approved jobs found", "count", len(jobs))

	if len(jobs) == 0 {
		s.logger.Info("no approved jobs found")
		return result, nil
	}

	updates := make([]domain.ApprovedAtUpdate, 0, len(jobs))
	for _, j := range jobs {
		if j.HasApprovedAt {
			result.Skipped++
			s.logger.Debug("job already has approvedAt", "job", j.Label())
			continue
		}

		updates = append(updates, domain.ApprovedAtUpdate{JobID: j.ID, ApprovedAt: j.PostedDate})
		s.logger.Debug("queued approvedAt update", "job", j.Label(), "from_posted_date", j.PostedDate != nil)
	}

	if len(updates) == 0 {
		s.logger.Info("all approved jobs already have approvedAt")
		return result, nil
	}

	s.logger.Info("updating jobs with approvedAt", "count", len(updates))
	written, err := s.repo.SetApprovedAt(ctx, updates)
	result.Updated = written
	if err != nil {
		return result, fmt.Errorf("write approvedAt: %w", err)
	}

	s.logger.Info("approvedAt added to approved jobs", "updated", result.Updated, "skipped", result.Skipped)
	return result, nil
}

// CreateSample adds a demonstration job document and returns its ID
func (s *Service) CreateSample(ctx context.Context, fields map[string]any) (string, error) {
	if len(fields) == 0 {
		return "", fmt.Errorf("create sample job: no fields: %w", repository.ErrInvalidInput)
	}

	id, err := s.repo.Create(ctx, fields)
	if err != nil {
		return "", fmt.Errorf("create sample job: %w", err)
	}

	s.logger.Info("sample job created", "job_id", id, "title", fields["jobTitle"])
	return id, nil
}

// SampleByApprovalStatus returns up to limit jobs with the given status
func (s *Service) SampleByApprovalStatus(ctx context.Context, status domain.ApprovalStatus, limit int) ([]domain.Job, error) {
	jobs, err := s.repo.ListByApprovalStatus(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf("sample %s jobs: %w", status, err)
	}
	return jobs, nil
}
