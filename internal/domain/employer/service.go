package employer

import (
	"context"
	"fmt"

	"github.com/jobease/jobease-admin/internal/domain"
	"github.com/jobease/jobease-admin/internal/repository"
	"github.com/jobease/jobease-admin/pkg/logging"
)

// BackfillResult summarizes backfill-employer-approval
type BackfillResult struct {
	Total   int
	Updated int
}

// CleanupResult summarizes cleanup-employers. Err is set when Success is false.
type CleanupResult struct {
	Total   int
	Fixed   int
	Success bool
	Err     error
}

// Service normalizes approval fields on employer documents
type Service struct {
	repo   repository.EmployerRepository
	logger *logging.Logger
}

// NewService creates a Service with direct dependencies (Wire-compatible)
func NewService(repo repository.EmployerRepository, logger *logging.Logger) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("employer.Service: repository is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{repo: repo, logger: logger}, nil
}

// BackfillApproval gives legacy employers without approvalStatus a pending
// status and cleared approval fields
func (s *Service) BackfillApproval(ctx context.Context) (BackfillResult, error) {
	employers, err := s.repo.List(ctx)
	if err != nil {
		return BackfillResult{}, fmt.Errorf("list employers: %w", err)
	}

	result := BackfillResult{Total: len(employers)}
	s.logger.Info("employers found", "count", len(employers))

	var patches []domain.EmployerPatch
	for _, e := range employers {
		if e.HasApprovalStatus {
			continue
		}
		patches = append(patches, domain.EmployerPatch{
			EmployerID:     e.ID,
			ApprovalStatus: domain.ApprovalPending,
			ResetApproval:  true,
		})
		s.logger.Debug("queued approval backfill", "employer", e.Label())
	}

	if len(patches) == 0 {
		s.logger.Info("every employer already has approvalStatus")
		return result, nil
	}

	written, err := s.repo.ApplyPatches(ctx, patches)
	result.Updated = written
	if err != nil {
		return result, fmt.Errorf("write approval backfill: %w", err)
	}

	s.logger.Info("approval fields added", "updated", written)
	return result, nil
}

// Cleanup removes isApproved, adds an empty reason and forces invalid
// approvalStatus values back to pending. Failures are reported in the
// result rather than returned.
func (s *Service) Cleanup(ctx context.Context) CleanupResult {
	employers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list employers", "error", err)
		return CleanupResult{Err: fmt.Errorf("list employers: %w", err)}
	}

	result := CleanupResult{Total: len(employers)}

	var patches []domain.EmployerPatch
	for _, e := range employers {
		p := PlanCleanup(e)
		if p.Empty() {
			continue
		}
		patches = append(patches, p)
		s.logger.Debug("employer needs cleanup",
			"employer", e.Label(),
			"delete_is_approved", p.DeleteIsApproved,
			"add_reason", p.AddEmptyReason,
			"reset_status", p.ApprovalStatus != "",
		)
	}

	if len(patches) > 0 {
		written, err := s.repo.ApplyPatches(ctx, patches)
		result.Fixed = written
		if err != nil {
			s.logger.Error("employer cleanup failed", "error", err, "fixed", written)
			result.Err = fmt.Errorf("write employer cleanup: %w", err)
			return result
		}
	}

	result.Success = true
	s.logger.Info("employer cleanup complete", "total", result.Total, "fixed", result.Fixed)
	return result
}

// PlanCleanup computes the patch that normalizes one employer
func PlanCleanup(e domain.Employer) domain.EmployerPatch {
	p := domain.EmployerPatch{
		EmployerID:       e.ID,
		DeleteIsApproved: e.HasIsApproved,
		AddEmptyReason:   !e.HasReason,
	}
	if !domain.ApprovalStatus(e.ApprovalStatus).Valid() {
		p.ApprovalStatus = domain.ApprovalPending
	}
	return p
}
