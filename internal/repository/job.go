package repository

import (
	"context"

	"github.com/jobease/jobease-admin/internal/domain"
)

// JobRepository defines the job operations the admin commands need
type JobRepository interface {
	// ListByApprovalStatus returns jobs with the given status; limit <= 0 means all
	ListByApprovalStatus(ctx context.Context, status domain.ApprovalStatus, limit int) ([]domain.Job, error)

	// SetApprovedAt commits the updates in batches and returns how many were written
	SetApprovedAt(ctx context.Context, updates []domain.ApprovedAtUpdate) (int, error)

	// Create adds a job document with an auto-generated ID; server-side
	// timestamps are filled for postedDate, createdAt and updatedAt
	Create(ctx context.Context, fields map[string]any) (string, error)
}
