package repository

import (
	"context"

	"github.com/jobease/jobease-admin/internal/domain"
)

// CandidateRepository covers candidate documents and their subcollections
type CandidateRepository interface {
	List(ctx context.Context) ([]domain.Candidate, error)
	ListApplications(ctx context.Context, candidateID string) ([]domain.Document, error)

	// SaveApplicationSummary merges the flattened applications, stats and
	// migration markers into the candidate document
	SaveApplicationSummary(ctx context.Context, candidateID string, summary domain.ApplicationSummary) error

	// DeleteSubcollection removes every document of the named subcollection
	// and returns how many were deleted
	DeleteSubcollection(ctx context.Context, candidateID, name string) (int, error)
}
