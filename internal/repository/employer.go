package repository

import (
	"context"

	"github.com/jobease/jobease-admin/internal/domain"
)

// EmployerRepository defines employer collection operations
type EmployerRepository interface {
	List(ctx context.Context) ([]domain.Employer, error)

	// ApplyPatches commits the patches in batches and returns how many were written
	ApplyPatches(ctx context.Context, patches []domain.EmployerPatch) (int, error)
}
