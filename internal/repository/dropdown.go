package repository

import (
	"context"

	"github.com/jobease/jobease-admin/internal/domain"
)

// SaveOptions controls how a dropdown document is written
type SaveOptions struct {
	// Merge keeps fields not present in the write
	Merge bool
	// Timestamps adds created_at and updated_at set to server time
	Timestamps bool
}

// DropdownRepository manages the dropdown_options collection
type DropdownRepository interface {
	Get(ctx context.Context, name string) (domain.DropdownList, error)
	List(ctx context.Context) ([]domain.DropdownList, error)
	Save(ctx context.Context, list domain.DropdownList, opts SaveOptions) error

	// UpdateOptions replaces only the options field of an existing document
	UpdateOptions(ctx context.Context, name string, options []string) error
}
