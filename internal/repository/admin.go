package repository

import (
	"context"

	"github.com/jobease/jobease-admin/internal/domain"
)

// AdminRepository writes admin flags keyed by auth UID
type AdminRepository interface {
	// Put overwrites the admin document and stamps promotedAt with server time
	Put(ctx context.Context, admin domain.Admin) error
}
