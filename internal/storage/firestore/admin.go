package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/jobease/jobease-admin/internal/domain"
	"github.com/jobease/jobease-admin/internal/repository"
	pkgfirestore "github.com/jobease/jobease-admin/pkg/firestore"
	"github.com/jobease/jobease-admin/pkg/logging"
)

// Ensure AdminRepository implements repository.AdminRepository
var _ repository.AdminRepository = (*AdminRepository)(nil)

// AdminRepository implements repository.AdminRepository with Firestore
type AdminRepository struct {
	client *pkgfirestore.Client
	logger *logging.Logger
}

// NewAdminRepository creates an AdminRepository with a Firestore client
func NewAdminRepository(client *pkgfirestore.Client, log *logging.Logger) *AdminRepository {
	return &AdminRepository{
		client: client,
		logger: log.With("component", "admin_repository"),
	}
}

// Put overwrites admins/{uid}
func (r *AdminRepository) Put(ctx context.Context, admin domain.Admin) error {
	if admin.UID == "" {
		return fmt.Errorf("put admin: empty uid: %w", repository.ErrInvalidInput)
	}

	_, err := r.client.Collection(domain.CollectionAdmins).Doc(admin.UID).Set(ctx, map[string]any{
		"isAdmin":    true,
		"email":      admin.Email,
		"promotedAt": firestore.ServerTimestamp,
		"createdBy":  admin.CreatedBy,
		"role":       admin.Role,
	})
	if err != nil {
		return wrapError("put admin", err)
	}

	r.logger.Debug("admin document written", "uid", admin.UID)
	return nil
}
