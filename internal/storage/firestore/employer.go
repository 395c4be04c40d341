package firestore

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/jobease/jobease-admin/internal/domain"
	"github.com/jobease/jobease-admin/internal/repository"
	"github.com/jobease/jobease-admin/internal/storage/fields"
	pkgfirestore "github.com/jobease/jobease-admin/pkg/firestore"
	"github.com/jobease/jobease-admin/pkg/logging"
)

// Ensure EmployerRepository implements repository.EmployerRepository
var _ repository.EmployerRepository = (*EmployerRepository)(nil)

// EmployerRepository implements repository.EmployerRepository with Firestore
type EmployerRepository struct {
	client *pkgfirestore.Client
	logger *logging.Logger
}

// NewEmployerRepository creates an EmployerRepository with a Firestore client
func NewEmployerRepository(client *pkgfirestore.Client, log *logging.Logger) *EmployerRepository {
	return &EmployerRepository{
		client: client,
		logger: log.With("component", "employer_repository"),
	}
}

// List loads every employer document
func (r *EmployerRepository) List(ctx context.Context) ([]domain.Employer, error) {
	docs, err := r.client.Collection(domain.CollectionEmployers).Documents(ctx).GetAll()
	if err != nil {
		return nil, wrapError("list employers", err)
	}

	employers := make([]domain.Employer, 0, len(docs))
	for _, doc := range docs {
		data := doc.Data()
		employers = append(employers, domain.Employer{
			ID:                doc.Ref.ID,
			CompanyName:       fields.String(data, "companyName"),
			ApprovalStatus:    fields.String(data, "approvalStatus"),
			HasApprovalStatus: fields.Has(data, "approvalStatus"),
			HasIsApproved:     fields.Has(data, "isApproved"),
			HasReason:         fields.Has(data, "reason"),
		})
	}

	r.logger.Debug("employers retrieved", "count", len(employers))
	return employers, nil
}

// ApplyPatches converts patches to field updates and commits them in batches
func (r *EmployerRepository) ApplyPatches(ctx context.Context, patches []domain.EmployerPatch) (int, error) {
	w := newBatchWriter(r.client.Firestore())
	employers := r.client.Collection(domain.CollectionEmployers)

	for _, p := range patches {
		updates := employerUpdates(p)
		if len(updates) == 0 {
			continue
		}

		if err := w.update(ctx, employers.Doc(p.EmployerID), updates); err != nil {
			return w.committed, wrapError("patch employers", err)
		}
	}

	if err := w.flush(ctx); err != nil {
		return w.committed, wrapError("patch employers", err)
	}

	return w.committed, nil
}

func employerUpdates(p domain.EmployerPatch) []firestore.Update {
	var updates []firestore.Update

	if p.DeleteIsApproved {
		updates = append(updates, firestore.Update{Path: "isApproved", Value: firestore.Delete})
	}
	if p.AddEmptyReason {
		updates = append(updates, firestore.Update{Path: "reason", Value: ""})
	}
	if p.ApprovalStatus != "" {
		updates = append(updates, firestore.Update{Path: "approvalStatus", Value: string(p.ApprovalStatus)})
	}
	if p.ResetApproval {
		updates = append(updates,
			firestore.Update{Path: "isApproved", Value: false},
			firestore.Update{Path: "approvedAt", Value: nil},
			firestore.Update{Path: "approvedBy", Value: nil},
		)
	}

	return updates
}
