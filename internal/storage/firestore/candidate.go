package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/jobease/jobease-admin/internal/domain"
	"github.com/jobease/jobease-admin/internal/repository"
	"github.com/jobease/jobease-admin/internal/storage/fields"
	pkgfirestore "github.com/jobease/jobease-admin/pkg/firestore"
	"github.com/jobease/jobease-admin/pkg/logging"
)

// Ensure CandidateRepository implements repository.CandidateRepository
var _ repository.CandidateRepository = (*CandidateRepository)(nil)

// CandidateRepository implements repository.CandidateRepository with Firestore
type CandidateRepository struct {
	client *pkgfirestore.Client
	logger *logging.Logger
}

// NewCandidateRepository creates a CandidateRepository with a Firestore client
func NewCandidateRepository(client *pkgfirestore.Client, log *logging.Logger) *CandidateRepository {
	return &CandidateRepository{
		client: client,
		logger: log.With("component", "candidate_repository"),
	}
}

// List loads every candidate document
func (r *CandidateRepository) List(ctx context.Context) ([]domain.Candidate, error) {
	docs, err := r.client.Collection(domain.CollectionCandidate).Documents(ctx).GetAll()
	if err != nil {
		return nil, wrapError("list candidates", err)
	}

	candidates := make([]domain.Candidate, 0, len(docs))
	for _, doc := range docs {
		candidates = append(candidates, domain.Candidate{
			ID:                 doc.Ref.ID,
			MigrationCompleted: fields.Bool(doc.Data(), "migrationCompleted"),
		})
	}
	return candidates, nil
}

// ListApplications returns the raw documents of candidates/{id}/applications
func (r *CandidateRepository) ListApplications(ctx context.Context, candidateID string) ([]domain.Document, error) {
	docs, err := r.subcollection(candidateID, domain.SubcollectionApplications).Documents(ctx).GetAll()
	if err != nil {
		return nil, wrapError(fmt.Sprintf("list applications of %s", candidateID), err)
	}

	out := make([]domain.Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, domain.Document{ID: doc.Ref.ID, Fields: doc.Data()})
	}
	return out, nil
}

// SaveApplicationSummary merges the summary into candidates/{id}
func (r *CandidateRepository) SaveApplicationSummary(ctx context.Context, candidateID string, summary domain.ApplicationSummary) error {
	data := map[string]any{
		"applications":       encodeApplications(summary.Applications),
		"applicationStats":   encodeStats(summary.Stats),
		"analyticsUpdatedAt": summary.MigratedAt,
		"migrationCompleted": true,
		"migrationDate":      summary.MigratedAt,
	}

	_, err := r.client.Collection(domain.CollectionCandidate).Doc(candidateID).Set(ctx, data, firestore.Merge(mergePaths(data, nil)...))
	if err != nil {
		return wrapError(fmt.Sprintf("save application summary of %s", candidateID), err)
	}

	r.logger.Debug("application summary saved", "candidate_id", candidateID, "applications", len(summary.Applications))
	return nil
}

// DeleteSubcollection deletes candidates/{id}/{name} in batches
func (r *CandidateRepository) DeleteSubcollection(ctx context.Context, candidateID, name string) (int, error) {
	refs, err := r.subcollection(candidateID, name).DocumentRefs(ctx).GetAll()
	if err != nil {
		return 0, wrapError(fmt.Sprintf("list %s of %s", name, candidateID), err)
	}

	w := newBatchWriter(r.client.Firestore())
	for _, ref := range refs {
		if err := w.delete(ctx, ref); err != nil {
			return w.committed, wrapError(fmt.Sprintf("delete %s of %s", name, candidateID), err)
		}
	}
	if err := w.flush(ctx); err != nil {
		return w.committed, wrapError(fmt.Sprintf("delete %s of %s", name, candidateID), err)
	}

	return w.committed, nil
}

func (r *CandidateRepository) subcollection(candidateID, name string) *firestore.CollectionRef {
	return r.client.Collection(domain.CollectionCandidate).Doc(candidateID).Collection(name)
}
