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

// Ensure JobRepository implements repository.JobRepository
var _ repository.JobRepository = (*JobRepository)(nil)

// JobRepository implements repository.JobRepository with Firestore
type JobRepository struct {
	client *pkgfirestore.Client
	logger *logging.Logger
}

// NewJobRepository creates a JobRepository with a Firestore client
func NewJobRepository(client *pkgfirestore.Client, log *logging.Logger) *JobRepository {
	return &JobRepository{
		client: client,
		logger: log.With("component", "job_repository"),
	}
}

// ListByApprovalStatus queries jobs by approvalStatus
func (r *JobRepository) ListByApprovalStatus(ctx context.Context, status domain.ApprovalStatus, limit int) ([]domain.Job, error) {
	q := r.client.Collection(domain.CollectionJobs).Where("approvalStatus", "==", string(status))
	if limit > 0 {
		q = q.Limit(limit)
	}

	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, wrapError("query jobs by approval status", err)
	}

	jobs := make([]domain.Job, 0, len(docs))
	for _, doc := range docs {
		jobs = append(jobs, jobFromSnapshot(doc))
	}

	r.logger.Debug("jobs retrieved", "approval_status", status, "count", len(jobs))
	return jobs, nil
}

// SetApprovedAt writes approvedAt for each update
func (r *JobRepository) SetApprovedAt(ctx context.Context, updates []domain.ApprovedAtUpdate) (int, error) {
	w := newBatchWriter(r.client.Firestore())
	jobs := r.client.Collection(domain.CollectionJobs)

	for _, u := range updates {
		var value any = firestore.ServerTimestamp
		if u.ApprovedAt != nil {
			value = *u.ApprovedAt
		}

		if err := w.update(ctx, jobs.Doc(u.JobID), []firestore.Update{{Path: "approvedAt", Value: value}}); err != nil {
			return w.committed, wrapError("set approvedAt", err)
		}
	}

	if err := w.flush(ctx); err != nil {
		return w.committed, wrapError("set approvedAt", err)
	}

	return w.committed, nil
}

// Create adds a job with server-side posting and audit timestamps
func (r *JobRepository) Create(ctx context.Context, values map[string]any) (string, error) {
	data := make(map[string]any, len(values)+3)
	for k, v := range values {
		data[k] = v
	}
	data["postedDate"] = firestore.ServerTimestamp
	data["createdAt"] = firestore.ServerTimestamp
	data["updatedAt"] = firestore.ServerTimestamp

	ref, _, err := r.client.Collection(domain.CollectionJobs).Add(ctx, data)
	if err != nil {
		return "", wrapError("create job", err)
	}

	r.logger.Info("job created", "job_id", ref.ID)
	return ref.ID, nil
}

func jobFromSnapshot(doc *firestore.DocumentSnapshot) domain.Job {
	data := doc.Data()
	return domain.Job{
		ID:                  doc.Ref.ID,
		Title:               fields.String(data, "jobTitle"),
		ApprovalStatus:      fields.String(data, "approvalStatus"),
		HasApprovedAt:       fields.Truthy(data["approvedAt"]),
		PostedDate:          fields.Time(data, "postedDate"),
		CandidateDepartment: fields.String(data, "candidateDepartment"),
	}
}
