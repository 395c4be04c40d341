package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/jobease/jobease-admin/internal/domain"
	"github.com/jobease/jobease-admin/internal/repository"
	"github.com/jobease/jobease-admin/internal/storage/fields"
)

var (
	_ repository.JobRepository       = (*JobRepository)(nil)
	_ repository.EmployerRepository  = (*EmployerRepository)(nil)
	_ repository.AdminRepository     = (*AdminRepository)(nil)
	_ repository.DropdownRepository  = (*DropdownRepository)(nil)
	_ repository.CandidateRepository = (*CandidateRepository)(nil)
)

// JobRepository implements repository.JobRepository over a Store
type JobRepository struct{ store *Store }

func NewJobRepository(store *Store) *JobRepository { return &JobRepository{store: store} }

func (r *JobRepository) ListByApprovalStatus(_ context.Context, status domain.ApprovalStatus, limit int) ([]domain.Job, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(domain.CollectionJobs); err != nil {
		return nil, err
	}

	var jobs []domain.Job
	for _, id := range s.sortedIDs(domain.CollectionJobs) {
		doc := s.docs[domain.CollectionJobs][id]
		if fields.String(doc, "approvalStatus") != string(status) {
			continue
		}
		jobs = append(jobs, domain.Job{
			ID:                  id,
			Title:               fields.String(doc, "jobTitle"),
			ApprovalStatus:      fields.String(doc, "approvalStatus"),
			HasApprovedAt:       fields.Truthy(doc["approvedAt"]),
			PostedDate:          fields.Time(doc, "postedDate"),
			CandidateDepartment: fields.String(doc, "candidateDepartment"),
		})
		if limit > 0 && len(jobs) == limit {
			break
		}
	}
	return jobs, nil
}

func (r *JobRepository) SetApprovedAt(_ context.Context, updates []domain.ApprovedAtUpdate) (int, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(domain.CollectionJobs); err != nil {
		return 0, err
	}

	for _, u := range updates {
		if _, ok := s.docs[domain.CollectionJobs][u.JobID]; !ok {
			return 0, fmt.Errorf("set approvedAt: %w", repository.ErrNotFound)
		}
	}

	for _, u := range updates {
		var value any = ServerTimestamp
		if u.ApprovedAt != nil {
			value = *u.ApprovedAt
		}
		_ = s.update(domain.CollectionJobs, u.JobID, map[string]any{"approvedAt": value})
	}
	return len(updates), nil
}

func (r *JobRepository) Create(_ context.Context, values map[string]any) (string, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(domain.CollectionJobs); err != nil {
		return "", err
	}

	doc := clone(values)
	doc["postedDate"] = ServerTimestamp
	doc["createdAt"] = ServerTimestamp
	doc["updatedAt"] = ServerTimestamp

	id := s.newID()
	s.collection(domain.CollectionJobs)[id] = doc
	return id, nil
}

// EmployerRepository implements repository.EmployerRepository over a Store
type EmployerRepository struct{ store *Store }

func NewEmployerRepository(store *Store) *EmployerRepository {
	return &EmployerRepository{store: store}
}

func (r *EmployerRepository) List(_ context.Context) ([]domain.Employer, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(domain.CollectionEmployers); err != nil {
		return nil, err
	}

	var employers []domain.Employer
	for _, id := range s.sortedIDs(domain.CollectionEmployers) {
		doc := s.docs[domain.CollectionEmployers][id]
		employers = append(employers, domain.Employer{
			ID:                id,
			CompanyName:       fields.String(doc, "companyName"),
			ApprovalStatus:    fields.String(doc, "approvalStatus"),
			HasApprovalStatus: fields.Has(doc, "approvalStatus"),
			HasIsApproved:     fields.Has(doc, "isApproved"),
			HasReason:         fields.Has(doc, "reason"),
		})
	}
	return employers, nil
}

func (r *EmployerRepository) ApplyPatches(_ context.Context, patches []domain.EmployerPatch) (int, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(domain.CollectionEmployers); err != nil {
		return 0, err
	}

	written := 0
	for _, p := range patches {
		changes := map[string]any{}
		if p.DeleteIsApproved {
			changes["isApproved"] = deleteField
		}
		if p.AddEmptyReason {
			changes["reason"] = ""
		}
		if p.ApprovalStatus != "" {
			changes["approvalStatus"] = string(p.ApprovalStatus)
		}
		if p.ResetApproval {
			changes["isApproved"] = false
			changes["approvedAt"] = nil
			changes["approvedBy"] = nil
		}
		if len(changes) == 0 {
			continue
		}
		if err := s.update(domain.CollectionEmployers, p.EmployerID, changes); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// AdminRepository implements repository.AdminRepository over a Store
type AdminRepository struct{ store *Store }

func NewAdminRepository(store *Store) *AdminRepository { return &AdminRepository{store: store} }

func (r *AdminRepository) Put(_ context.Context, admin domain.Admin) error {
	if admin.UID == "" {
		return fmt.Errorf("put admin: empty uid: %w", repository.ErrInvalidInput)
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(domain.CollectionAdmins); err != nil {
		return err
	}

	s.collection(domain.CollectionAdmins)[admin.UID] = map[string]any{
		"isAdmin":    true,
		"email":      admin.Email,
		"promotedAt": ServerTimestamp,
		"createdBy":  admin.CreatedBy,
		"role":       admin.Role,
	}
	return nil
}

// DropdownRepository implements repository.DropdownRepository over a Store
type DropdownRepository struct{ store *Store }

func NewDropdownRepository(store *Store) *DropdownRepository {
	return &DropdownRepository{store: store}
}

func (r *DropdownRepository) Get(_ context.Context, name string) (domain.DropdownList, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(domain.CollectionDropdowns); err != nil {
		return domain.DropdownList{}, err
	}

	doc, ok := s.docs[domain.CollectionDropdowns][name]
	if !ok {
		return domain.DropdownList{}, fmt.Errorf("get dropdown %q: %w", name, repository.ErrNotFound)
	}
	return domain.DropdownList{Name: name, Options: fields.Strings(doc["options"])}, nil
}

func (r *DropdownRepository) List(_ context.Context) ([]domain.DropdownList, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(domain.CollectionDropdowns); err != nil {
		return nil, err
	}

	var lists []domain.DropdownList
	for _, id := range s.sortedIDs(domain.CollectionDropdowns) {
		doc := s.docs[domain.CollectionDropdowns][id]
		lists = append(lists, domain.DropdownList{Name: id, Options: fields.Strings(doc["options"])})
	}
	return lists, nil
}

func (r *DropdownRepository) Save(_ context.Context, list domain.DropdownList, opts repository.SaveOptions) error {
	if list.Name == "" {
		return fmt.Errorf("save dropdown: empty name: %w", repository.ErrInvalidInput)
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(domain.CollectionDropdowns); err != nil {
		return err
	}

	data := map[string]any{"options": toAny(list.Options)}
	if opts.Timestamps {
		data["created_at"] = ServerTimestamp
		data["updated_at"] = ServerTimestamp
	}

	coll := s.collection(domain.CollectionDropdowns)
	if existing, ok := coll[list.Name]; ok && opts.Merge {
		merge(existing, data)
		return nil
	}
	coll[list.Name] = data
	return nil
}

func (r *DropdownRepository) UpdateOptions(_ context.Context, name string, options []string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(domain.CollectionDropdowns); err != nil {
		return err
	}
	return s.update(domain.CollectionDropdowns, name, map[string]any{"options": toAny(options)})
}

// CandidateRepository implements repository.CandidateRepository over a Store
type CandidateRepository struct{ store *Store }

func NewCandidateRepository(store *Store) *CandidateRepository {
	return &CandidateRepository{store: store}
}

func (r *CandidateRepository) List(_ context.Context) ([]domain.Candidate, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(domain.CollectionCandidate); err != nil {
		return nil, err
	}

	var candidates []domain.Candidate
	for _, id := range s.sortedIDs(domain.CollectionCandidate) {
		doc := s.docs[domain.CollectionCandidate][id]
		candidates = append(candidates, domain.Candidate{ID: id, MigrationCompleted: fields.Bool(doc, "migrationCompleted")})
	}
	return candidates, nil
}

func (r *CandidateRepository) ListApplications(_ context.Context, candidateID string) ([]domain.Document, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	path := Path(domain.CollectionCandidate, candidateID, domain.SubcollectionApplications)
	if err := s.check(path); err != nil {
		return nil, err
	}

	var docs []domain.Document
	for _, id := range s.sortedIDs(path) {
		docs = append(docs, domain.Document{ID: id, Fields: clone(s.docs[path][id])})
	}
	return docs, nil
}

func (r *CandidateRepository) SaveApplicationSummary(_ context.Context, candidateID string, summary domain.ApplicationSummary) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(domain.CollectionCandidate); err != nil {
		return err
	}

	apps := make([]any, 0, len(summary.Applications))
	for _, e := range summary.Applications {
		apps = append(apps, e)
	}

	data := map[string]any{
		"applications":       apps,
		"applicationStats":   summary.Stats,
		"analyticsUpdatedAt": summary.MigratedAt,
		"migrationCompleted": true,
		"migrationDate":      summary.MigratedAt,
	}

	coll := s.collection(domain.CollectionCandidate)
	doc, ok := coll[candidateID]
	if !ok {
		doc = map[string]any{}
		coll[candidateID] = doc
	}
	merge(doc, data)
	return nil
}

func (r *CandidateRepository) DeleteSubcollection(_ context.Context, candidateID, name string) (int, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	path := Path(domain.CollectionCandidate, candidateID, name)
	if err := s.check(path); err != nil {
		return 0, err
	}

	n := len(s.docs[path])
	delete(s.docs, path)
	return n, nil
}

// Timestamp is a convenience for seeding timestamp fields in tests
func Timestamp(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func toAny(options []string) []any {
	out := make([]any, len(options))
	for i, o := range options {
		out[i] = o
	}
	return out
}
