package firestore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobease/jobease-admin/internal/domain"
	"github.com/jobease/jobease-admin/internal/repository"
	pkgfirestore "github.com/jobease/jobease-admin/pkg/firestore"
	"github.com/jobease/jobease-admin/pkg/logging"
)

// newEmulatorClient connects to a fresh project on the emulator so runs do not
// see each other's documents
func newEmulatorClient(t *testing.T) (*pkgfirestore.Client, context.Context) {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST must be set to run this test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	client, err := pkgfirestore.NewClient(ctx, pkgfirestore.Config{ProjectID: "jobease-test-" + uuid.NewString()[:8]})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client, ctx
}

func TestJobRepositoryIntegration(t *testing.T) {
	client, ctx := newEmulatorClient(t)
	repo := NewJobRepository(client, logging.NewNop())
	posted := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	jobs := client.Collection(domain.CollectionJobs)
	_, err := jobs.Doc("j1").Set(ctx, map[string]any{"approvalStatus": "approved", "jobTitle": "Dev", "postedDate": posted})
	require.NoError(t, err)
	_, err = jobs.Doc("j2").Set(ctx, map[string]any{"approvalStatus": "pending"})
	require.NoError(t, err)

	approved, err := repo.ListByApprovalStatus(ctx, domain.ApprovalApproved, 0)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	require.NotNil(t, approved[0].PostedDate)

	n, err := repo.SetApprovedAt(ctx, []domain.ApprovedAtUpdate{{JobID: "j1", ApprovedAt: approved[0].PostedDate}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	snap, err := jobs.Doc("j1").Get(ctx)
	require.NoError(t, err)
	got, ok := snap.Data()["approvedAt"].(time.Time)
	require.True(t, ok)
	assert.True(t, got.Equal(posted))

	id, err := repo.Create(ctx, map[string]any{"jobTitle": "Sample"})
	require.NoError(t, err)
	snap, err = jobs.Doc(id).Get(ctx)
	require.NoError(t, err)
	assert.IsType(t, time.Time{}, snap.Data()["createdAt"])
}

func TestEmployerRepositoryIntegration(t *testing.T) {
	client, ctx := newEmulatorClient(t)
	repo := NewEmployerRepository(client, logging.NewNop())

	employers := client.Collection(domain.CollectionEmployers)
	_, err := employers.Doc("e1").Set(ctx, map[string]any{"isApproved": nil, "approvalStatus": "bogus"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].HasIsApproved)

	n, err := repo.ApplyPatches(ctx, []domain.EmployerPatch{{
		EmployerID: "e1", DeleteIsApproved: true, AddEmptyReason: true, ApprovalStatus: domain.ApprovalPending,
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	snap, err := employers.Doc("e1").Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"approvalStatus": "pending", "reason": ""}, snap.Data())
}

func TestDropdownRepositoryIntegration(t *testing.T) {
	client, ctx := newEmulatorClient(t)
	repo := NewDropdownRepository(client, logging.NewNop())

	_, err := repo.Get(ctx, "jobType")
	assert.True(t, repository.IsNotFound(err))
	assert.True(t, repository.IsNotFound(repo.UpdateOptions(ctx, "jobType", []string{"x"})))

	require.NoError(t, repo.Save(ctx, domain.DropdownList{Name: "jobType", Options: []string{"Full Time"}}, repository.SaveOptions{Timestamps: true}))
	require.NoError(t, repo.UpdateOptions(ctx, "jobType", []string{"Full Time", "Part Time"}))

	got, err := repo.Get(ctx, "jobType")
	require.NoError(t, err)
	assert.Equal(t, []string{"Full Time", "Part Time"}, got.Options)

	snap, err := client.Collection(domain.CollectionDropdowns).Doc("jobType").Get(ctx)
	require.NoError(t, err)
	assert.Contains(t, snap.Data(), "created_at")
}

func TestCandidateRepositoryIntegration(t *testing.T) {
	client, ctx := newEmulatorClient(t)
	repo := NewCandidateRepository(client, logging.NewNop())

	candidate := client.Collection(domain.CollectionCandidate).Doc("c1")
	_, err := candidate.Set(ctx, map[string]any{"name": "Ada"})
	require.NoError(t, err)
	for _, id := range []string{"a1", "a2", "a3"} {
		_, err := candidate.Collection(domain.SubcollectionApplications).Doc(id).Set(ctx, map[string]any{"jobTitle": id})
		require.NoError(t, err)
	}

	docs, err := repo.ListApplications(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, docs, 3)

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveApplicationSummary(ctx, "c1", domain.ApplicationSummary{
		Applications: []domain.ApplicationEntry{{ApplicationID: "a1", AppliedDate: now, Status: "pending"}},
		Stats:        domain.NewApplicationStats(),
		MigratedAt:   now,
	}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].MigrationCompleted)

	snap, err := candidate.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada", snap.Data()["name"])

	n, err := repo.DeleteSubcollection(ctx, "c1", domain.SubcollectionApplications)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = repo.DeleteSubcollection(ctx, "c1", domain.SubcollectionAnalytics)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSaveApplicationSummaryWritesEmptyMapsIntegration(t *testing.T) {
	client, ctx := newEmulatorClient(t)
	repo := NewCandidateRepository(client, logging.NewNop())

	candidate := client.Collection(domain.CollectionCandidate).Doc("c1")
	_, err := candidate.Set(ctx, map[string]any{
		"name": "Ada",
		"applicationStats": map[string]any{
			"industryPreferences": map[string]any{"Fintech": 4},
		},
	})
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	stats := domain.NewApplicationStats()
	stats.TotalApplications = 1
	stats.MonthlyApplications["2025_06"] = 1
	require.NoError(t, repo.SaveApplicationSummary(ctx, "c1", domain.ApplicationSummary{
		Applications: []domain.ApplicationEntry{{ApplicationID: "a1", AppliedDate: now, Status: "pending"}},
		Stats:        stats,
		MigratedAt:   now,
	}))

	snap, err := candidate.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada", snap.Data()["name"])

	saved, ok := snap.Data()["applicationStats"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"industryPreferences", "jobCategoryPreferences", "locationPreferences"} {
		value, present := saved[key]
		require.True(t, present, key)
		assert.Empty(t, value, key)
	}
	assert.Equal(t, map[string]any{"2025_06": int64(1)}, saved["monthlyApplications"])
}

func TestDeleteSubcollectionAcrossChunksIntegration(t *testing.T) {
	client, ctx := newEmulatorClient(t)
	repo := NewCandidateRepository(client, logging.NewNop())

	const total = maxBatchWrites + 1
	apps := client.Collection(domain.CollectionCandidate).Doc("c1").Collection(domain.SubcollectionApplications)
	bw := client.Firestore().BulkWriter(ctx)
	for i := 0; i < total; i++ {
		_, err := bw.Set(apps.Doc(uuid.NewString()), map[string]any{"jobTitle": "Engineer"})
		require.NoError(t, err)
	}
	bw.End()

	n, err := repo.DeleteSubcollection(ctx, "c1", domain.SubcollectionApplications)
	require.NoError(t, err)
	assert.Equal(t, total, n)

	left, err := apps.DocumentRefs(ctx).GetAll()
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestAdminRepositoryIntegration(t *testing.T) {
	client, ctx := newEmulatorClient(t)
	repo := NewAdminRepository(client, logging.NewNop())

	assert.ErrorIs(t, repo.Put(ctx, domain.Admin{}), repository.ErrInvalidInput)
	require.NoError(t, repo.Put(ctx, domain.Admin{UID: "u1", Email: "ops@jobease.in", Role: "super-admin", CreatedBy: "firebase-cli"}))

	snap, err := client.Collection(domain.CollectionAdmins).Doc("u1").Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, true, snap.Data()["isAdmin"])
	assert.IsType(t, time.Time{}, snap.Data()["promotedAt"])
}
