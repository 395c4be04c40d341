package employer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobease/jobease-admin/internal/domain"
	"github.com/jobease/jobease-admin/internal/storage/memory"
)

func newService(t *testing.T, store *memory.Store) *Service {
	t.Helper()
	svc, err := NewService(memory.NewEmployerRepository(store), nil)
	require.NoError(t, err)
	return svc
}

func TestBackfillApproval(t *testing.T) {
	store := memory.NewStore()
	store.Put(domain.CollectionEmployers, "legacy", map[string]any{"companyName": "Acme", "isApproved": true})
	store.Put(domain.CollectionEmployers, "current", map[string]any{"approvalStatus": "approved", "isApproved": true})

	res, err := newService(t, store).BackfillApproval(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BackfillResult{Total: 2, Updated: 1}, res)

	doc, _ := store.Get(domain.CollectionEmployers, "legacy")
	assert.Equal(t, map[string]any{
		"companyName":    "Acme",
		"approvalStatus": "pending",
		"isApproved":     false,
		"approvedAt":     nil,
		"approvedBy":     nil,
	}, doc)

	doc, _ = store.Get(domain.CollectionEmployers, "current")
	assert.Equal(t, true, doc["isApproved"])
}

func TestPlanCleanup(t *testing.T) {
	tests := []struct {
		name string
		in   domain.Employer
		want domain.EmployerPatch
	}{
		{
			name: "clean",
			in:   domain.Employer{ID: "e", ApprovalStatus: "approved", HasApprovalStatus: true, HasReason: true},
			want: domain.EmployerPatch{EmployerID: "e"},
		},
		{
			name: "legacy flag",
			in:   domain.Employer{ID: "e", ApprovalStatus: "rejected", HasApprovalStatus: true, HasReason: true, HasIsApproved: true},
			want: domain.EmployerPatch{EmployerID: "e", DeleteIsApproved: true},
		},
		{
			name: "missing everything",
			in:   domain.Employer{ID: "e"},
			want: domain.EmployerPatch{EmployerID: "e", AddEmptyReason: true, ApprovalStatus: domain.ApprovalPending},
		},
		{
			name: "unknown status",
			in:   domain.Employer{ID: "e", ApprovalStatus: "Approved", HasApprovalStatus: true, HasReason: true},
			want: domain.EmployerPatch{EmployerID: "e", ApprovalStatus: domain.ApprovalPending},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlanCleanup(tt.in))
		})
	}
}

func TestCleanupWritesOnlyDirtyEmployers(t *testing.T) {
	store := memory.NewStore()
	store.Put(domain.CollectionEmployers, "clean", map[string]any{"approvalStatus": "pending", "reason": "docs missing"})
	store.Put(domain.CollectionEmployers, "nulls", map[string]any{"approvalStatus": "", "isApproved": nil})

	res := newService(t, store).Cleanup(context.Background())
	require.NoError(t, res.Err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 1, res.Fixed)

	doc, _ := store.Get(domain.CollectionEmployers, "nulls")
	assert.Equal(t, map[string]any{"approvalStatus": "pending", "reason": ""}, doc)

	doc, _ = store.Get(domain.CollectionEmployers, "clean")
	assert.Equal(t, "docs missing", doc["reason"])
}

func TestCleanupReportsFailure(t *testing.T) {
	store := memory.NewStore()
	store.FailOn(domain.CollectionEmployers, errors.New("unavailable"))

	res := newService(t, store).Cleanup(context.Background())
	assert.False(t, res.Success)
	assert.Error(t, res.Err)
}
