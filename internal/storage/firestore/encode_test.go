package firestore

import (
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jobease/jobease-admin/internal/domain"
	"github.com/jobease/jobease-admin/internal/repository"
)

func TestWrapError(t *testing.T) {
	assert.NoError(t, wrapError("get", nil))

	err := wrapError("get dropdown", status.Error(codes.NotFound, "no such document"))
	assert.True(t, repository.IsNotFound(err))
	assert.Contains(t, err.Error(), "get dropdown")

	cause := status.Error(codes.PermissionDenied, "denied")
	err = wrapError("list jobs", cause)
	assert.False(t, repository.IsNotFound(err))
	assert.ErrorIs(t, err, cause)
}

func TestEncodeApplications(t *testing.T) {
	applied := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	out := encodeApplications([]domain.ApplicationEntry{
		{ApplicationID: "a1", JobID: "j1", AppliedDate: applied, Status: "pending"},
		{ApplicationID: "a2"},
	})
	require.Len(t, out, 2)

	first := out[0].(map[string]any)
	assert.Equal(t, "j1", first["jobId"])
	assert.Equal(t, applied, first["appliedDate"])

	second := out[1].(map[string]any)
	assert.Nil(t, second["jobId"])
	assert.Contains(t, second, "statusHistory")
}

func TestEncodeStats(t *testing.T) {
	first := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	stats := domain.NewApplicationStats()
	stats.TotalApplications = 3
	stats.MonthlyApplications["2025_01"] = 3
	stats.StatusCounts.Accepted = 2
	stats.FirstApplicationDate = &first

	out := encodeStats(stats)
	assert.Equal(t, 3, out["totalApplications"])
	assert.Equal(t, map[string]any{"2025_01": 3}, out["monthlyApplications"])
	assert.Equal(t, map[string]any{"pending": 0, "accepted": 2, "rejected": 0}, out["statusCounts"])
	assert.Equal(t, first, out["firstApplicationDate"])
	assert.Nil(t, out["lastApplicationDate"])
}

func TestMergePathsKeepsEmptyMapsAsLeaves(t *testing.T) {
	data := map[string]any{
		"applications": []any{},
		"applicationStats": encodeStats(domain.ApplicationStats{
			MonthlyApplications: map[string]int{"2025_01": 1},
		}),
		"migrationCompleted": true,
	}

	paths := mergePaths(data, nil)
	assert.Contains(t, paths, firestore.FieldPath{"applications"})
	assert.Contains(t, paths, firestore.FieldPath{"migrationCompleted"})
	assert.Contains(t, paths, firestore.FieldPath{"applicationStats", "monthlyApplications", "2025_01"})
	assert.Contains(t, paths, firestore.FieldPath{"applicationStats", "industryPreferences"})
	assert.Contains(t, paths, firestore.FieldPath{"applicationStats", "jobCategoryPreferences"})
	assert.Contains(t, paths, firestore.FieldPath{"applicationStats", "statusCounts", "pending"})
	assert.NotContains(t, paths, firestore.FieldPath{"applicationStats"})
	assert.NotContains(t, paths, firestore.FieldPath{"applicationStats", "monthlyApplications"})
}

func TestEmployerUpdates(t *testing.T) {
	assert.Empty(t, employerUpdates(domain.EmployerPatch{EmployerID: "e1"}))

	updates := employerUpdates(domain.EmployerPatch{EmployerID: "e1", DeleteIsApproved: true, AddEmptyReason: true})
	require.Len(t, updates, 2)
	assert.Equal(t, "isApproved", updates[0].Path)
	assert.Equal(t, firestore.Delete, updates[0].Value)
	assert.Equal(t, "", updates[1].Value)

	updates = employerUpdates(domain.EmployerPatch{EmployerID: "e1", ApprovalStatus: domain.ApprovalPending, ResetApproval: true})
	paths := make([]string, 0, len(updates))
	for _, u := range updates {
		paths = append(paths, u.Path)
	}
	assert.Equal(t, []string{"approvalStatus", "isApproved", "approvedAt", "approvedBy"}, paths)
}
