package apptest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobease/jobease-admin/internal/domain"
	"github.com/jobease/jobease-admin/internal/storage/memory"
	"github.com/jobease/jobease-admin/pkg/logging"
)

func TestResourcesAreWired(t *testing.T) {
	store := memory.NewStore()
	res, err := NewResources(store, nil, logging.NewNop())
	require.NoError(t, err)

	require.NotNil(t, res.Jobs)
	require.NotNil(t, res.Employers)
	require.NotNil(t, res.Admins)
	require.NotNil(t, res.Dropdowns)
	require.NotNil(t, res.Applications)
	require.NotNil(t, res.Catalog)
	assert.False(t, res.Report.Enabled())

	_, err = res.Admins.Promote(context.Background(), "uid-1", "ops@jobease.in", "super-admin")
	require.NoError(t, err)
	assert.Equal(t, []string{"uid-1"}, store.IDs(domain.CollectionAdmins))
}
