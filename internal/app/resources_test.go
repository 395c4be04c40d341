package app

import (
	"context"
	"go/build"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobease/jobease-admin/internal/config"
	"github.com/jobease/jobease-admin/internal/report"
	"github.com/jobease/jobease-admin/pkg/logging"
)

func TestProvideFirestoreConfig(t *testing.T) {
	var cfg config.Config
	cfg.Firestore.ProjectID = "jobease-edevs"
	cfg.Firestore.DatabaseID = "staging"
	cfg.Firestore.CredentialsPath = "/secrets/sa.json"

	fcfg := provideFirestoreConfig(cfg)
	assert.Equal(t, "jobease-edevs", fcfg.ProjectID)
	assert.Equal(t, "staging", fcfg.DatabaseID)
	assert.Equal(t, "/secrets/sa.json", fcfg.CredentialsPath)
}

func TestProvideExporterDisabledWithoutSpreadsheet(t *testing.T) {
	exporter, err := provideExporter(context.Background(), config.Config{}, logging.NewNop())
	require.NoError(t, err)
	assert.Equal(t, report.Nop{}, exporter)
}

func TestProvideExporterNeedsCredentials(t *testing.T) {
	var cfg config.Config
	cfg.Report.SpreadsheetID = "sheet-1"

	_, err := provideExporter(context.Background(), cfg, logging.NewNop())
	assert.Error(t, err)
}

func TestWiringDoesNotImportMemoryStore(t *testing.T) {
	pkg, err := build.ImportDir(".", 0)
	require.NoError(t, err)
	assert.NotContains(t, pkg.Imports, "github.com/jobease/jobease-admin/internal/storage/memory")
}
