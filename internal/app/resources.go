// Package app wires clients, repositories and services for the admin commands.
package app

import (
	"context"
	"fmt"

	"github.com/jobease/jobease-admin/internal/catalog"
	"github.com/jobease/jobease-admin/internal/config"
	"github.com/jobease/jobease-admin/internal/domain/admin"
	"github.com/jobease/jobease-admin/internal/domain/application"
	"github.com/jobease/jobease-admin/internal/domain/dropdown"
	"github.com/jobease/jobease-admin/internal/domain/employer"
	"github.com/jobease/jobease-admin/internal/domain/job"
	"github.com/jobease/jobease-admin/internal/report"
	pkgfirestore "github.com/jobease/jobease-admin/pkg/firestore"
	"github.com/jobease/jobease-admin/pkg/logging"
	"github.com/jobease/jobease-admin/pkg/sheets"
)

// Resources holds the services a command can use
type Resources struct {
	Jobs         *job.Service
	Employers    *employer.Service
	Admins       *admin.Service
	Dropdowns    *dropdown.Service
	Applications *application.Service
	Catalog      *catalog.Catalog
	Report       report.Exporter
}

func newResources(
	jobs *job.Service,
	employers *employer.Service,
	admins *admin.Service,
	dropdowns *dropdown.Service,
	applications *application.Service,
	cat *catalog.Catalog,
	exporter report.Exporter,
) *Resources {
	return &Resources{
		Jobs:         jobs,
		Employers:    employers,
		Admins:       admins,
		Dropdowns:    dropdowns,
		Applications: applications,
		Catalog:      cat,
		Report:       exporter,
	}
}

// provideFirestoreConfig extracts Firestore config from main config
func provideFirestoreConfig(cfg config.Config) pkgfirestore.Config {
	return pkgfirestore.Config{
		ProjectID:       cfg.Firestore.ProjectID,
		DatabaseID:      cfg.Firestore.DatabaseID,
		CredentialsPath: cfg.Firestore.CredentialsPath,
	}
}

// provideFirestoreClient opens the client and closes it on cleanup
func provideFirestoreClient(ctx context.Context, cfg pkgfirestore.Config, logger *logging.Logger) (*pkgfirestore.Client, func(), error) {
	client, err := pkgfirestore.NewClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Firestore client initialized", "database", client.DatabaseID())

	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close Firestore client", "err", err)
		}
	}
	return client, cleanup, nil
}

// provideExporter returns a Sheets exporter when a spreadsheet is configured
func provideExporter(ctx context.Context, cfg config.Config, logger *logging.Logger) (report.Exporter, error) {
	if !cfg.ReportEnabled() {
		return report.Nop{}, nil
	}

	client, err := sheets.NewClient(ctx, sheets.Config{CredentialsPath: cfg.Report.CredentialsPath})
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	logger.Info("Sheets report enabled", "spreadsheet_id", cfg.Report.SpreadsheetID, "tab", cfg.Report.Tab)
	return report.NewSheetsExporter(client, cfg.Report.SpreadsheetID, cfg.Report.Tab), nil
}
