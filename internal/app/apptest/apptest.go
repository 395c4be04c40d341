// Package apptest wires app.Resources to the in-process store for tests.
package apptest

import (
	"github.com/jobease/jobease-admin/internal/app"
	"github.com/jobease/jobease-admin/internal/catalog"
	"github.com/jobease/jobease-admin/internal/domain/admin"
	"github.com/jobease/jobease-admin/internal/domain/application"
	"github.com/jobease/jobease-admin/internal/domain/dropdown"
	"github.com/jobease/jobease-admin/internal/domain/employer"
	"github.com/jobease/jobease-admin/internal/domain/job"
	"github.com/jobease/jobease-admin/internal/report"
	"github.com/jobease/jobease-admin/internal/storage/memory"
	"github.com/jobease/jobease-admin/pkg/logging"
)

// NewResources wires every service to store. A nil exporter disables reports.
func NewResources(store *memory.Store, exporter report.Exporter, logger *logging.Logger) (*app.Resources, error) {
	if exporter == nil {
		exporter = report.Nop{}
	}

	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}

	jobs, err := job.NewService(memory.NewJobRepository(store), logger)
	if err != nil {
		return nil, err
	}
	employers, err := employer.NewService(memory.NewEmployerRepository(store), logger)
	if err != nil {
		return nil, err
	}
	admins, err := admin.NewService(memory.NewAdminRepository(store), logger)
	if err != nil {
		return nil, err
	}
	dropdowns, err := dropdown.NewService(memory.NewDropdownRepository(store), cat, jobs, exporter, logger)
	if err != nil {
		return nil, err
	}
	applications, err := application.NewServiceWithDeps(memory.NewCandidateRepository(store), exporter, logger)
	if err != nil {
		return nil, err
	}

	return &app.Resources{
		Jobs:         jobs,
		Employers:    employers,
		Admins:       admins,
		Dropdowns:    dropdowns,
		Applications: applications,
		Catalog:      cat,
		Report:       exporter,
	}, nil
}
