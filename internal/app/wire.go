//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"github.com/jobease/jobease-admin/internal/catalog"
	"github.com/jobease/jobease-admin/internal/config"
	"github.com/jobease/jobease-admin/internal/domain/admin"
	"github.com/jobease/jobease-admin/internal/domain/application"
	"github.com/jobease/jobease-admin/internal/domain/dropdown"
	"github.com/jobease/jobease-admin/internal/domain/employer"
	"github.com/jobease/jobease-admin/internal/domain/job"
	"github.com/jobease/jobease-admin/internal/repository"
	storage "github.com/jobease/jobease-admin/internal/storage/firestore"
	"github.com/jobease/jobease-admin/pkg/logging"
)

// InitializeResources creates Resources backed by Firestore
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, func(), error) {
	wire.Build(
		// Infrastructure - Firestore
		provideFirestoreConfig,
		provideFirestoreClient,

		// Infrastructure - Sheets report
		provideExporter,

		// Reference data
		catalog.Default,

		// Repositories
		storage.NewJobRepository,
		wire.Bind(new(repository.JobRepository), new(*storage.JobRepository)),
		storage.NewEmployerRepository,
		wire.Bind(new(repository.EmployerRepository), new(*storage.EmployerRepository)),
		storage.NewAdminRepository,
		wire.Bind(new(repository.AdminRepository), new(*storage.AdminRepository)),
		storage.NewDropdownRepository,
		wire.Bind(new(repository.DropdownRepository), new(*storage.DropdownRepository)),
		storage.NewCandidateRepository,
		wire.Bind(new(repository.CandidateRepository), new(*storage.CandidateRepository)),

		// Services
		job.NewService,
		wire.Bind(new(dropdown.JobSampler), new(*job.Service)),
		employer.NewService,
		admin.NewService,
		dropdown.NewService,
		application.NewServiceWithDeps,

		newResources,
	)

	return nil, nil, nil
}
