// Package commands holds the body of each admin command.
package commands

import (
	"context"
	"fmt"

	"github.com/jobease/jobease-admin/internal/catalog"
	"github.com/jobease/jobease-admin/internal/cli"
	"github.com/jobease/jobease-admin/internal/repository"
)

// AddApprovedAt backfills approvedAt on approved jobs
func AddApprovedAt(ctx context.Context, env cli.Env) error {
	res, err := env.Resources.Jobs.AddApprovedAt(ctx)
	if err != nil {
		return err
	}
	env.Logger.Info("approvedAt backfill done", "matched", res.Matched, "updated", res.Updated, "skipped", res.Skipped)
	return nil
}

// BackfillEmployerApproval adds approval fields to legacy employers
func BackfillEmployerApproval(ctx context.Context, env cli.Env) error {
	res, err := env.Resources.Employers.BackfillApproval(ctx)
	if err != nil {
		return err
	}
	env.Logger.Info("employer approval backfill done", "total", res.Total, "updated", res.Updated)
	return nil
}

// CleanupEmployers normalizes employer approval fields
func CleanupEmployers(ctx context.Context, env cli.Env) error {
	res := env.Resources.Employers.Cleanup(ctx)
	env.Logger.Info("employer cleanup result", "total", res.Total, "fixed", res.Fixed, "success", res.Success)
	if !res.Success {
		return res.Err
	}
	return nil
}

// CreateAdmin promotes ADMIN_UID to administrator
func CreateAdmin(ctx context.Context, env cli.Env) error {
	a := env.Config.Admin
	_, err := env.Resources.Admins.Promote(ctx, a.UID, a.Email, a.Role)
	return err
}

// SetupDropdowns overwrites every list of the full catalog, then lists the collection
func SetupDropdowns(ctx context.Context, env cli.Env) error {
	if _, err := env.Resources.Dropdowns.Seed(ctx, catalog.SetAll, repository.SaveOptions{Timestamps: true}); err != nil {
		return err
	}
	_, err := env.Resources.Dropdowns.ListAll(ctx)
	return err
}

// SetupCandidateDepartment overwrites candidateDepartment with options only
func SetupCandidateDepartment(ctx context.Context, env cli.Env) error {
	_, err := env.Resources.Dropdowns.Seed(ctx, catalog.SetCandidateDepartment, repository.SaveOptions{})
	return err
}

// SetupCompanyType overwrites companyType with timestamps
func SetupCompanyType(ctx context.Context, env cli.Env) error {
	_, err := env.Resources.Dropdowns.Seed(ctx, catalog.SetCompanyType, repository.SaveOptions{Timestamps: true})
	return err
}

// SetupPostJobDropdowns merges the post-job form lists and reads each one back
func SetupPostJobDropdowns(ctx context.Context, env cli.Env) error {
	svc := env.Resources.Dropdowns

	names, err := svc.Seed(ctx, catalog.SetPostJob, repository.SaveOptions{Merge: true, Timestamps: true})
	if err != nil {
		return err
	}
	if _, err := svc.ListAll(ctx); err != nil {
		return err
	}

	entries, err := svc.VerifyNames(ctx, names)
	if err != nil {
		return err
	}

	missing := 0
	for _, e := range entries {
		if !e.Found {
			missing++
		}
	}
	if missing > 0 {
		return fmt.Errorf("verify post-job dropdowns: %d of %d documents not found", missing, len(entries))
	}
	return nil
}

// SetupEnhancedJobData overwrites the job classification lists and adds a sample job
func SetupEnhancedJobData(ctx context.Context, env cli.Env) error {
	if _, err := env.Resources.Dropdowns.Seed(ctx, catalog.SetEnhancedJob, repository.SaveOptions{}); err != nil {
		return err
	}

	sample := env.Resources.Catalog.SampleJob()
	id, err := env.Resources.Jobs.CreateSample(ctx, sample)
	if err != nil {
		return err
	}

	fieldNames := make([]string, 0, len(sample))
	for k := range sample {
		fieldNames = append(fieldNames, k)
	}
	env.Logger.Info("sample job structure", "job_id", id, "fields", fieldNames)
	return nil
}

// MigrateApplications flattens application subcollections into candidate documents
func MigrateApplications(ctx context.Context, env cli.Env) error {
	_, err := env.Resources.Applications.Migrate(ctx)
	return err
}

// CleanupApplications deletes subcollections of migrated candidates
func CleanupApplications(ctx context.Context, env cli.Env) error {
	_, err := env.Resources.Applications.Cleanup(ctx)
	return err
}

// FixCandidateDepartment repairs the candidateDepartment list
func FixCandidateDepartment(ctx context.Context, env cli.Env) error {
	res, err := env.Resources.Dropdowns.FixCandidateDepartment(ctx)
	if err != nil {
		return err
	}
	env.Logger.Info("candidateDepartment check done", "action", res.Action, "sampled_jobs", res.SampledJobs)
	return nil
}

// InspectDropdowns logs the dropdown inventory
func InspectDropdowns(ctx context.Context, env cli.Env) error {
	_, err := env.Resources.Dropdowns.Inspect(ctx)
	return err
}
