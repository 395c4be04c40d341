package application

import (
	"context"
	"fmt"
	"time"

	"github.com/jobease/jobease-admin/internal/domain"
	"github.com/jobease/jobease-admin/internal/report"
	"github.com/jobease/jobease-admin/internal/repository"
	"github.com/jobease/jobease-admin/pkg/logging"
)

// ReportHeader describes the rows appended per migrated candidate
var ReportHeader = []string{
	"candidate_id", "applications", "pending", "accepted", "rejected",
	"first_application", "last_application", "migrated_at",
}

// Option configures Service
type Option func(*config)

type config struct {
	repo     repository.CandidateRepository
	exporter report.Exporter
	logger   *logging.Logger
	clock    func() time.Time
}

// WithRepository sets the candidate repository
func WithRepository(repo repository.CandidateRepository) Option {
	return func(c *config) {
		c.repo = repo
	}
}

// WithExporter sets where migration summaries are reported
func WithExporter(exporter report.Exporter) Option {
	return func(c *config) {
		c.exporter = exporter
	}
}

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// Service moves application subcollections into candidate documents
type Service struct {
	repo     repository.CandidateRepository
	exporter report.Exporter
	logger   *logging.Logger
	clock    func() time.Time
}

// NewService builds Service from options
func NewService(opts ...Option) (*Service, error) {
	cfg := &config{
		exporter: report.Nop{},
		logger:   logging.NewNop(),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.repo == nil {
		return nil, fmt.Errorf("application.Service: repository is required")
	}

	return &Service{
		repo:     cfg.repo,
		exporter: cfg.exporter,
		logger:   cfg.logger,
		clock:    cfg.clock,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(repo repository.CandidateRepository, exporter report.Exporter, logger *logging.Logger) (*Service, error) {
	opts := []Option{WithRepository(repo)}
	if exporter != nil {
		opts = append(opts, WithExporter(exporter))
	}
	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}
	return NewService(opts...)
}

// MigrateResult summarizes migrate-applications
type MigrateResult struct {
	Total     int
	Processed int
	Skipped   int
	Errors    int
}

// Migrate flattens every candidate's applications subcollection into the
// candidate document. A failing candidate is logged and counted; only a
// failure to list candidates aborts the run.
func (s *Service) Migrate(ctx context.Context) (MigrateResult, error) {
	s.logger.Info("starting application migration")

	candidates, err := s.repo.List(ctx)
	if err != nil {
		return MigrateResult{}, fmt.Errorf("list candidates: %w", err)
	}

	result := MigrateResult{Total: len(candidates)}
	s.logger.Info("candidates found", "count", len(candidates))

	var rows [][]any
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		summary, err := s.migrateOne(ctx, c.ID)
		switch {
		case err != nil:
			s.logger.Error("candidate migration failed", "candidate_id", c.ID, "error", err)
			result.Errors++
		case summary == nil:
			s.logger.Info("no applications found", "candidate_id", c.ID)
			result.Skipped++
		default:
			s.logger.Info("applications migrated", "candidate_id", c.ID, "applications", len(summary.Applications))
			result.Processed++
			rows = append(rows, summaryRow(c.ID, *summary))
		}
	}

	s.logger.Info("migration summary",
		"processed", result.Processed,
		"skipped", result.Skipped,
		"errors", result.Errors,
		"total", result.Total,
	)
	if result.Errors > 0 {
		s.logger.Warn("migration completed with errors, review the log")
	} else {
		s.logger.Info("migration completed successfully")
	}

	if s.exporter.Enabled() && len(rows) > 0 {
		res, err := s.exporter.Export(ctx, report.Table{Header: ReportHeader, Rows: rows}, report.ModeAppend)
		if err != nil {
			s.logger.Warn("migration report export failed", "error", err)
		} else {
			s.logger.Info("migration report exported", "destination", res.Destination, "rows", res.WrittenRows)
		}
	}

	return result, nil
}

// migrateOne returns nil, nil when the candidate has no applications
func (s *Service) migrateOne(ctx context.Context, candidateID string) (*domain.ApplicationSummary, error) {
	docs, err := s.repo.ListApplications(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}

	now := s.clock()
	entries := make([]domain.ApplicationEntry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, BuildEntry(d, now))
	}

	summary := domain.ApplicationSummary{
		Stats:      Aggregate(entries),
		MigratedAt: now,
	}
	SortNewestFirst(entries)
	summary.Applications = entries

	if err := s.repo.SaveApplicationSummary(ctx, candidateID, summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func summaryRow(candidateID string, summary domain.ApplicationSummary) []any {
	counts := summary.Stats.StatusCounts
	return []any{
		candidateID,
		summary.Stats.TotalApplications,
		counts.Pending,
		counts.Accepted,
		counts.Rejected,
		formatDate(summary.Stats.FirstApplicationDate),
		formatDate(summary.Stats.LastApplicationDate),
		summary.MigratedAt.UTC().Format(time.RFC3339),
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// CleanupResult summarizes cleanup-applications
type CleanupResult struct {
	Cleaned int
	Skipped int
	Errors  int
	Deleted int
}

// Cleanup deletes the applications and analytics subcollections of every
// migrated candidate. Candidates not yet migrated are left alone.
func (s *Service) Cleanup(ctx context.Context) (CleanupResult, error) {
	s.logger.Info("starting subcollection cleanup")

	candidates, err := s.repo.List(ctx)
	if err != nil {
		return CleanupResult{}, fmt.Errorf("list candidates: %w", err)
	}

	var result CleanupResult
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if !c.MigrationCompleted {
			s.logger.Info("skipping candidate, migration not completed", "candidate_id", c.ID)
			result.Skipped++
			continue
		}

		deleted, err := s.cleanupOne(ctx, c.ID)
		result.Deleted += deleted
		if err != nil {
			s.logger.Error("candidate cleanup failed", "candidate_id", c.ID, "error", err)
			result.Errors++
			continue
		}
		result.Cleaned++
	}

	s.logger.Info("cleanup completed", "cleaned", result.Cleaned, "skipped", result.Skipped, "errors", result.Errors, "deleted", result.Deleted)
	return result, nil
}

func (s *Service) cleanupOne(ctx context.Context, candidateID string) (int, error) {
	total := 0
	for _, name := range []string{domain.SubcollectionApplications, domain.SubcollectionAnalytics} {
		n, err := s.repo.DeleteSubcollection(ctx, candidateID, name)
		total += n
		if err != nil {
			return total, fmt.Errorf("delete %s: %w", name, err)
		}
		if n > 0 {
			s.logger.Info("subcollection deleted", "candidate_id", candidateID, "subcollection", name, "documents", n)
		}
	}
	return total, nil
}
