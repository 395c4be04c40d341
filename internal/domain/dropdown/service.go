package dropdown

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jobease/jobease-admin/internal/catalog"
	"github.com/jobease/jobease-admin/internal/domain"
	"github.com/jobease/jobease-admin/internal/report"
	"github.com/jobease/jobease-admin/internal/repository"
	"github.com/jobease/jobease-admin/pkg/logging"
)

const (
	candidateDepartmentList = "candidateDepartment"
	jobSampleSize           = 10
)

// JobSampler returns a bounded sample of jobs in one approval state
type JobSampler interface {
	SampleByApprovalStatus(ctx context.Context, status domain.ApprovalStatus, limit int) ([]domain.Job, error)
}

// Service seeds, repairs and inspects the dropdown_options collection
type Service struct {
	repo     repository.DropdownRepository
	catalog  *catalog.Catalog
	jobs     JobSampler
	exporter report.Exporter
	logger   *logging.Logger
}

// NewService creates a Service with direct dependencies (Wire-compatible)
func NewService(
	repo repository.DropdownRepository,
	cat *catalog.Catalog,
	jobs JobSampler,
	exporter report.Exporter,
	logger *logging.Logger,
) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("dropdown.Service: repository is required")
	}
	if cat == nil {
		return nil, fmt.Errorf("dropdown.Service: catalog is required")
	}
	if exporter == nil {
		exporter = report.Nop{}
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Service{repo: repo, catalog: cat, jobs: jobs, exporter: exporter, logger: logger}, nil
}

// Seed writes every list of a catalog set and returns the names written.
// The first failed write aborts the run; earlier writes stay committed.
func (s *Service) Seed(ctx context.Context, set string, opts repository.SaveOptions) ([]string, error) {
	lists, err := s.catalog.Set(set)
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(lists))
	for _, l := range lists {
		if err := s.repo.Save(ctx, l, opts); err != nil {
			return written, fmt.Errorf("seed %s: %w", l.Name, err)
		}
		written = append(written, l.Name)
		s.logger.Info("dropdown list written", "name", l.Name, "options", len(l.Options), "merge", opts.Merge)
	}

	return written, nil
}

// ListAll reads the whole collection and logs each document's option count
func (s *Service) ListAll(ctx context.Context) ([]domain.DropdownList, error) {
	lists, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dropdowns: %w", err)
	}

	s.logger.Info("dropdown documents found", "count", len(lists))
	for _, l := range lists {
		s.logger.Info("dropdown document", "name", l.Name, "options", len(l.Options))
	}
	return lists, nil
}

// VerifyEntry is the outcome of reading back one seeded list
type VerifyEntry struct {
	Name    string
	Found   bool
	Options int
}

// VerifyNames fetches each named document and logs its option count
func (s *Service) VerifyNames(ctx context.Context, names []string) ([]VerifyEntry, error) {
	entries := make([]VerifyEntry, 0, len(names))
	for _, name := range names {
		l, err := s.repo.Get(ctx, name)
		switch {
		case repository.IsNotFound(err):
			s.logger.Error("dropdown document not found", "name", name)
			entries = append(entries, VerifyEntry{Name: name})
		case err != nil:
			return entries, fmt.Errorf("verify %s: %w", name, err)
		default:
			s.logger.Info("dropdown document verified", "name", name, "options", len(l.Options))
			entries = append(entries, VerifyEntry{Name: name, Found: true, Options: len(l.Options)})
		}
	}
	return entries, nil
}

// FixResult summarizes fix-candidate-department
type FixResult struct {
	Action      string // created, updated or unchanged
	Missing     []string
	SampledJobs int
	Departments []string // distinct candidateDepartment values seen on sampled jobs
}

// FixCandidateDepartment makes candidateDepartment hold the full expected list
// and reports which departments approved jobs actually use
func (s *Service) FixCandidateDepartment(ctx context.Context) (FixResult, error) {
	expected, err := s.catalog.List(catalog.SetCandidateDepartment, candidateDepartmentList)
	if err != nil {
		return FixResult{}, err
	}

	var result FixResult

	current, err := s.repo.Get(ctx, candidateDepartmentList)
	switch {
	case repository.IsNotFound(err):
		s.logger.Info("candidateDepartment document missing, creating it")
		if err := s.repo.Save(ctx, expected, repository.SaveOptions{}); err != nil {
			return result, fmt.Errorf("create candidateDepartment: %w", err)
		}
		result.Action = "created"
		result.Missing = expected.Options
	case err != nil:
		return result, fmt.Errorf("read candidateDepartment: %w", err)
	default:
		result.Missing = current.Missing(expected.Options)
		if current.Options != nil && len(result.Missing) == 0 {
			s.logger.Info("candidateDepartment already complete", "options", len(current.Options))
			result.Action = "unchanged"
			break
		}

		s.logger.Info("candidateDepartment incomplete, updating", "missing", result.Missing, "array", current.Options != nil)
		if err := s.repo.UpdateOptions(ctx, candidateDepartmentList, expected.Options); err != nil {
			return result, fmt.Errorf("update candidateDepartment: %w", err)
		}
		result.Action = "updated"
	}

	if s.jobs == nil {
		return result, nil
	}

	jobs, err := s.jobs.SampleByApprovalStatus(ctx, domain.ApprovalApproved, jobSampleSize)
	if err != nil {
		return result, err
	}
	result.SampledJobs = len(jobs)

	seen := map[string]bool{}
	for _, j := range jobs {
		dept := strings.TrimSpace(j.CandidateDepartment)
		if dept == "" || dept == "null" {
			continue
		}
		s.logger.Info("job candidateDepartment", "job", j.Label(), "candidate_department", dept)
		if !seen[dept] {
			seen[dept] = true
			result.Departments = append(result.Departments, dept)
		}
	}
	sort.Strings(result.Departments)

	if len(result.Departments) == 0 {
		s.logger.Warn("no sampled approved job has candidateDepartment", "sampled", len(jobs))
	} else {
		s.logger.Info("candidateDepartment values in use", "values", result.Departments)
	}

	return result, nil
}

// InspectResult is the read-only inventory of dropdown_options
type InspectResult struct {
	Lists   []domain.DropdownList
	Missing []string // documents of the all set that do not exist
	Report  report.Result
}

// Inspect logs every dropdown document, lists expected documents that are
// absent and, when a report destination is configured, writes the inventory
func (s *Service) Inspect(ctx context.Context) (InspectResult, error) {
	lists, err := s.repo.List(ctx)
	if err != nil {
		return InspectResult{}, fmt.Errorf("list dropdowns: %w", err)
	}

	result := InspectResult{Lists: lists}
	s.logger.Info("dropdown documents found", "count", len(lists))

	present := make(map[string]bool, len(lists))
	for _, l := range lists {
		present[l.Name] = true
		s.logger.Info("dropdown document", "name", l.Name, "count", len(l.Options), "options", l.Options)
	}

	expected, err := s.catalog.Names(catalog.SetAll)
	if err != nil {
		return result, err
	}
	for _, name := range expected {
		if !present[name] {
			result.Missing = append(result.Missing, name)
		}
	}

	if len(result.Missing) > 0 {
		s.logger.Warn("expected dropdown documents missing", "missing", result.Missing)
	} else {
		s.logger.Info("all expected dropdown documents present")
	}

	if !s.exporter.Enabled() {
		return result, nil
	}

	table := report.Table{Header: []string{"document", "option_count", "options"}}
	for _, l := range lists {
		table.Rows = append(table.Rows, []any{l.Name, len(l.Options), strings.Join(l.Options, ", ")})
	}

	result.Report, err = s.exporter.Export(ctx, table, report.ModeReplace)
	if err != nil {
		return result, fmt.Errorf("export inventory: %w", err)
	}
	s.logger.Info("inventory exported", "destination", result.Report.Destination, "rows", result.Report.WrittenRows)

	return result, nil
}
