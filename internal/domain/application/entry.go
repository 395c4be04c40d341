package application

import (
	"time"

	"github.com/jobease/jobease-admin/internal/domain"
	"github.com/jobease/jobease-admin/internal/storage/fields"
)

const (
	notAvailable             = "N/A"
	defaultStatus            = "pending"
	defaultApplicationSource = "mobile_app"
	defaultDeviceInfo        = "flutter_mobile"
	initialHistoryNote       = "Initial application"
)

// BuildEntry flattens one application document, falling back through the
// field names older app versions used
func BuildEntry(doc domain.Document, now time.Time) domain.ApplicationEntry {
	f := doc.Fields

	applied := now
	if t := fields.Time(f, "appliedDate"); t != nil {
		applied = *t
	} else if t := fields.Time(f, "createdAt"); t != nil {
		applied = *t
	}

	status := firstOf(f, defaultStatus, "status")

	entry := domain.ApplicationEntry{
		ApplicationID:      doc.ID,
		JobID:              fields.String(f, "jobId"),
		JobTitle:           firstOf(f, notAvailable, "jobTitle", "Job Title"),
		CompanyName:        firstOf(f, notAvailable, "companyName", "Company Name"),
		Location:           firstOf(f, notAvailable, "location", "jobLocation"),
		JobCategory:        firstOf(f, notAvailable, "jobCategory", "Job Category"),
		IndustryType:       firstOf(f, notAvailable, "industryType"),
		AppliedDate:        applied,
		Status:             status,
		SalaryRange:        firstOf(f, notAvailable, "salaryRange", "Salary Range"),
		ExperienceRequired: firstOf(f, notAvailable, "experienceRequired", "Experience Required"),
		ApplicationSource:  firstOf(f, defaultApplicationSource, "applicationSource"),
		DeviceInfo:         firstOf(f, defaultDeviceInfo, "deviceInfo"),
	}

	if history, ok := f["statusHistory"].([]any); ok {
		entry.StatusHistory = history
	} else {
		entry.StatusHistory = []any{map[string]any{
			"status":    status,
			"timestamp": applied,
			"note":      initialHistoryNote,
		}}
	}

	return entry
}

// firstOf returns the first key holding a truthy value, formatted as text
func firstOf(f map[string]any, fallback string, keys ...string) string {
	for _, k := range keys {
		if fields.Truthy(f[k]) {
			return fields.String(f, k)
		}
	}
	return fallback
}
