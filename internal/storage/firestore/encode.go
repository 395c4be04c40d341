package firestore

import (
	"sort"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/jobease/jobease-admin/internal/domain"
)

func encodeApplications(entries []domain.ApplicationEntry) []any {
	out := make([]any, 0, len(entries))
	for _, e := range entries {
		var jobID any
		if e.JobID != "" {
			jobID = e.JobID
		}

		out = append(out, map[string]any{
			"applicationId":      e.ApplicationID,
			"jobId":              jobID,
			"jobTitle":           e.JobTitle,
			"companyName":        e.CompanyName,
			"location":           e.Location,
			"jobCategory":        e.JobCategory,
			"industryType":       e.IndustryType,
			"appliedDate":        e.AppliedDate,
			"status":             e.Status,
			"salaryRange":        e.SalaryRange,
			"experienceRequired": e.ExperienceRequired,
			"applicationSource":  e.ApplicationSource,
			"deviceInfo":         e.DeviceInfo,
			"statusHistory":      e.StatusHistory,
		})
	}
	return out
}

func encodeStats(s domain.ApplicationStats) map[string]any {
	return map[string]any{
		"totalApplications":      s.TotalApplications,
		"monthlyApplications":    encodeCounts(s.MonthlyApplications),
		"jobCategoryPreferences": encodeCounts(s.JobCategoryPreferences),
		"locationPreferences":    encodeCounts(s.LocationPreferences),
		"industryPreferences":    encodeCounts(s.IndustryPreferences),
		"statusCounts": map[string]any{
			"pending":  s.StatusCounts.Pending,
			"accepted": s.StatusCounts.Accepted,
			"rejected": s.StatusCounts.Rejected,
		},
		"firstApplicationDate": optionalTime(s.FirstApplicationDate),
		"lastApplicationDate":  optionalTime(s.LastApplicationDate),
	}
}

// encodeCounts widens to map[string]any so mergePaths can address each key
func encodeCounts(counts map[string]int) map[string]any {
	out := make(map[string]any, len(counts))
	for k, v := range counts {
		out[k] = v
	}
	return out
}

func optionalTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

// mergePaths lists the leaf field paths of data for a merge Set. Unlike
// MergeAll, an empty map is a leaf, so it is written as {} instead of skipped.
func mergePaths(data map[string]any, prefix firestore.FieldPath) []firestore.FieldPath {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var paths []firestore.FieldPath
	for _, k := range keys {
		path := append(append(firestore.FieldPath{}, prefix...), k)
		if m, ok := data[k].(map[string]any); ok && len(m) > 0 {
			paths = append(paths, mergePaths(m, path)...)
			continue
		}
		paths = append(paths, path)
	}
	return paths
}
