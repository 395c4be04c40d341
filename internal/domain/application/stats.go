package application

import (
	"fmt"
	"sort"

	"github.com/jobease/jobease-admin/internal/domain"
)

// MonthKey buckets a date as YYYY_MM in UTC
func MonthKey(e domain.ApplicationEntry) string {
	t := e.AppliedDate.UTC()
	return fmt.Sprintf("%d_%02d", t.Year(), int(t.Month()))
}

// Aggregate computes the analytics stored next to the flattened applications
func Aggregate(entries []domain.ApplicationEntry) domain.ApplicationStats {
	stats := domain.NewApplicationStats()

	for _, e := range entries {
		stats.TotalApplications++
		stats.MonthlyApplications[MonthKey(e)]++
		stats.JobCategoryPreferences[e.JobCategory]++
		stats.LocationPreferences[e.Location]++

		if e.IndustryType != notAvailable {
			stats.IndustryPreferences[e.IndustryType]++
		}

		switch domain.NormalizeStatus(e.Status) {
		case "pending":
			stats.StatusCounts.Pending++
		case "accepted":
			stats.StatusCounts.Accepted++
		case "rejected":
			stats.StatusCounts.Rejected++
		}

		applied := e.AppliedDate
		if stats.FirstApplicationDate == nil || applied.Before(*stats.FirstApplicationDate) {
			stats.FirstApplicationDate = &applied
		}
		if stats.LastApplicationDate == nil || applied.After(*stats.LastApplicationDate) {
			stats.LastApplicationDate = &applied
		}
	}

	return stats
}

// SortNewestFirst orders entries by applied date, newest first; ties keep input order
func SortNewestFirst(entries []domain.ApplicationEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AppliedDate.After(entries[j].AppliedDate)
	})
}
