package domain

import (
	"strings"
	"time"
)

// Collection names owned by the mobile application
const (
	CollectionJobs      = "jobs"
	CollectionEmployers = "employers"
	CollectionAdmins    = "admins"
	CollectionDropdowns = "dropdown_options"
	CollectionCandidate = "candidates"

	SubcollectionApplications = "applications"
	SubcollectionAnalytics    = "analytics"
)

// ApprovalStatus is the moderation state of an employer or job
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Valid reports whether s is one of the three moderation states
func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// Document is a raw snapshot for collections whose shape varies across app versions
type Document struct {
	ID     string
	Fields map[string]any
}

// Job is the subset of a job posting the admin commands read
type Job struct {
	ID                  string
	Title               string
	ApprovalStatus      string
	HasApprovedAt       bool
	PostedDate          *time.Time
	CandidateDepartment string
}

// Label is the human-friendly name used in logs
func (j Job) Label() string {
	if j.Title != "" {
		return j.Title
	}
	return j.ID
}

// ApprovedAtUpdate sets approvedAt on a job; nil ApprovedAt means server time
type ApprovedAtUpdate struct {
	JobID      string
	ApprovedAt *time.Time
}

// Employer captures field presence, which the cleanups key on
type Employer struct {
	ID                string
	CompanyName       string
	ApprovalStatus    string
	HasApprovalStatus bool
	HasIsApproved     bool
	HasReason         bool
}

// Label is the human-friendly name used in logs
func (e Employer) Label() string {
	if e.CompanyName != "" {
		return e.CompanyName
	}
	return e.ID
}

// EmployerPatch describes field-level changes to one employer document
type EmployerPatch struct {
	EmployerID       string
	DeleteIsApproved bool
	AddEmptyReason   bool
	ApprovalStatus   ApprovalStatus // empty leaves the field untouched
	// ResetApproval writes isApproved=false, approvedAt=null, approvedBy=null
	ResetApproval bool
}

// Empty reports whether the patch would change nothing
func (p EmployerPatch) Empty() bool {
	return !p.DeleteIsApproved && !p.AddEmptyReason && p.ApprovalStatus == "" && !p.ResetApproval
}

// Admin is an entry of the admins collection, keyed by auth UID
type Admin struct {
	UID       string
	Email     string
	Role      string
	CreatedBy string
}

// DropdownList is one document of dropdown_options
type DropdownList struct {
	Name    string
	Options []string // nil when the stored value is missing or not an array
}

// Contains reports whether option is present, compared exactly
func (d DropdownList) Contains(option string) bool {
	for _, o := range d.Options {
		if o == option {
			return true
		}
	}
	return false
}

// Missing returns the expected options absent from d, in expected order
func (d DropdownList) Missing(expected []string) []string {
	var missing []string
	for _, e := range expected {
		if !d.Contains(e) {
			missing = append(missing, e)
		}
	}
	return missing
}

// Candidate is the subset of a candidate document the migration reads
type Candidate struct {
	ID                 string
	MigrationCompleted bool
}

// ApplicationEntry is one application as stored in the candidate document
type ApplicationEntry struct {
	ApplicationID      string
	JobID              string
	JobTitle           string
	CompanyName        string
	Location           string
	JobCategory        string
	IndustryType       string
	AppliedDate        time.Time
	Status             string
	SalaryRange        string
	ExperienceRequired string
	ApplicationSource  string
	DeviceInfo         string
	// StatusHistory is carried over verbatim when the legacy document had one
	StatusHistory []any
}

// StatusCounts tallies the three tracked application states
type StatusCounts struct {
	Pending  int
	Accepted int
	Rejected int
}

// ApplicationStats are the aggregate analytics derived from a candidate's applications
type ApplicationStats struct {
	TotalApplications      int
	MonthlyApplications    map[string]int
	JobCategoryPreferences map[string]int
	LocationPreferences    map[string]int
	IndustryPreferences    map[string]int
	StatusCounts           StatusCounts
	FirstApplicationDate   *time.Time
	LastApplicationDate    *time.Time
}

// NewApplicationStats returns zeroed stats with initialized maps
func NewApplicationStats() ApplicationStats {
	return ApplicationStats{
		MonthlyApplications:    map[string]int{},
		JobCategoryPreferences: map[string]int{},
		LocationPreferences:    map[string]int{},
		IndustryPreferences:    map[string]int{},
	}
}

// ApplicationSummary is merged into the candidate document by the migration
type ApplicationSummary struct {
	Applications []ApplicationEntry
	Stats        ApplicationStats
	MigratedAt   time.Time
}

// NormalizeStatus lower-cases and trims a free-form status value
func NormalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
