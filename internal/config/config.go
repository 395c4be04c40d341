package config

import (
	"fmt"
	"net/mail"
	"os"
	"strings"
	"time"
)

const (
	defaultTimeout   = 10 * time.Minute
	defaultAdminRole = "super-admin"
	defaultReportTab = "Report"
)

// Config contains runtime settings shared by every admin command
type Config struct {
	LogLevel       string
	LogFormat      string // json or console
	CommandTimeout time.Duration

	Firestore struct {
		ProjectID       string // empty means detect from credentials
		DatabaseID      string
		CredentialsPath string
		EmulatorHost    string
	}

	// Admin is only read by create-admin, see RequireAdmin
	Admin struct {
		UID   string
		Email string
		Role  string
	}

	// Report is optional; an empty SpreadsheetID disables Sheets export
	Report struct {
		CredentialsPath string
		SpreadsheetID   string
		Tab             string
	}
}

// Load populates config from environment variables
func Load() (Config, error) {
	cfg := Config{
		LogLevel:       "info",
		LogFormat:      "json",
		CommandTimeout: defaultTimeout,
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}

	var problems []string

	if v := os.Getenv("COMMAND_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			problems = append(problems, fmt.Sprintf("COMMAND_TIMEOUT: invalid duration %q", v))
		} else {
			cfg.CommandTimeout = d
		}
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		problems = append(problems, fmt.Sprintf("LOG_FORMAT: must be json or console, got %q", cfg.LogFormat))
	}

	cfg.Firestore.ProjectID = os.Getenv("FIRESTORE_PROJECT_ID")
	if cfg.Firestore.ProjectID == "" {
		cfg.Firestore.ProjectID = os.Getenv("GOOGLE_CLOUD_PROJECT")
	}
	cfg.Firestore.DatabaseID = os.Getenv("FIRESTORE_DATABASE_ID")
	cfg.Firestore.CredentialsPath = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	cfg.Firestore.EmulatorHost = os.Getenv("FIRESTORE_EMULATOR_HOST")

	// The emulator cannot detect a project from credentials
	if cfg.Firestore.EmulatorHost != "" && cfg.Firestore.ProjectID == "" {
		problems = append(problems, "FIRESTORE_PROJECT_ID (required with FIRESTORE_EMULATOR_HOST)")
	}

	cfg.Admin.UID = strings.TrimSpace(os.Getenv("ADMIN_UID"))
	cfg.Admin.Email = strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
	cfg.Admin.Role = defaultAdminRole
	if v := os.Getenv("ADMIN_ROLE"); v != "" {
		cfg.Admin.Role = v
	}

	cfg.Report.CredentialsPath = os.Getenv("REPORT_SHEETS_CREDENTIALS_PATH")
	cfg.Report.SpreadsheetID = os.Getenv("REPORT_SPREADSHEET_ID")
	cfg.Report.Tab = defaultReportTab
	if v := os.Getenv("REPORT_SHEET_TAB"); v != "" {
		cfg.Report.Tab = v
	}

	if cfg.Report.SpreadsheetID != "" && cfg.Report.CredentialsPath == "" {
		problems = append(problems, "REPORT_SHEETS_CREDENTIALS_PATH (required with REPORT_SPREADSHEET_ID)")
	}

	if len(problems) > 0 {
		return cfg, fmt.Errorf("invalid environment: %s", strings.Join(problems, ", "))
	}

	return cfg, nil
}

// ReportEnabled reports whether a Sheets report destination is configured
func (c Config) ReportEnabled() bool {
	return c.Report.SpreadsheetID != ""
}

// RequireAdmin validates the settings create-admin depends on
func (c Config) RequireAdmin() error {
	var missingVars []string

	if c.Admin.UID == "" {
		missingVars = append(missingVars, "ADMIN_UID")
	}
	if c.Admin.Email == "" {
		missingVars = append(missingVars, "ADMIN_EMAIL")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	if strings.Contains(c.Admin.UID, "/") {
		return fmt.Errorf("ADMIN_UID must not contain '/': %q", c.Admin.UID)
	}

	addr, err := mail.ParseAddress(c.Admin.Email)
	if err != nil {
		return fmt.Errorf("ADMIN_EMAIL is not a valid address: %w", err)
	}
	if addr.Address != c.Admin.Email {
		return fmt.Errorf("ADMIN_EMAIL must be a bare address, got %q", c.Admin.Email)
	}

	return nil
}
