// Command migrate-applications copies each candidate's applications subcollection
// into the candidate document together with aggregate stats.
package main

import (
	"os"

	"github.com/jobease/jobease-admin/internal/cli"
	"github.com/jobease/jobease-admin/internal/commands"
)

func main() {
	os.Exit(cli.Run("migrate-applications", commands.MigrateApplications))
}
