// Command cleanup-applications deletes the subcollections of migrated candidates.
// Run it only after migrate-applications has been verified.
package main

import (
	"os"

	"github.com/jobease/jobease-admin/internal/cli"
	"github.com/jobease/jobease-admin/internal/commands"
)

func main() {
	os.Exit(cli.Run("cleanup-applications", commands.CleanupApplications))
}
