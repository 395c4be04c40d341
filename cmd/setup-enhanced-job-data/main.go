// Command setup-enhanced-job-data seeds job classification lists and one sample job.
package main

import (
	"os"

	"github.com/jobease/jobease-admin/internal/cli"
	"github.com/jobease/jobease-admin/internal/commands"
)

func main() {
	os.Exit(cli.Run("setup-enhanced-job-data", commands.SetupEnhancedJobData))
}
