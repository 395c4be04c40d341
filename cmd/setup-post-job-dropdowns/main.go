// Command setup-post-job-dropdowns merges the post-job form lists.
package main

import (
	"os"

	"github.com/jobease/jobease-admin/internal/cli"
	"github.com/jobease/jobease-admin/internal/commands"
)

func main() {
	os.Exit(cli.Run("setup-post-job-dropdowns", commands.SetupPostJobDropdowns))
}
