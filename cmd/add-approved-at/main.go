// Command add-approved-at sets approvedAt on approved jobs that lack it.
package main

import (
	"os"

	"github.com/jobease/jobease-admin/internal/cli"
	"github.com/jobease/jobease-admin/internal/commands"
)

func main() {
	os.Exit(cli.Run("add-approved-at", commands.AddApprovedAt))
}
