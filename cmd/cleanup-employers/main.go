// Command cleanup-employers normalizes employer approval fields.
package main

import (
	"os"

	"github.com/jobease/jobease-admin/internal/cli"
	"github.com/jobease/jobease-admin/internal/commands"
)

func main() {
	os.Exit(cli.Run("cleanup-employers", commands.CleanupEmployers))
}
