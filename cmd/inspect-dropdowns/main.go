// Command inspect-dropdowns prints the dropdown inventory without writing.
package main

import (
	"os"

	"github.com/jobease/jobease-admin/internal/cli"
	"github.com/jobease/jobease-admin/internal/commands"
)

func main() {
	os.Exit(cli.Run("inspect-dropdowns", commands.InspectDropdowns))
}
