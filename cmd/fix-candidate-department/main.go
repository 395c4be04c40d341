package main

import (
	"os"

	"github.com/jobease/jobease-admin/internal/cli"
	"github.com/jobease/jobease-admin/internal/commands"
)

func main() {
	os.Exit(cli.Run("fix-candidate-department", commands.FixCandidateDepartment))
}
