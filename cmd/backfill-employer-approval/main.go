// Command backfill-employer-approval gives legacy employers a pending approval state.
package main

import (
	"os"

	"github.com/jobease/jobease-admin/internal/cli"
	"github.com/jobease/jobease-admin/internal/commands"
)

func main() {
	os.Exit(cli.Run("backfill-employer-approval", commands.BackfillEmployerApproval))
}
