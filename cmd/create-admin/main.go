// Command create-admin promotes ADMIN_UID to administrator.
package main

import (
	"os"

	"github.com/jobease/jobease-admin/internal/cli"
	"github.com/jobease/jobease-admin/internal/commands"
	"github.com/jobease/jobease-admin/internal/config"
)

func main() {
	os.Exit(cli.Run("create-admin", commands.CreateAdmin, cli.WithValidate(config.Config.RequireAdmin)))
}
