// Package main is the entry point for the actions-entra-auth CLI.
//
// actions-entra-auth wires a GitHub Actions workflow to Microsoft Entra ID
// with OpenID Connect federation: it registers an application, creates a
// service principal, assigns an Azure RBAC role at a chosen scope, and adds
// a federated credential trusting one repository branch. No client secret is
// ever created or stored.
//
// Commands: setup, check, version.
//
// For detailed usage information, run:
//
//	actions-entra-auth --help
package main

import (
	"fmt"
	"os"

	"github.com/paul-mccormack/actions-entra-auth/cmd/actions-entra-auth/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
