// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the actions-entra-auth CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actions-entra-auth",
		Short: "Federate GitHub Actions with Microsoft Entra ID",
	}

	cmd.AddCommand(Setup())
	cmd.AddCommand(Check())
	cmd.AddCommand(Version())

	return cmd
}
