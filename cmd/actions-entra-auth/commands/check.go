package commands

import (
	"github.com/spf13/cobra"

	"github.com/paul-mccormack/actions-entra-auth/cmd/actions-entra-auth/handlers"
)

// Check returns the command that verifies the local environment.
func Check() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify local tools and the Azure CLI session",
		Long: `Verify that the local environment can run the setup.

Checks that the Azure CLI is installed, that a signed-in session exists,
and which tenants that session can see. Nothing is created.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Check(cmd.Context())
		},
	}
}
