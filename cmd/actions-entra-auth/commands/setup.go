package commands

import (
	"github.com/spf13/cobra"

	"github.com/paul-mccormack/actions-entra-auth/cmd/actions-entra-auth/handlers"
)

// Setup returns the command that runs the interactive federation setup.
//
// Flags:
//
//	--file, -f: Answers file (YAML) for scripted or non-interactive runs
//	--accessible: Render prompts in accessible mode for screen readers
func Setup() *cobra.Command {
	var (
		answersPath string
		accessible  bool
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Federate a GitHub repository branch with Entra ID",
		Long: `Federate a GitHub repository branch with Microsoft Entra ID.

This command walks you through the whole flow:

  - GitHub organization, repository, and branch
  - Confirmation of the exact OIDC subject that will be trusted
  - Role assignment scope (management group, subscription, or resource group)
  - Service principal display name and Azure RBAC role

It then registers the application, creates the service principal, assigns
the role, and adds the federated credential, reusing your current Azure CLI
login. When everything succeeds it prints the secrets your workflow needs:
AZURE_CLIENT_ID, AZURE_TENANT_ID, and AZURE_SUBSCRIPTION_ID.

Use --file to pre-fill answers from a YAML file; prompts only appear for
values the file leaves out.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Setup(cmd.Context(), answersPath, accessible)
		},
	}

	cmd.Flags().StringVarP(&answersPath, "file", "f", "", "Answers file (YAML) for non-interactive runs")
	cmd.Flags().BoolVar(&accessible, "accessible", false, "Render prompts in accessible mode")

	return cmd
}
