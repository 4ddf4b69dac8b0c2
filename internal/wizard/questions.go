package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/paul-mccormack/actions-entra-auth/internal/azure"
	"github.com/paul-mccormack/actions-entra-auth/internal/github"
	"github.com/paul-mccormack/actions-entra-auth/internal/provision"
)

// newForm builds a huh form honoring the accessible-rendering setting.
func newForm(ans *Answers, groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithAccessible(ans.Accessible)
}

// runIdentityGroup prompts for the GitHub repository coordinates.
func runIdentityGroup(ctx context.Context, ans *Answers) error {
	return newForm(ans,
		huh.NewGroup(
			huh.NewInput().
				Title("GitHub Organization").
				Description("Organization or user that owns the repository").
				Placeholder("my-org").
				Value(&ans.Owner).
				Validate(github.ValidateOwner),
			huh.NewInput().
				Title("Repository").
				Description("Repository the workflow runs from").
				Placeholder("my-repo").
				Value(&ans.Repo).
				Validate(github.ValidateRepo),
			huh.NewInput().
				Title("Branch").
				Description("Branch allowed to request tokens").
				Placeholder("main").
				Value(&ans.Branch).
				Validate(github.ValidateBranch),
		).Title("GitHub Identity"),
	).RunWithContext(ctx)
}

// runSubjectConfirm echoes the composed subject back for explicit approval.
func runSubjectConfirm(ctx context.Context, ans *Answers, subject github.Subject) (bool, error) {
	confirmed := false

	err := newForm(ans,
		huh.NewGroup(
			huh.NewConfirm().
				Title("Create a federated credential for this subject?").
				Description(subject.String()).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		).Title("Confirm Subject"),
	).RunWithContext(ctx)

	return confirmed, err
}

// runScopeKindGroup prompts for the role-assignment scope level.
func runScopeKindGroup(ctx context.Context, ans *Answers, kind *provision.ScopeKind) error {
	*kind = provision.ScopeSubscription // default

	return newForm(ans,
		huh.NewGroup(
			huh.NewSelect[provision.ScopeKind]().
				Title("Role Assignment Scope").
				Description("Level the role applies at").
				Options(ScopeKindOptions...).
				Value(kind),
		).Title("Scope"),
	).RunWithContext(ctx)
}

// runDisplayNameGroup prompts for the service principal display name.
func runDisplayNameGroup(ctx context.Context, ans *Answers) error {
	placeholder := "github-actions-deploy"
	if ans.Repo != "" {
		placeholder = ans.Repo + "-deploy"
	}

	return newForm(ans,
		huh.NewGroup(
			huh.NewInput().
				Title("Service Principal Name").
				Description("Display name for the app registration").
				Placeholder(placeholder).
				Value(&ans.DisplayName).
				Validate(validateDisplayName),
		).Title("Service Principal"),
	).RunWithContext(ctx)
}

// runRoleGroup prompts for the role, with a free-text path for roles not in
// the curated list.
func runRoleGroup(ctx context.Context, ans *Answers) error {
	choice := BuiltinRoles[0].Value

	err := newForm(ans,
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Role").
				Description("Role to assign at the chosen scope").
				Options(RolesToOptions()...).
				Value(&choice),
		).Title("Role"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	if choice != RoleOther {
		ans.Role = choice
		return nil
	}

	return newForm(ans,
		huh.NewGroup(
			huh.NewInput().
				Title("Role Name").
				Description("Built-in or custom role, entered exactly as named").
				Placeholder("Storage Blob Data Contributor").
				Value(&ans.Role).
				Validate(validateRoleName),
		).Title("Custom Role"),
	).RunWithContext(ctx)
}

// promptResourceGroupName asks for a resource group name. An empty answer
// cancels the enclosing loop.
func promptResourceGroupName(ctx context.Context, ans *Answers, sub azure.Subscription, notFound string) (string, error) {
	var name string

	desc := fmt.Sprintf("Resource group in subscription %q. Leave empty to cancel.", sub.Name)
	if notFound != "" {
		desc = fmt.Sprintf("%q was not found in subscription %q. Try again or leave empty to cancel.", notFound, sub.Name)
	}

	err := newForm(ans,
		huh.NewGroup(
			huh.NewInput().
				Title("Resource Group").
				Description(desc).
				Placeholder("rg-webapps").
				Value(&name),
		).Title("Scope"),
	).RunWithContext(ctx)

	return strings.TrimSpace(name), err
}

// validateDisplayName validates the service principal display name.
func validateDisplayName(s string) error {
	if s == "" {
		return errDisplayNameRequired
	}
	if len(s) > 120 {
		return errDisplayNameTooLong
	}
	return nil
}

// validateRoleName validates a free-text role name.
func validateRoleName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errRoleRequired
	}
	return nil
}
