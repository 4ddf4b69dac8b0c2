package wizard

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/paul-mccormack/actions-entra-auth/internal/azure"
	"github.com/paul-mccormack/actions-entra-auth/internal/github"
	"github.com/paul-mccormack/actions-entra-auth/internal/provision"
)

// RunIdentity collects and confirms the GitHub repository coordinates. It
// returns ErrDeclined when the operator rejects the composed subject. No
// cloud call happens before this returns.
func RunIdentity(ctx context.Context, ans *Answers) (github.Subject, error) {
	if ans.Owner == "" || ans.Repo == "" || ans.Branch == "" {
		if err := runIdentityGroup(ctx, ans); err != nil {
			return github.Subject{}, fmt.Errorf("github identity: %w", err)
		}
	}

	subject := github.Subject{Owner: ans.Owner, Repo: ans.Repo, Branch: ans.Branch}
	if ans.AutoApprove {
		return subject, nil
	}

	confirmed, err := runSubjectConfirm(ctx, ans, subject)
	if err != nil {
		return github.Subject{}, fmt.Errorf("confirm subject: %w", err)
	}
	if !confirmed {
		return github.Subject{}, ErrDeclined
	}
	return subject, nil
}

// RunScope resolves the role-assignment scope against live listings. Listed
// choices are presented as select menus; a resource group name is typed and
// verified to exist, re-prompting until it does or the operator cancels.
func RunScope(ctx context.Context, scopes azure.ScopeClient, ans *Answers) (provision.Scope, error) {
	kind := provision.ScopeKind(ans.Scope)
	if ans.Scope == "" {
		if err := runScopeKindGroup(ctx, ans, &kind); err != nil {
			return provision.Scope{}, fmt.Errorf("scope: %w", err)
		}
	}

	switch kind {
	case provision.ScopeManagementGroup:
		return resolveManagementGroup(ctx, scopes, ans)
	case provision.ScopeSubscription:
		sub, err := resolveSubscription(ctx, scopes, ans)
		if err != nil {
			return provision.Scope{}, err
		}
		return provision.SubscriptionScope(sub), nil
	case provision.ScopeResourceGroup:
		sub, err := resolveSubscription(ctx, scopes, ans)
		if err != nil {
			return provision.Scope{}, err
		}
		name, err := resolveResourceGroupName(ctx, scopes, sub, ans)
		if err != nil {
			return provision.Scope{}, err
		}
		return provision.ResourceGroupScope(sub, name), nil
	default:
		return provision.Scope{}, fmt.Errorf("unknown scope kind %q", ans.Scope)
	}
}

// RunPrincipal collects the service principal display name and role.
func RunPrincipal(ctx context.Context, ans *Answers) error {
	if ans.DisplayName == "" {
		if err := runDisplayNameGroup(ctx, ans); err != nil {
			return fmt.Errorf("service principal name: %w", err)
		}
	}
	if ans.Role == "" {
		if err := runRoleGroup(ctx, ans); err != nil {
			return fmt.Errorf("role: %w", err)
		}
	}
	return nil
}

// resolveManagementGroup picks a management group from the live listing.
func resolveManagementGroup(ctx context.Context, scopes azure.ScopeClient, ans *Answers) (provision.Scope, error) {
	groups, err := scopes.ListManagementGroups(ctx)
	if err != nil {
		return provision.Scope{}, fmt.Errorf("list management groups: %w", err)
	}
	if len(groups) == 0 {
		return provision.Scope{}, errNoManagementGroups
	}

	if ans.ManagementGroup != "" {
		for _, g := range groups {
			if g.Name == ans.ManagementGroup {
				return provision.ManagementGroupScope(g), nil
			}
		}
		return provision.Scope{}, fmt.Errorf("management group %q not visible to this login", ans.ManagementGroup)
	}

	if len(groups) == 1 {
		return provision.ManagementGroupScope(groups[0]), nil
	}

	idx := 0
	err = newForm(ans,
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Management Group").
				Description("Group the role assignment applies to").
				Options(ManagementGroupsToOptions(groups)...).
				Value(&idx),
		).Title("Scope"),
	).RunWithContext(ctx)
	if err != nil {
		return provision.Scope{}, fmt.Errorf("select management group: %w", err)
	}
	return provision.ManagementGroupScope(groups[idx]), nil
}

// resolveSubscription picks a subscription from the live listing. A single
// visible subscription is selected without a prompt.
func resolveSubscription(ctx context.Context, scopes azure.ScopeClient, ans *Answers) (azure.Subscription, error) {
	subs, err := scopes.ListSubscriptions(ctx)
	if err != nil {
		return azure.Subscription{}, fmt.Errorf("list subscriptions: %w", err)
	}
	if len(subs) == 0 {
		return azure.Subscription{}, errNoSubscriptions
	}

	if ans.SubscriptionID != "" {
		for _, s := range subs {
			if s.ID == ans.SubscriptionID {
				return s, nil
			}
		}
		return azure.Subscription{}, fmt.Errorf("subscription %q not visible to this login", ans.SubscriptionID)
	}

	if len(subs) == 1 {
		return subs[0], nil
	}

	idx := 0
	err = newForm(ans,
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Subscription").
				Description("Subscription the role assignment applies to").
				Options(SubscriptionsToOptions(subs)...).
				Value(&idx),
		).Title("Scope"),
	).RunWithContext(ctx)
	if err != nil {
		return azure.Subscription{}, fmt.Errorf("select subscription: %w", err)
	}
	return subs[idx], nil
}

// resolveResourceGroupName returns an existing resource group name. A
// pre-seeded name is checked once and must exist; otherwise the prompt loop
// runs until a group is found or the operator cancels.
func resolveResourceGroupName(ctx context.Context, scopes azure.ScopeClient, sub azure.Subscription, ans *Answers) (string, error) {
	if ans.ResourceGroup != "" {
		exists, err := scopes.ResourceGroupExists(ctx, sub.ID, ans.ResourceGroup)
		if err != nil {
			return "", fmt.Errorf("check resource group: %w", err)
		}
		if !exists {
			return "", fmt.Errorf("resource group %q not found in subscription %q", ans.ResourceGroup, sub.Name)
		}
		return ans.ResourceGroup, nil
	}

	return promptResourceGroupLoop(ctx, scopes, sub, func(ctx context.Context, notFound string) (string, error) {
		return promptResourceGroupName(ctx, ans, sub, notFound)
	})
}

// promptResourceGroupLoop re-prompts until the named group exists. A blank
// answer cancels with ErrCanceled.
func promptResourceGroupLoop(ctx context.Context, scopes azure.ScopeClient, sub azure.Subscription, prompt func(context.Context, string) (string, error)) (string, error) {
	notFound := ""
	for {
		name, err := prompt(ctx, notFound)
		if err != nil {
			return "", err
		}
		if name == "" {
			return "", ErrCanceled
		}

		exists, err := scopes.ResourceGroupExists(ctx, sub.ID, name)
		if err != nil {
			return "", fmt.Errorf("check resource group: %w", err)
		}
		if exists {
			return name, nil
		}
		notFound = name
	}
}
