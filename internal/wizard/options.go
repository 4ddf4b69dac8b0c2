package wizard

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/paul-mccormack/actions-entra-auth/internal/azure"
	"github.com/paul-mccormack/actions-entra-auth/internal/provision"
)

// RoleOption describes a built-in role offered in the role menu.
type RoleOption struct {
	Value       string
	Label       string
	Description string
}

// RoleOther selects free-text role entry in the role menu.
const RoleOther = "other"

// BuiltinRoles are the curated roles offered before free-text entry.
var BuiltinRoles = []RoleOption{
	{Value: "Website Contributor", Label: "Website Contributor", Description: "Manage web apps, but not app service plans"},
	{Value: "Contributor", Label: "Contributor", Description: "Manage all resources, cannot grant access"},
	{Value: "Reader", Label: "Reader", Description: "View all resources"},
	{Value: "Owner", Label: "Owner", Description: "Manage all resources and grant access"},
	{Value: "User Access Administrator", Label: "User Access Administrator", Description: "Manage user access to resources"},
}

// RolesToOptions converts the built-in roles plus the free-text escape hatch
// to huh options.
func RolesToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(BuiltinRoles)+1)
	for _, r := range BuiltinRoles {
		opts = append(opts, huh.NewOption(r.Label+" - "+r.Description, r.Value))
	}
	opts = append(opts, huh.NewOption("Other - type a role name", RoleOther))
	return opts
}

// ScopeKindOptions lists the three levels a role assignment can target.
var ScopeKindOptions = []huh.Option[provision.ScopeKind]{
	huh.NewOption("Management group - all subscriptions under a group", provision.ScopeManagementGroup),
	huh.NewOption("Subscription - one subscription", provision.ScopeSubscription),
	huh.NewOption("Resource group - one resource group", provision.ScopeResourceGroup),
}

// ManagementGroupsToOptions converts listed management groups to indexed
// select options.
func ManagementGroupsToOptions(groups []azure.ManagementGroup) []huh.Option[int] {
	opts := make([]huh.Option[int], len(groups))
	for i, g := range groups {
		label := g.DisplayName
		if label == "" {
			label = g.Name
		}
		opts[i] = huh.NewOption(fmt.Sprintf("%s (%s)", label, g.Name), i)
	}
	return opts
}

// SubscriptionsToOptions converts listed subscriptions to indexed select
// options.
func SubscriptionsToOptions(subs []azure.Subscription) []huh.Option[int] {
	opts := make([]huh.Option[int], len(subs))
	for i, s := range subs {
		opts[i] = huh.NewOption(fmt.Sprintf("%s (%s)", s.Name, s.ID), i)
	}
	return opts
}
