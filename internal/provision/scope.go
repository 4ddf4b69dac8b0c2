// Package provision resolves role-assignment scopes and runs the ordered
// provisioning steps that link a GitHub repository to an Azure identity.
package provision

import (
	"fmt"

	"github.com/paul-mccormack/actions-entra-auth/internal/azure"
)

// ScopeKind selects the level a role assignment applies at.
type ScopeKind string

const (
	// ScopeManagementGroup grants across every subscription under a group.
	ScopeManagementGroup ScopeKind = "management-group"
	// ScopeSubscription grants across one subscription.
	ScopeSubscription ScopeKind = "subscription"
	// ScopeResourceGroup grants within one resource group.
	ScopeResourceGroup ScopeKind = "resource-group"
)

// Scope is a resolved role-assignment target. ID is the full ARM scope path
// and is usable directly in an assignment call.
type Scope struct {
	Kind ScopeKind
	ID   string
	// SubscriptionID is empty for management group scopes.
	SubscriptionID string
	// TenantID is the tenant the scope lives in, as reported by the listing.
	TenantID string
	// Display names the scope for confirmation and diagnostic output.
	Display string
}

// ManagementGroupScope builds the scope for a management group.
func ManagementGroupScope(mg azure.ManagementGroup) Scope {
	display := mg.DisplayName
	if display == "" {
		display = mg.Name
	}
	return Scope{
		Kind:     ScopeManagementGroup,
		ID:       fmt.Sprintf("/providers/Microsoft.Management/managementGroups/%s", mg.Name),
		TenantID: mg.TenantID,
		Display:  fmt.Sprintf("management group %q", display),
	}
}

// SubscriptionScope builds the scope for a subscription.
func SubscriptionScope(sub azure.Subscription) Scope {
	return Scope{
		Kind:           ScopeSubscription,
		ID:             fmt.Sprintf("/subscriptions/%s", sub.ID),
		SubscriptionID: sub.ID,
		TenantID:       sub.TenantID,
		Display:        fmt.Sprintf("subscription %q (%s)", sub.Name, sub.ID),
	}
}

// ResourceGroupScope builds the scope for a resource group within a
// subscription.
func ResourceGroupScope(sub azure.Subscription, name string) Scope {
	return Scope{
		Kind:           ScopeResourceGroup,
		ID:             fmt.Sprintf("/subscriptions/%s/resourceGroups/%s", sub.ID, name),
		SubscriptionID: sub.ID,
		TenantID:       sub.TenantID,
		Display:        fmt.Sprintf("resource group %q in subscription %q", name, sub.Name),
	}
}

// OmitsSubscription reports whether the secrets output should skip
// AZURE_SUBSCRIPTION_ID for this scope.
func (s Scope) OmitsSubscription() bool {
	return s.Kind == ScopeManagementGroup
}
