// Package azure wraps the Entra ID and Azure Resource Manager APIs behind
// small per-concern interfaces so handlers and the provisioner can be tested
// without network access.
package azure

import "context"

// Application is an Entra ID app registration.
type Application struct {
	// ObjectID is the directory object id, used for follow-up Graph calls.
	ObjectID string
	// ClientID is the application (client) id a workflow presents as AZURE_CLIENT_ID.
	ClientID    string
	DisplayName string
}

// ServicePrincipal is the tenant-local principal backing an app registration.
type ServicePrincipal struct {
	ObjectID string
	ClientID string
}

// FederatedCredential describes a federated identity credential to create on
// an application.
type FederatedCredential struct {
	Name      string
	Issuer    string
	Subject   string
	Audiences []string
}

// ManagementGroup is a management group visible to the signed-in identity.
type ManagementGroup struct {
	// Name is the group id segment used in the ARM scope path.
	Name        string
	DisplayName string
	TenantID    string
}

// Subscription is a subscription visible to the signed-in identity.
type Subscription struct {
	ID       string
	Name     string
	TenantID string
}

// DirectoryClient manages Entra ID directory objects via Microsoft Graph.
type DirectoryClient interface {
	CreateApplication(ctx context.Context, displayName string) (*Application, error)
	CreateServicePrincipal(ctx context.Context, clientID string) (*ServicePrincipal, error)
	// ListFederatedCredentials returns the names of credentials already
	// present on the application.
	ListFederatedCredentials(ctx context.Context, appObjectID string) ([]string, error)
	// CreateFederatedCredential returns the id of the created credential.
	CreateFederatedCredential(ctx context.Context, appObjectID string, cred FederatedCredential) (string, error)
}

// ScopeClient lists the resources a role assignment can be scoped to.
type ScopeClient interface {
	ListManagementGroups(ctx context.Context) ([]ManagementGroup, error)
	ListSubscriptions(ctx context.Context) ([]Subscription, error)
	ResourceGroupExists(ctx context.Context, subscriptionID, name string) (bool, error)
}

// RoleClient resolves role definitions and creates role assignments.
type RoleClient interface {
	// FindRoleDefinition resolves a role name (built-in or custom) to its
	// role definition id at the given scope.
	FindRoleDefinition(ctx context.Context, scope, roleName string) (string, error)
	CreateRoleAssignment(ctx context.Context, scope, roleDefinitionID, principalID string) error
}

// Provisioner combines everything the setup flow needs.
type Provisioner interface {
	DirectoryClient
	ScopeClient
	RoleClient
}
