package azure

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/managementgroups/armmanagementgroups"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/google/uuid"
	msgraphauth "github.com/microsoft/kiota-authentication-azure-go"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
	"github.com/microsoftgraph/msgraph-sdk-go/models"
)

// defaultGraphScopes is the Microsoft Graph scope for the public cloud.
var defaultGraphScopes = []string{"https://graph.microsoft.com/.default"}

// RealClient implements Provisioner against Microsoft Graph and ARM.
type RealClient struct {
	cred        azcore.TokenCredential
	armOpts     *arm.ClientOptions
	graphScopes []string

	graph            *msgraphsdk.GraphServiceClient
	roleAssignments  *armauthorization.RoleAssignmentsClient
	roleDefinitions  *armauthorization.RoleDefinitionsClient
	subscriptions    *armsubscriptions.Client
	managementGroups *armmanagementgroups.Client
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithClientOptions sets ARM client options, e.g. for sovereign clouds.
func WithClientOptions(opts *arm.ClientOptions) ClientOption {
	return func(c *RealClient) {
		c.armOpts = opts
	}
}

// WithGraphScopes overrides the Microsoft Graph token scopes.
func WithGraphScopes(scopes []string) ClientOption {
	return func(c *RealClient) {
		c.graphScopes = scopes
	}
}

// NewRealClient creates a RealClient using the given credential.
func NewRealClient(cred azcore.TokenCredential, opts ...ClientOption) (*RealClient, error) {
	c := &RealClient{
		cred:        cred,
		graphScopes: defaultGraphScopes,
	}
	for _, opt := range opts {
		opt(c)
	}

	authProv, err := msgraphauth.NewAzureIdentityAuthenticationProviderWithScopes(cred, c.graphScopes)
	if err != nil {
		return nil, fmt.Errorf("create graph auth provider: %w", err)
	}
	adapter, err := msgraphsdk.NewGraphRequestAdapter(authProv)
	if err != nil {
		return nil, fmt.Errorf("create graph request adapter: %w", err)
	}
	c.graph = msgraphsdk.NewGraphServiceClient(adapter)

	// Role assignments and definitions address their scope per call, so no
	// subscription is pinned at construction.
	c.roleAssignments, err = armauthorization.NewRoleAssignmentsClient("", cred, c.armOpts)
	if err != nil {
		return nil, fmt.Errorf("create role assignments client: %w", err)
	}
	c.roleDefinitions, err = armauthorization.NewRoleDefinitionsClient(cred, c.armOpts)
	if err != nil {
		return nil, fmt.Errorf("create role definitions client: %w", err)
	}
	c.subscriptions, err = armsubscriptions.NewClient(cred, c.armOpts)
	if err != nil {
		return nil, fmt.Errorf("create subscriptions client: %w", err)
	}
	c.managementGroups, err = armmanagementgroups.NewClient(cred, c.armOpts)
	if err != nil {
		return nil, fmt.Errorf("create management groups client: %w", err)
	}

	return c, nil
}

// CreateApplication registers a new Entra ID application.
func (c *RealClient) CreateApplication(ctx context.Context, displayName string) (*Application, error) {
	app := models.NewApplication()
	app.SetDisplayName(to.Ptr(displayName))

	created, err := c.graph.Applications().Post(ctx, app, nil)
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	return &Application{
		ObjectID:    strv(created.GetId()),
		ClientID:    strv(created.GetAppId()),
		DisplayName: strv(created.GetDisplayName()),
	}, nil
}

// CreateServicePrincipal creates the service principal for an application.
func (c *RealClient) CreateServicePrincipal(ctx context.Context, clientID string) (*ServicePrincipal, error) {
	sp := models.NewServicePrincipal()
	sp.SetAppId(to.Ptr(clientID))

	created, err := c.graph.ServicePrincipals().Post(ctx, sp, nil)
	if err != nil {
		return nil, fmt.Errorf("create service principal: %w", err)
	}

	return &ServicePrincipal{
		ObjectID: strv(created.GetId()),
		ClientID: strv(created.GetAppId()),
	}, nil
}

// ListFederatedCredentials lists credential names on an application.
func (c *RealClient) ListFederatedCredentials(ctx context.Context, appObjectID string) ([]string, error) {
	resp, err := c.graph.Applications().ByApplicationId(appObjectID).FederatedIdentityCredentials().Get(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list federated credentials: %w", err)
	}

	var names []string
	for _, fc := range resp.GetValue() {
		names = append(names, strv(fc.GetName()))
	}
	return names, nil
}

// CreateFederatedCredential adds a federated identity credential to an
// application and returns its id.
func (c *RealClient) CreateFederatedCredential(ctx context.Context, appObjectID string, cred FederatedCredential) (string, error) {
	fic := models.NewFederatedIdentityCredential()
	fic.SetName(to.Ptr(cred.Name))
	fic.SetIssuer(to.Ptr(cred.Issuer))
	fic.SetSubject(to.Ptr(cred.Subject))
	fic.SetAudiences(cred.Audiences)

	created, err := c.graph.Applications().ByApplicationId(appObjectID).FederatedIdentityCredentials().Post(ctx, fic, nil)
	if err != nil {
		return "", fmt.Errorf("create federated credential: %w", err)
	}
	return strv(created.GetId()), nil
}

// ListManagementGroups lists management groups visible to the credential.
func (c *RealClient) ListManagementGroups(ctx context.Context) ([]ManagementGroup, error) {
	var groups []ManagementGroup
	pager := c.managementGroups.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list management groups: %w", err)
		}
		for _, mg := range page.Value {
			group := ManagementGroup{Name: strv(mg.Name)}
			if mg.Properties != nil {
				group.DisplayName = strv(mg.Properties.DisplayName)
				group.TenantID = strv(mg.Properties.TenantID)
			}
			groups = append(groups, group)
		}
	}
	return groups, nil
}

// ListSubscriptions lists subscriptions visible to the credential.
func (c *RealClient) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	var subs []Subscription
	pager := c.subscriptions.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list subscriptions: %w", err)
		}
		for _, sub := range page.Value {
			subs = append(subs, Subscription{
				ID:       strv(sub.SubscriptionID),
				Name:     strv(sub.DisplayName),
				TenantID: strv(sub.TenantID),
			})
		}
	}
	return subs, nil
}

// ResourceGroupExists reports whether a resource group exists in the
// subscription.
func (c *RealClient) ResourceGroupExists(ctx context.Context, subscriptionID, name string) (bool, error) {
	client, err := armresources.NewResourceGroupsClient(subscriptionID, c.cred, c.armOpts)
	if err != nil {
		return false, fmt.Errorf("create resource groups client: %w", err)
	}
	resp, err := client.CheckExistence(ctx, name, nil)
	if err != nil {
		return false, fmt.Errorf("check resource group %q: %w", name, err)
	}
	return resp.Success, nil
}

// FindRoleDefinition resolves a role name to its definition id at a scope.
func (c *RealClient) FindRoleDefinition(ctx context.Context, scope, roleName string) (string, error) {
	// OData literals escape single quotes by doubling them.
	filter := fmt.Sprintf("roleName eq '%s'", strings.ReplaceAll(roleName, "'", "''"))
	pager := c.roleDefinitions.NewListPager(scope, &armauthorization.RoleDefinitionsClientListOptions{
		Filter: to.Ptr(filter),
	})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return "", fmt.Errorf("list role definitions: %w", err)
		}
		for _, def := range page.Value {
			if def.ID != nil {
				return *def.ID, nil
			}
		}
	}
	return "", fmt.Errorf("role %q not found at scope %s", roleName, scope)
}

// CreateRoleAssignment grants the role to the principal at the scope.
func (c *RealClient) CreateRoleAssignment(ctx context.Context, scope, roleDefinitionID, principalID string) error {
	_, err := c.roleAssignments.Create(ctx, scope, uuid.New().String(), armauthorization.RoleAssignmentCreateParameters{
		Properties: &armauthorization.RoleAssignmentProperties{
			RoleDefinitionID: to.Ptr(roleDefinitionID),
			PrincipalID:      to.Ptr(principalID),
			// Declaring the type lets ARM accept a principal that has not
			// finished replicating through the directory yet.
			PrincipalType: to.Ptr(armauthorization.PrincipalTypeServicePrincipal),
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("create role assignment: %w", err)
	}
	return nil
}

func strv(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
