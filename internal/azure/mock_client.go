package azure

import "context"

// MockClient is a mock implementation of Provisioner for tests.
type MockClient struct {
	CreateApplicationFunc        func(ctx context.Context, displayName string) (*Application, error)
	CreateServicePrincipalFunc   func(ctx context.Context, clientID string) (*ServicePrincipal, error)
	ListFederatedCredentialsFunc func(ctx context.Context, appObjectID string) ([]string, error)
	CreateFederatedCredentialFunc func(ctx context.Context, appObjectID string, cred FederatedCredential) (string, error)

	ListManagementGroupsFunc func(ctx context.Context) ([]ManagementGroup, error)
	ListSubscriptionsFunc    func(ctx context.Context) ([]Subscription, error)
	ResourceGroupExistsFunc  func(ctx context.Context, subscriptionID, name string) (bool, error)

	FindRoleDefinitionFunc   func(ctx context.Context, scope, roleName string) (string, error)
	CreateRoleAssignmentFunc func(ctx context.Context, scope, roleDefinitionID, principalID string) error
}

// Ensure interface compliance
var _ Provisioner = (*MockClient)(nil)

// CreateApplication mocks application creation.
func (m *MockClient) CreateApplication(ctx context.Context, displayName string) (*Application, error) {
	if m.CreateApplicationFunc != nil {
		return m.CreateApplicationFunc(ctx, displayName)
	}
	return &Application{ObjectID: "mock-app-object-id", ClientID: "mock-client-id", DisplayName: displayName}, nil
}

// CreateServicePrincipal mocks service principal creation.
func (m *MockClient) CreateServicePrincipal(ctx context.Context, clientID string) (*ServicePrincipal, error) {
	if m.CreateServicePrincipalFunc != nil {
		return m.CreateServicePrincipalFunc(ctx, clientID)
	}
	return &ServicePrincipal{ObjectID: "mock-sp-object-id", ClientID: clientID}, nil
}

// ListFederatedCredentials mocks credential listing.
func (m *MockClient) ListFederatedCredentials(ctx context.Context, appObjectID string) ([]string, error) {
	if m.ListFederatedCredentialsFunc != nil {
		return m.ListFederatedCredentialsFunc(ctx, appObjectID)
	}
	return nil, nil
}

// CreateFederatedCredential mocks federated credential creation.
func (m *MockClient) CreateFederatedCredential(ctx context.Context, appObjectID string, cred FederatedCredential) (string, error) {
	if m.CreateFederatedCredentialFunc != nil {
		return m.CreateFederatedCredentialFunc(ctx, appObjectID, cred)
	}
	return "mock-credential-id", nil
}

// ListManagementGroups mocks management group listing.
func (m *MockClient) ListManagementGroups(ctx context.Context) ([]ManagementGroup, error) {
	if m.ListManagementGroupsFunc != nil {
		return m.ListManagementGroupsFunc(ctx)
	}
	return nil, nil
}

// ListSubscriptions mocks subscription listing.
func (m *MockClient) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	if m.ListSubscriptionsFunc != nil {
		return m.ListSubscriptionsFunc(ctx)
	}
	return nil, nil
}

// ResourceGroupExists mocks the resource group existence check.
func (m *MockClient) ResourceGroupExists(ctx context.Context, subscriptionID, name string) (bool, error) {
	if m.ResourceGroupExistsFunc != nil {
		return m.ResourceGroupExistsFunc(ctx, subscriptionID, name)
	}
	return true, nil
}

// FindRoleDefinition mocks role definition lookup.
func (m *MockClient) FindRoleDefinition(ctx context.Context, scope, roleName string) (string, error) {
	if m.FindRoleDefinitionFunc != nil {
		return m.FindRoleDefinitionFunc(ctx, scope, roleName)
	}
	return "/subscriptions/mock/providers/Microsoft.Authorization/roleDefinitions/mock-role", nil
}

// CreateRoleAssignment mocks role assignment creation.
func (m *MockClient) CreateRoleAssignment(ctx context.Context, scope, roleDefinitionID, principalID string) error {
	if m.CreateRoleAssignmentFunc != nil {
		return m.CreateRoleAssignmentFunc(ctx, scope, roleDefinitionID, principalID)
	}
	return nil
}
