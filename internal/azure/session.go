package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
)

// Tenant is an Entra ID tenant the signed-in identity can access.
type Tenant struct {
	ID   string
	Name string
}

// Session carries the credential of the operator's existing Azure CLI login
// and the tenant it resolves to. Every provider call receives it explicitly.
type Session struct {
	Credential azcore.TokenCredential
	// TenantID is the first tenant visible to the credential. When a scope
	// carries its own tenant id that one takes precedence.
	TenantID string
	Tenants  []Tenant
}

// NewSession builds a session from the Azure CLI's active login.
func NewSession(ctx context.Context, opts *arm.ClientOptions) (*Session, error) {
	cred, err := azidentity.NewAzureCLICredential(nil)
	if err != nil {
		return nil, fmt.Errorf("load azure cli credential: %w", err)
	}

	tenants, err := listTenants(ctx, cred, opts)
	if err != nil {
		return nil, fmt.Errorf("resolve tenant (is 'az login' done?): %w", err)
	}
	if len(tenants) == 0 {
		return nil, fmt.Errorf("no tenants visible to the current azure cli login")
	}

	return &Session{
		Credential: cred,
		TenantID:   tenants[0].ID,
		Tenants:    tenants,
	}, nil
}

func listTenants(ctx context.Context, cred azcore.TokenCredential, opts *arm.ClientOptions) ([]Tenant, error) {
	client, err := armsubscriptions.NewTenantsClient(cred, opts)
	if err != nil {
		return nil, fmt.Errorf("create tenants client: %w", err)
	}

	var tenants []Tenant
	pager := client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list tenants: %w", err)
		}
		for _, t := range page.Value {
			tenants = append(tenants, Tenant{
				ID:   strv(t.TenantID),
				Name: strv(t.DisplayName),
			})
		}
	}
	return tenants, nil
}
