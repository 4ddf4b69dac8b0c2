package azure

import (
	"context"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

// fakeCredential satisfies azcore.TokenCredential without any network calls.
type fakeCredential struct{}

func (fakeCredential) GetToken(_ context.Context, _ policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: "fake-token", ExpiresOn: time.Now().Add(time.Hour)}, nil
}

func TestNewRealClient_Defaults(t *testing.T) {
	client, err := NewRealClient(fakeCredential{})
	if err != nil {
		t.Fatalf("NewRealClient() error = %v", err)
	}

	if client.graph == nil {
		t.Error("expected graph client to be initialized")
	}
	if client.roleAssignments == nil {
		t.Error("expected role assignments client to be initialized")
	}
	if client.roleDefinitions == nil {
		t.Error("expected role definitions client to be initialized")
	}
	if client.subscriptions == nil {
		t.Error("expected subscriptions client to be initialized")
	}
	if client.managementGroups == nil {
		t.Error("expected management groups client to be initialized")
	}
	if len(client.graphScopes) != 1 || client.graphScopes[0] != "https://graph.microsoft.com/.default" {
		t.Errorf("expected default graph scopes, got %v", client.graphScopes)
	}
}

func TestNewRealClient_WithGraphScopes(t *testing.T) {
	scopes := []string{"https://graph.microsoft.us/.default"}

	client, err := NewRealClient(fakeCredential{}, WithGraphScopes(scopes))
	if err != nil {
		t.Fatalf("NewRealClient() error = %v", err)
	}

	if len(client.graphScopes) != 1 || client.graphScopes[0] != scopes[0] {
		t.Errorf("expected custom graph scopes, got %v", client.graphScopes)
	}
}

func TestNewRealClient_WithClientOptions(t *testing.T) {
	opts := &arm.ClientOptions{}

	client, err := NewRealClient(fakeCredential{}, WithClientOptions(opts))
	if err != nil {
		t.Fatalf("NewRealClient() error = %v", err)
	}

	if client.armOpts != opts {
		t.Error("expected custom client options to be set")
	}
}

func TestMockClientImplementsProvisioner(t *testing.T) {
	var p Provisioner = &MockClient{}

	app, err := p.CreateApplication(context.Background(), "deploy")
	if err != nil {
		t.Fatalf("CreateApplication() error = %v", err)
	}
	if app.DisplayName != "deploy" {
		t.Errorf("mock default DisplayName = %q, want %q", app.DisplayName, "deploy")
	}

	exists, err := p.ResourceGroupExists(context.Background(), "sub", "rg")
	if err != nil {
		t.Fatalf("ResourceGroupExists() error = %v", err)
	}
	if !exists {
		t.Error("mock default ResourceGroupExists should be true")
	}
}
