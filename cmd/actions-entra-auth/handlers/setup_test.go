package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paul-mccormack/actions-entra-auth/internal/azure"
	"github.com/paul-mccormack/actions-entra-auth/internal/github"
	"github.com/paul-mccormack/actions-entra-auth/internal/wizard"
)

// saveAndRestoreSetupFactories saves and restores setup factory functions.
func saveAndRestoreSetupFactories(t *testing.T) {
	origLoadAnswers := loadAnswers
	origNewSession := newSession
	origNewProvisioner := newProvisioner
	origRunIdentity := runIdentity
	origRunScope := runScope
	origRunPrincipal := runPrincipal
	origRunProvisioning := runProvisioning
	origIsInteractiveTTY := isInteractiveTTY

	t.Cleanup(func() {
		loadAnswers = origLoadAnswers
		newSession = origNewSession
		newProvisioner = origNewProvisioner
		runIdentity = origRunIdentity
		runScope = origRunScope
		runPrincipal = origRunPrincipal
		runProvisioning = origRunProvisioning
		isInteractiveTTY = origIsInteractiveTTY
	})
}

func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func writeAnswersFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const subscriptionAnswers = `owner: paul-mccormack
repo: actions-entra-auth
branch: main
display_name: github-actions-deploy
role: Website Contributor
scope: subscription
subscription_id: sub-1
auto_approve: true
`

const managementGroupAnswers = `owner: paul-mccormack
repo: actions-entra-auth
branch: main
display_name: github-actions-deploy
role: Website Contributor
scope: management-group
management_group: mg-prod
auto_approve: true
`

func stubSession() *azure.Session {
	return &azure.Session{
		TenantID: "tenant-1",
		Tenants:  []azure.Tenant{{ID: "tenant-1", Name: "Contoso"}},
	}
}

func stubClient() *azure.MockClient {
	return &azure.MockClient{
		ListSubscriptionsFunc: func(_ context.Context) ([]azure.Subscription, error) {
			return []azure.Subscription{{ID: "sub-1", Name: "Production", TenantID: "tenant-1"}}, nil
		},
		ListManagementGroupsFunc: func(_ context.Context) ([]azure.ManagementGroup, error) {
			return []azure.ManagementGroup{{Name: "mg-prod", DisplayName: "Production", TenantID: "tenant-1"}}, nil
		},
	}
}

func TestSetupHappyPathWithAnswersFile(t *testing.T) {
	saveAndRestoreSetupFactories(t)

	newSession = func(_ context.Context) (*azure.Session, error) { return stubSession(), nil }
	client := stubClient()
	newProvisioner = func(_ *azure.Session) (azure.Provisioner, error) { return client, nil }

	path := writeAnswersFile(t, subscriptionAnswers)

	var err error
	output := captureOutput(func() {
		err = Setup(context.Background(), path, false)
	})

	require.NoError(t, err)
	assert.Contains(t, output, "repo:paul-mccormack/actions-entra-auth:ref:refs/heads/main")
	assert.Contains(t, output, "AZURE_CLIENT_ID")
	assert.Contains(t, output, "mock-client-id")
	assert.Contains(t, output, "AZURE_TENANT_ID")
	assert.Contains(t, output, "tenant-1")
	assert.Contains(t, output, "AZURE_SUBSCRIPTION_ID")
	assert.Contains(t, output, "sub-1")
	assert.Contains(t, output, "id-token: write")
}

func TestSetupManagementGroupScopeOmitsSubscription(t *testing.T) {
	saveAndRestoreSetupFactories(t)

	newSession = func(_ context.Context) (*azure.Session, error) { return stubSession(), nil }
	newProvisioner = func(_ *azure.Session) (azure.Provisioner, error) { return stubClient(), nil }

	path := writeAnswersFile(t, managementGroupAnswers)

	var err error
	output := captureOutput(func() {
		err = Setup(context.Background(), path, false)
	})

	require.NoError(t, err)
	assert.NotContains(t, output, "AZURE_SUBSCRIPTION_ID")
	assert.Contains(t, output, "allow-no-subscriptions: true")
	assert.Contains(t, output, "AZURE_CLIENT_ID")
}

func TestSetupDeclinedSubjectExitsCleanly(t *testing.T) {
	saveAndRestoreSetupFactories(t)

	isInteractiveTTY = func() bool { return true }
	runIdentity = func(_ context.Context, _ *wizard.Answers) (github.Subject, error) {
		return github.Subject{}, wizard.ErrDeclined
	}

	sessionCalled := false
	newSession = func(_ context.Context) (*azure.Session, error) {
		sessionCalled = true
		return stubSession(), nil
	}

	var err error
	output := captureOutput(func() {
		err = Setup(context.Background(), "", false)
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Subject not confirmed. Nothing was created.")
	assert.False(t, sessionCalled, "declining must stop the flow before any cloud call")
}

func TestSetupUserAbortExitsCleanly(t *testing.T) {
	saveAndRestoreSetupFactories(t)

	isInteractiveTTY = func() bool { return true }
	runIdentity = func(_ context.Context, _ *wizard.Answers) (github.Subject, error) {
		return github.Subject{}, huh.ErrUserAborted
	}

	var err error
	output := captureOutput(func() {
		err = Setup(context.Background(), "", false)
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Aborted. Nothing was created.")
}

func TestSetupAuthorizationDeniedStopsBeforeCredential(t *testing.T) {
	saveAndRestoreSetupFactories(t)

	newSession = func(_ context.Context) (*azure.Session, error) { return stubSession(), nil }

	client := stubClient()
	client.CreateRoleAssignmentFunc = func(_ context.Context, _, _, _ string) error {
		return &azcore.ResponseError{ErrorCode: "AuthorizationFailed", StatusCode: http.StatusForbidden}
	}
	credentialAttempted := false
	client.CreateFederatedCredentialFunc = func(_ context.Context, _ string, _ azure.FederatedCredential) (string, error) {
		credentialAttempted = true
		return "", nil
	}
	newProvisioner = func(_ *azure.Session) (azure.Provisioner, error) { return client, nil }

	path := writeAnswersFile(t, subscriptionAnswers)

	var err error
	output := captureOutput(func() {
		err = Setup(context.Background(), path, false)
	})

	require.Error(t, err)
	assert.True(t, azure.IsAuthorizationDenied(err))
	assert.False(t, credentialAttempted, "federated credential must not be attempted after a denied role assignment")
	assert.Contains(t, output, "Access control (IAM)")
	assert.Contains(t, output, "mock-client-id")
	assert.Contains(t, output, "mock-sp-object-id")
	assert.NotContains(t, output, "AZURE_CLIENT_ID")
}

func TestSetupRequiresTTYWithoutFile(t *testing.T) {
	saveAndRestoreSetupFactories(t)

	isInteractiveTTY = func() bool { return false }

	err := Setup(context.Background(), "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--file")
}

func TestSetupRejectsBadAnswersFile(t *testing.T) {
	saveAndRestoreSetupFactories(t)

	err := Setup(context.Background(), "/nonexistent/answers.yaml", false)
	require.Error(t, err)
}
