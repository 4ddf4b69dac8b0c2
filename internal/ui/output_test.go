package ui

import (
	"strings"
	"testing"

	"github.com/paul-mccormack/actions-entra-auth/internal/azure"
	"github.com/paul-mccormack/actions-entra-auth/internal/provision"
)

func subscriptionResult() *provision.Result {
	return &provision.Result{
		AppObjectID:        "app-object-id",
		ClientID:           "client-id-1234",
		ServicePrincipalID: "sp-object-id",
		TenantID:           "tenant-id-5678",
		Scope: provision.SubscriptionScope(azure.Subscription{
			ID:   "sub-id-9999",
			Name: "Production",
		}),
	}
}

func managementGroupResult() *provision.Result {
	res := subscriptionResult()
	res.Scope = provision.ManagementGroupScope(azure.ManagementGroup{
		Name:        "mg-prod",
		DisplayName: "Production",
	})
	return res
}

func TestRenderSecretsSubscriptionScope(t *testing.T) {
	out := RenderSecrets(subscriptionResult())

	for _, want := range []string{
		"AZURE_CLIENT_ID",
		"client-id-1234",
		"AZURE_TENANT_ID",
		"tenant-id-5678",
		"AZURE_SUBSCRIPTION_ID",
		"sub-id-9999",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSecretsManagementGroupScopeOmitsSubscription(t *testing.T) {
	out := RenderSecrets(managementGroupResult())

	if strings.Contains(out, "AZURE_SUBSCRIPTION_ID") {
		t.Errorf("management group scope must not print a subscription id:\n%s", out)
	}
	if !strings.Contains(out, "AZURE_CLIENT_ID") || !strings.Contains(out, "AZURE_TENANT_ID") {
		t.Errorf("client and tenant ids must still be printed:\n%s", out)
	}
	if !strings.Contains(out, "no single subscription") {
		t.Errorf("expected a note explaining the missing subscription line:\n%s", out)
	}
}

func TestRenderWorkflowHints(t *testing.T) {
	out := RenderWorkflowHints(subscriptionResult())

	if !strings.Contains(out, "id-token: write") {
		t.Errorf("hints must include the id-token permission:\n%s", out)
	}
	if !strings.Contains(out, "subscription-id: ${{ secrets.AZURE_SUBSCRIPTION_ID }}") {
		t.Errorf("subscription scope hints must pass the subscription secret:\n%s", out)
	}
	if strings.Contains(out, "allow-no-subscriptions") {
		t.Errorf("subscription scope hints must not suggest allow-no-subscriptions:\n%s", out)
	}
}

func TestRenderWorkflowHintsManagementGroup(t *testing.T) {
	out := RenderWorkflowHints(managementGroupResult())

	if !strings.Contains(out, "allow-no-subscriptions: true") {
		t.Errorf("management group hints must set allow-no-subscriptions:\n%s", out)
	}
	if strings.Contains(out, "subscription-id:") {
		t.Errorf("management group hints must not pass a subscription id:\n%s", out)
	}
}

func TestRenderAuthzDiagnostic(t *testing.T) {
	out := RenderAuthzDiagnostic(subscriptionResult())

	for _, want := range []string{
		"Access control (IAM)",
		"client-id-1234",
		"sp-object-id",
		"az ad app delete --id client-id-1234",
		"not rolled back",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("diagnostic missing %q:\n%s", want, out)
		}
	}
}

func TestRenderBanner(t *testing.T) {
	out := RenderBanner("v1.2.3")
	if !strings.Contains(out, "actions-entra-auth v1.2.3") {
		t.Errorf("banner missing title and version:\n%s", out)
	}

	out = RenderBanner("")
	if strings.Contains(out, "actions-entra-auth v") {
		t.Errorf("banner should omit the version when unset:\n%s", out)
	}
}

func TestPrinterPublish(t *testing.T) {
	tests := []struct {
		event provision.Event
		mark  string
	}{
		{provision.Event{Type: provision.EventResourceCreating, Message: "registering application"}, busyMark},
		{provision.Event{Type: provision.EventResourceCreated, Message: "application registered"}, checkMark},
		{provision.Event{Type: provision.EventResourceExists, Message: "role assignment already present"}, checkMark},
		{provision.Event{Type: provision.EventResourceFailed, Message: "role assignment failed"}, crossMark},
	}

	for _, tt := range tests {
		var sb strings.Builder
		NewPrinter(&sb).Publish(tt.event)
		out := sb.String()
		if !strings.Contains(out, tt.mark) {
			t.Errorf("event %s: output missing mark %q: %q", tt.event.Type, tt.mark, out)
		}
		if !strings.Contains(out, tt.event.Message) {
			t.Errorf("event %s: output missing message %q: %q", tt.event.Type, tt.event.Message, out)
		}
	}
}

func TestRenderCheckResult(t *testing.T) {
	ok := RenderCheckResult(true, "azure cli session found")
	if !strings.Contains(ok, checkMark) || !strings.Contains(ok, "azure cli session found") {
		t.Errorf("unexpected ok line: %q", ok)
	}

	bad := RenderCheckResult(false, "no session")
	if !strings.Contains(bad, crossMark) {
		t.Errorf("unexpected failure line: %q", bad)
	}
}

func TestRenderToolResult(t *testing.T) {
	tests := []struct {
		found    bool
		required bool
		mark     string
	}{
		{true, true, checkMark},
		{false, true, crossMark},
		{false, false, warnMark},
	}

	for _, tt := range tests {
		out := RenderToolResult("az", tt.found, tt.required, "detail")
		if !strings.Contains(out, tt.mark) {
			t.Errorf("found=%v required=%v: output missing %q: %q", tt.found, tt.required, tt.mark, out)
		}
	}
}
