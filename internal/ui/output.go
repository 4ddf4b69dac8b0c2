// Package ui renders the styled console surface of the setup flow: the
// banner, per-step progress lines, the final GitHub secrets block, and the
// diagnostics shown when provisioning stops early.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/paul-mccormack/actions-entra-auth/internal/provision"
)

// Printer turns provisioning events into styled status lines. It satisfies
// provision.Observer.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Publish renders one provisioning event.
func (p *Printer) Publish(e provision.Event) {
	switch e.Type {
	case provision.EventResourceCreating:
		fmt.Fprintf(p.w, "  %s %s\n", dimStyle.Render(busyMark), dimStyle.Render(e.Message))
	case provision.EventResourceCreated:
		fmt.Fprintf(p.w, "  %s %s\n", okStyle.Render(checkMark), e.Message)
	case provision.EventResourceExists:
		fmt.Fprintf(p.w, "  %s %s\n", warningStyle.Render(checkMark), e.Message)
	case provision.EventResourceFailed:
		fmt.Fprintf(p.w, "  %s %s\n", failedStyle.Render(crossMark), e.Message)
	}
}

// RenderBanner returns the setup header.
func RenderBanner(version string) string {
	var b strings.Builder
	b.WriteString("\n")
	title := "actions-entra-auth"
	if version != "" {
		title += " " + version
	}
	b.WriteString(titleStyle.Render("  " + title))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("  Federate GitHub Actions with Microsoft Entra ID. No stored secrets."))
	b.WriteString("\n")
	return b.String()
}

// RenderSecrets returns the repository secrets block the operator copies into
// GitHub. The subscription line is left out for management group scope, where
// no single subscription applies.
func RenderSecrets(res *provision.Result) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  GitHub repository secrets"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  Settings > Secrets and variables > Actions > New repository secret"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "    %-24s %s\n", "AZURE_CLIENT_ID", valueStyle.Render(res.ClientID))
	fmt.Fprintf(&b, "    %-24s %s\n", "AZURE_TENANT_ID", valueStyle.Render(res.TenantID))
	if res.Scope.OmitsSubscription() {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  Management group scope: no single subscription applies."))
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "    %-24s %s\n", "AZURE_SUBSCRIPTION_ID", valueStyle.Render(res.Scope.SubscriptionID))
	}

	return b.String()
}

// RenderWorkflowHints returns the workflow snippet a federated login needs:
// the id-token permission and the azure/login inputs matching the secrets.
func RenderWorkflowHints(res *provision.Result) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  Workflow checklist"))
	b.WriteString("\n\n")
	b.WriteString("    permissions:\n")
	b.WriteString("      id-token: write\n")
	b.WriteString("      contents: read\n")
	b.WriteString("\n")
	b.WriteString("    - uses: azure/login@v2\n")
	b.WriteString("      with:\n")
	b.WriteString("        client-id: ${{ secrets.AZURE_CLIENT_ID }}\n")
	b.WriteString("        tenant-id: ${{ secrets.AZURE_TENANT_ID }}\n")
	if res.Scope.OmitsSubscription() {
		b.WriteString("        allow-no-subscriptions: true\n")
	} else {
		b.WriteString("        subscription-id: ${{ secrets.AZURE_SUBSCRIPTION_ID }}\n")
	}

	return b.String()
}

// RenderAuthzDiagnostic explains a role assignment denied by Azure RBAC and
// reports the objects already created, since nothing is rolled back.
func RenderAuthzDiagnostic(res *provision.Result) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(failedStyle.Render("  " + crossMark + " Not authorized to create the role assignment."))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  Your signed-in account needs Owner or User Access Administrator on\n  %s.\n", res.Scope.Display)
	b.WriteString("  Check the Access control (IAM) blade for that scope, or ask an\n")
	b.WriteString("  administrator to finish the setup.\n\n")

	b.WriteString(warningStyle.Render("  Already created, not rolled back:"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "    %-24s %s\n", "Application (client id)", res.ClientID)
	fmt.Fprintf(&b, "    %-24s %s\n", "Service principal", res.ServicePrincipalID)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  Remove them with: az ad app delete --id " + res.ClientID))
	b.WriteString("\n")

	return b.String()
}

// RenderCheckResult returns a single ready/not-ready verdict line.
func RenderCheckResult(ok bool, message string) string {
	if ok {
		return fmt.Sprintf("  %s %s", okStyle.Render(checkMark), message)
	}
	return fmt.Sprintf("  %s %s", failedStyle.Render(crossMark), message)
}

// RenderToolResult returns a status line for one client tool check. A missing
// optional tool is a warning, not a failure.
func RenderToolResult(name string, found, required bool, detail string) string {
	switch {
	case found:
		return fmt.Sprintf("  %s %-6s %s", okStyle.Render(checkMark), name, dimStyle.Render(detail))
	case required:
		return fmt.Sprintf("  %s %-6s %s", failedStyle.Render(crossMark), name, detail)
	default:
		return fmt.Sprintf("  %s %-6s %s", warningStyle.Render(warnMark), name, dimStyle.Render(detail))
	}
}
