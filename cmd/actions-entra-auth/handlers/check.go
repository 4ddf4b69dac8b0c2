package handlers

import (
	"context"
	"fmt"

	"github.com/paul-mccormack/actions-entra-auth/internal/azure"
	"github.com/paul-mccormack/actions-entra-auth/internal/ui"
	"github.com/paul-mccormack/actions-entra-auth/internal/util/prerequisites"
)

// Factory function variables for check - can be replaced in tests.
var (
	checkTools = prerequisites.CheckAll

	checkSession = func(ctx context.Context) (*azure.Session, error) {
		return azure.NewSession(ctx, nil)
	}
)

// Check verifies the local tools and the Azure CLI session without creating
// anything.
func Check(ctx context.Context) error {
	fmt.Println()
	fmt.Println("Client tools")

	results := checkTools()
	for _, r := range results.Results {
		detail := r.Version
		if !r.Found {
			detail = "not found, see " + r.Tool.InstallURL
		}
		fmt.Println(ui.RenderToolResult(r.Tool.Name, r.Found, r.Tool.Required, detail))
	}

	if err := results.Error(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Azure session")

	session, err := checkSession(ctx)
	if err != nil {
		fmt.Println(ui.RenderCheckResult(false, "no usable session; run 'az login' first"))
		return err
	}

	fmt.Println(ui.RenderCheckResult(true, fmt.Sprintf("signed in, default tenant %s", session.TenantID)))
	if len(session.Tenants) > 1 {
		fmt.Println(ui.RenderCheckResult(true, fmt.Sprintf("%d tenants visible", len(session.Tenants))))
	}

	fmt.Println()
	fmt.Println("Ready. Run 'actions-entra-auth setup' to create the federation.")

	return nil
}
