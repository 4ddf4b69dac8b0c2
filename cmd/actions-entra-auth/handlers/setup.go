// Package handlers implements the command flows behind the CLI definitions.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/paul-mccormack/actions-entra-auth/internal/azure"
	"github.com/paul-mccormack/actions-entra-auth/internal/provision"
	"github.com/paul-mccormack/actions-entra-auth/internal/ui"
	"github.com/paul-mccormack/actions-entra-auth/internal/wizard"
)

// Factory function variables for setup - can be replaced in tests.
var (
	// loadAnswers reads a pre-filled answers file.
	loadAnswers = wizard.Load

	// newSession authenticates against the current Azure CLI login.
	newSession = func(ctx context.Context) (*azure.Session, error) {
		return azure.NewSession(ctx, nil)
	}

	// newProvisioner builds the Graph and ARM clients for the session.
	newProvisioner = func(session *azure.Session) (azure.Provisioner, error) {
		return azure.NewRealClient(session.Credential)
	}

	// runIdentity collects and confirms the GitHub coordinates.
	runIdentity = wizard.RunIdentity

	// runScope resolves the role assignment scope.
	runScope = wizard.RunScope

	// runPrincipal collects the display name and role.
	runPrincipal = wizard.RunPrincipal

	// runProvisioning executes the provisioning steps.
	runProvisioning = func(ctx context.Context, client azure.Provisioner, observer provision.Observer, plan provision.Plan) (*provision.Result, error) {
		return provision.NewRunner(client, observer).Run(ctx, plan)
	}

	// isInteractiveTTY reports whether stdin can drive prompts.
	isInteractiveTTY = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
)

// Setup runs the federation flow end to end: wizard, Azure CLI session,
// provisioning, and the final secrets block. Operator aborts exit cleanly
// without an error; provisioning failures surface whatever was already
// created before returning the error.
func Setup(ctx context.Context, answersPath string, accessible bool) error {
	ans := &wizard.Answers{Accessible: accessible}
	if answersPath != "" {
		loaded, err := loadAnswers(answersPath)
		if err != nil {
			return err
		}
		loaded.Accessible = accessible
		ans = loaded
	} else if !isInteractiveTTY() {
		return errors.New("no interactive terminal; pass --file with pre-filled answers")
	}

	fmt.Print(ui.RenderBanner(""))
	fmt.Println()

	subject, err := runIdentity(ctx, ans)
	if err != nil {
		return abortOrFail(err)
	}
	fmt.Println(ui.RenderCheckResult(true, fmt.Sprintf("will trust %s", subject)))

	session, err := newSession(ctx)
	if err != nil {
		return fmt.Errorf("azure session: %w", err)
	}
	fmt.Println(ui.RenderCheckResult(true, fmt.Sprintf("signed in, tenant %s", session.TenantID)))

	client, err := newProvisioner(session)
	if err != nil {
		return fmt.Errorf("azure clients: %w", err)
	}

	scope, err := runScope(ctx, client, ans)
	if err != nil {
		return abortOrFail(err)
	}
	fmt.Println(ui.RenderCheckResult(true, fmt.Sprintf("role scope is %s", scope.Display)))

	if err := runPrincipal(ctx, ans); err != nil {
		return abortOrFail(err)
	}

	tenantID := scope.TenantID
	if tenantID == "" {
		tenantID = session.TenantID
	}

	plan := provision.Plan{
		Subject:     subject,
		DisplayName: ans.DisplayName,
		RoleName:    ans.Role,
		Scope:       scope,
		TenantID:    tenantID,
	}

	fmt.Println()
	result, err := runProvisioning(ctx, client, ui.NewPrinter(os.Stdout), plan)
	if err != nil {
		if azure.IsAuthorizationDenied(err) {
			fmt.Print(ui.RenderAuthzDiagnostic(result))
		}
		return err
	}

	fmt.Print(ui.RenderSecrets(result))
	fmt.Print(ui.RenderWorkflowHints(result))
	fmt.Println()

	return nil
}

// abortOrFail converts an operator abort into a clean exit with a notice.
// Every other error passes through.
func abortOrFail(err error) error {
	switch {
	case errors.Is(err, wizard.ErrDeclined):
		fmt.Println()
		fmt.Println("Subject not confirmed. Nothing was created.")
		return nil
	case errors.Is(err, wizard.ErrCanceled), errors.Is(err, huh.ErrUserAborted):
		fmt.Println()
		fmt.Println("Aborted. Nothing was created.")
		return nil
	default:
		return err
	}
}
