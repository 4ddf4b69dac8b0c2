package provision

import (
	"context"
	"fmt"

	"github.com/paul-mccormack/actions-entra-auth/internal/azure"
	"github.com/paul-mccormack/actions-entra-auth/internal/github"
)

// Plan is everything Run needs to provision the identity.
type Plan struct {
	Subject     github.Subject
	DisplayName string
	RoleName    string
	Scope       Scope
	// TenantID is the tenant to report in the output, resolved by the caller
	// from the scope or the session.
	TenantID string
}

// Result collects the ids of everything created. On failure it still carries
// whatever was created before the failing step so callers can report it; no
// rollback is ever attempted.
type Result struct {
	AppObjectID        string
	ClientID           string
	ServicePrincipalID string
	RoleAssigned       bool
	CredentialID       string
	CredentialName     string
	TenantID           string
	Scope              Scope
}

// Runner executes the provisioning steps strictly in order: application,
// service principal, role assignment, federated credential. A failed role
// assignment stops the run before the federated credential is attempted.
type Runner struct {
	client   azure.Provisioner
	observer Observer
}

// NewRunner creates a Runner. A nil observer discards events.
func NewRunner(client azure.Provisioner, observer Observer) *Runner {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Runner{client: client, observer: observer}
}

// Run provisions everything in the plan. The returned Result is non-nil even
// on error so the caller can report partially created objects.
func (r *Runner) Run(ctx context.Context, plan Plan) (*Result, error) {
	res := &Result{
		TenantID:       plan.TenantID,
		Scope:          plan.Scope,
		CredentialName: plan.Subject.CredentialName(),
	}

	r.observer.Publish(Event{Type: EventResourceCreating, Resource: plan.DisplayName, Message: "registering application"})
	app, err := r.client.CreateApplication(ctx, plan.DisplayName)
	if err != nil {
		r.observer.Publish(Event{Type: EventResourceFailed, Resource: plan.DisplayName, Message: "application registration failed"})
		return res, fmt.Errorf("create application %q: %w", plan.DisplayName, err)
	}
	res.AppObjectID = app.ObjectID
	res.ClientID = app.ClientID
	r.observer.Publish(Event{Type: EventResourceCreated, Resource: app.DisplayName, Message: fmt.Sprintf("application registered, client id %s", app.ClientID)})

	r.observer.Publish(Event{Type: EventResourceCreating, Resource: plan.DisplayName, Message: "creating service principal"})
	sp, err := r.client.CreateServicePrincipal(ctx, app.ClientID)
	if err != nil {
		r.observer.Publish(Event{Type: EventResourceFailed, Resource: plan.DisplayName, Message: "service principal creation failed"})
		return res, fmt.Errorf("create service principal: %w", err)
	}
	res.ServicePrincipalID = sp.ObjectID
	r.observer.Publish(Event{Type: EventResourceCreated, Resource: plan.DisplayName, Message: "service principal created"})

	roleDefID, err := r.client.FindRoleDefinition(ctx, plan.Scope.ID, plan.RoleName)
	if err != nil {
		return res, fmt.Errorf("resolve role %q: %w", plan.RoleName, err)
	}

	r.observer.Publish(Event{Type: EventResourceCreating, Resource: plan.RoleName, Message: fmt.Sprintf("assigning role at %s", plan.Scope.Display)})
	err = r.client.CreateRoleAssignment(ctx, plan.Scope.ID, roleDefID, sp.ObjectID)
	switch {
	case err == nil:
		res.RoleAssigned = true
		r.observer.Publish(Event{Type: EventResourceCreated, Resource: plan.RoleName, Message: "role assigned"})
	case azure.IsRoleAssignmentExists(err):
		res.RoleAssigned = true
		r.observer.Publish(Event{Type: EventResourceExists, Resource: plan.RoleName, Message: "role assignment already present"})
	default:
		r.observer.Publish(Event{Type: EventResourceFailed, Resource: plan.RoleName, Message: "role assignment failed"})
		return res, fmt.Errorf("assign role %q at %s: %w", plan.RoleName, plan.Scope.Display, err)
	}

	existing, err := r.client.ListFederatedCredentials(ctx, app.ObjectID)
	if err != nil {
		return res, fmt.Errorf("list federated credentials: %w", err)
	}
	for _, name := range existing {
		if name == res.CredentialName {
			return res, fmt.Errorf("federated credential %q already exists on application %s", res.CredentialName, app.ObjectID)
		}
	}

	r.observer.Publish(Event{Type: EventResourceCreating, Resource: res.CredentialName, Message: "creating federated credential"})
	credID, err := r.client.CreateFederatedCredential(ctx, app.ObjectID, azure.FederatedCredential{
		Name:      res.CredentialName,
		Issuer:    github.Issuer,
		Subject:   plan.Subject.String(),
		Audiences: []string{github.Audience},
	})
	if err != nil {
		r.observer.Publish(Event{Type: EventResourceFailed, Resource: res.CredentialName, Message: "federated credential creation failed"})
		return res, fmt.Errorf("create federated credential: %w", err)
	}
	res.CredentialID = credID
	r.observer.Publish(Event{Type: EventResourceCreated, Resource: res.CredentialName, Message: fmt.Sprintf("federated credential created for %s", plan.Subject)})

	return res, nil
}
