// Package wizard provides the interactive prompts for actions-entra-auth.
//
// It uses charmbracelet/huh for form-based input collection. RunIdentity
// collects and confirms the GitHub repository coordinates before any cloud
// call is made; RunScope resolves the role-assignment scope against live
// listings; RunPrincipal collects the service principal name and role.
// Values pre-seeded through an answers file skip their prompts.
package wizard
