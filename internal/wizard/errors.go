package wizard

import "errors"

// Sentinel results the setup flow distinguishes from failures.
var (
	// ErrDeclined is returned when the operator rejects the composed subject.
	// Nothing has been created at that point.
	ErrDeclined = errors.New("subject not confirmed")

	// ErrCanceled is returned when the operator cancels a prompt loop with a
	// blank answer.
	ErrCanceled = errors.New("canceled by operator")
)

// Validation errors for the interactive prompts.
var (
	errDisplayNameRequired = errors.New("service principal name is required")
	errDisplayNameTooLong  = errors.New("service principal name must be at most 120 characters")
	errRoleRequired        = errors.New("role name is required")
	errNoManagementGroups  = errors.New("no management groups are visible to the current login")
	errNoSubscriptions     = errors.New("no subscriptions are visible to the current login")
)
