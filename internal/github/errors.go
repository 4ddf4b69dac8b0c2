package github

import "errors"

// Validation errors surfaced inline by the interactive prompts.
var (
	errOwnerRequired = errors.New("organization name is required")
	errOwnerTooLong  = errors.New("organization name must be at most 39 characters")
	errOwnerInvalid  = errors.New("organization name must be alphanumeric with single hyphens, starting and ending with alphanumeric")

	errRepoRequired = errors.New("repository name is required")
	errRepoTooLong  = errors.New("repository name must be at most 100 characters")
	errRepoInvalid  = errors.New("repository name must be alphanumeric with dots, underscores or hyphens, starting and ending with alphanumeric")

	errBranchRequired = errors.New("branch name is required")
	errBranchTooLong  = errors.New("branch name must be at most 255 characters")
	errBranchInvalid  = errors.New("branch name must be alphanumeric with dots, underscores, hyphens or slashes, with no leading, trailing or doubled slash")
)
