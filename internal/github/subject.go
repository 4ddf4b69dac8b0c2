// Package github validates GitHub repository coordinates and composes the
// OIDC subject claim that a federated credential pins to.
package github

import (
	"fmt"
	"regexp"
	"strings"
)

// Issuer is the OIDC token endpoint GitHub Actions presents tokens from.
const Issuer = "https://token.actions.githubusercontent.com"

// Audience is the fixed audience Azure expects on GitHub Actions tokens.
const Audience = "api://AzureADTokenExchange"

const (
	maxOwnerLen  = 39
	maxRepoLen   = 100
	maxBranchLen = 255
)

// ownerRegex validates org/user name format: alphanumeric with single
// interior hyphens, starting and ending with alphanumeric.
var ownerRegex = regexp.MustCompile(`^[a-zA-Z0-9](?:-?[a-zA-Z0-9])*$`)

// repoRegex validates repository name format: alphanumeric plus dot,
// underscore, hyphen, starting and ending with alphanumeric.
var repoRegex = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9._-]*[a-zA-Z0-9])?$`)

// branchRegex validates branch name format: slash-separated segments of
// alphanumeric, dot, underscore, hyphen. No leading/trailing or doubled slash.
var branchRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+(?:/[a-zA-Z0-9._-]+)*$`)

// credentialNameRegex strips characters Entra rejects in credential names.
var credentialNameRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// Subject identifies the repository and branch allowed to redeem tokens
// against a federated credential. Compose one only from validated parts.
type Subject struct {
	Owner  string
	Repo   string
	Branch string
}

// String returns the subject claim in the form GitHub Actions tokens carry:
// repo:{owner}/{repo}:ref:refs/heads/{branch}.
func (s Subject) String() string {
	return fmt.Sprintf("repo:%s/%s:ref:refs/heads/%s", s.Owner, s.Repo, s.Branch)
}

// CredentialName derives a stable federated credential name from the subject.
// Entra allows 3-120 characters of alphanumeric, hyphen, and underscore, so
// slashes and dots in the branch are folded to hyphens.
func (s Subject) CredentialName() string {
	name := fmt.Sprintf("github-%s-%s-%s", s.Owner, s.Repo, s.Branch)
	name = credentialNameRegex.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")
	if len(name) > 120 {
		name = strings.TrimRight(name[:120], "-")
	}
	return name
}

// ValidateOwner validates a GitHub organization or user name.
func ValidateOwner(s string) error {
	if s == "" {
		return errOwnerRequired
	}
	if len(s) > maxOwnerLen {
		return errOwnerTooLong
	}
	if !ownerRegex.MatchString(s) {
		return errOwnerInvalid
	}
	return nil
}

// ValidateRepo validates a GitHub repository name.
func ValidateRepo(s string) error {
	if s == "" {
		return errRepoRequired
	}
	if len(s) > maxRepoLen {
		return errRepoTooLong
	}
	if !repoRegex.MatchString(s) {
		return errRepoInvalid
	}
	return nil
}

// ValidateBranch validates a git branch name.
func ValidateBranch(s string) error {
	if s == "" {
		return errBranchRequired
	}
	if len(s) > maxBranchLen {
		return errBranchTooLong
	}
	if !branchRegex.MatchString(s) {
		return errBranchInvalid
	}
	return nil
}
