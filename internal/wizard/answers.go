package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/paul-mccormack/actions-entra-auth/internal/github"
	"github.com/paul-mccormack/actions-entra-auth/internal/provision"
)

// Answers holds everything the wizard collects. Fields pre-seeded from an
// answers file skip their prompts, which allows scripted runs.
type Answers struct {
	Owner  string `yaml:"owner"`
	Repo   string `yaml:"repo"`
	Branch string `yaml:"branch"`

	DisplayName string `yaml:"display_name"`
	Role        string `yaml:"role"`

	// Scope is one of management-group, subscription, resource-group.
	Scope           string `yaml:"scope"`
	ManagementGroup string `yaml:"management_group"`
	SubscriptionID  string `yaml:"subscription_id"`
	ResourceGroup   string `yaml:"resource_group"`

	// AutoApprove skips the subject confirmation, for scripted runs.
	AutoApprove bool `yaml:"auto_approve"`

	// Accessible switches prompts to accessible rendering. Set from the
	// command line, not the file.
	Accessible bool `yaml:"-"`
}

// Load reads answers from a YAML file and validates the pre-seeded values.
func Load(path string) (*Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}

	ans := &Answers{}
	if err := yaml.Unmarshal(data, ans); err != nil {
		return nil, fmt.Errorf("parse answers file: %w", err)
	}
	if err := ans.Validate(); err != nil {
		return nil, fmt.Errorf("answers file %s: %w", path, err)
	}
	return ans, nil
}

// Validate checks every pre-seeded value that has a validation rule. Empty
// fields are left for the prompts.
func (a *Answers) Validate() error {
	if a.Owner != "" {
		if err := github.ValidateOwner(a.Owner); err != nil {
			return err
		}
	}
	if a.Repo != "" {
		if err := github.ValidateRepo(a.Repo); err != nil {
			return err
		}
	}
	if a.Branch != "" {
		if err := github.ValidateBranch(a.Branch); err != nil {
			return err
		}
	}
	if a.DisplayName != "" {
		if err := validateDisplayName(a.DisplayName); err != nil {
			return err
		}
	}
	if a.Scope != "" {
		switch provision.ScopeKind(a.Scope) {
		case provision.ScopeManagementGroup, provision.ScopeSubscription, provision.ScopeResourceGroup:
		default:
			return fmt.Errorf("scope must be one of %s, %s, %s",
				provision.ScopeManagementGroup, provision.ScopeSubscription, provision.ScopeResourceGroup)
		}
	}
	return nil
}
