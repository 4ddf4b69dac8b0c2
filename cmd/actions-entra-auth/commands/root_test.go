package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "actions-entra-auth", cmd.Use)
	assert.Equal(t, "Federate GitHub Actions with Microsoft Entra ID", cmd.Short)
}

func TestRoot_Subcommands(t *testing.T) {
	cmd := Root()

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Use] = true
	}

	for _, want := range []string{"setup", "check", "version"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}
