package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	cmd := Check()

	require.NotNil(t, cmd)
	assert.Equal(t, "check", cmd.Use)
	assert.Equal(t, "Verify local tools and the Azure CLI session", cmd.Short)
	assert.Contains(t, cmd.Long, "Nothing is created")
}

func TestCheck_RunE(t *testing.T) {
	cmd := Check()
	assert.NotNil(t, cmd.RunE, "Check command should have RunE function")
}
