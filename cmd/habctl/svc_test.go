// cmd/habctl/svc_test.go
package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habtools/habctl/internal/svcload"
)

func newFlagFixture(t *testing.T) (*cobra.Command, *sharedLoadFlags) {
	t.Helper()
	flags := &sharedLoadFlags{}
	cmd := &cobra.Command{Use: "load"}
	flags.register(cmd)
	return cmd, flags
}

func TestSharedLoadFlags_UnchangedFlagsStayOutOfPartial(t *testing.T) {
	cmd, flags := newFlagFixture(t)

	fc := flags.partial(cmd, "core/redis")

	require.NotNil(t, fc.PkgIdent)
	assert.Equal(t, "core/redis", *fc.PkgIdent)
	// Flag defaults must not enter the partial, or they would shadow
	// config file values during patching.
	assert.Nil(t, fc.Channel)
	assert.Nil(t, fc.Group)
	assert.Nil(t, fc.HealthCheckInterval)
	assert.Nil(t, fc.Force)
}

func TestSharedLoadFlags_ChangedFlagsEnterPartial(t *testing.T) {
	cmd, flags := newFlagFixture(t)

	require.NoError(t, cmd.Flags().Set("channel", "unstable"))
	require.NoError(t, cmd.Flags().Set("shutdown-timeout", "20"))
	require.NoError(t, cmd.Flags().Set("bind", "database:postgresql.default"))
	require.NoError(t, cmd.Flags().Set("force", "true"))

	fc := flags.partial(cmd, "core/redis")

	require.NotNil(t, fc.Channel)
	assert.Equal(t, "unstable", *fc.Channel)
	require.NotNil(t, fc.ShutdownTimeout)
	assert.Equal(t, uint64(20), *fc.ShutdownTimeout)
	assert.Equal(t, []string{"database:postgresql.default"}, fc.Bind)
	require.NotNil(t, fc.Force)
	assert.True(t, *fc.Force)

	assert.Nil(t, fc.Group)
}

func TestSharedLoadFlags_ExplicitDefaultValueIsStillExplicit(t *testing.T) {
	t.Setenv(svcload.BldrURLEnvVar, "")
	cmd, flags := newFlagFixture(t)

	// Passing --channel stable on the command line pins the value even
	// though it equals the built-in default.
	require.NoError(t, cmd.Flags().Set("channel", "stable"))

	spec := svcload.FromPartial(flags.partial(cmd, "core/redis"), svcload.SourceFlag)

	assert.Equal(t, svcload.SourceFlag, spec.Channel.Source)
	assert.True(t, spec.Channel.Source.Explicit())
}
