package svcload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func uintPtr(u uint64) *uint64 { return &u }

func boolPtr(b bool) *bool { return &b }

func TestPatch_ExplicitBaseWins(t *testing.T) {
	t.Setenv(BldrURLEnvVar, "")

	base := FromPartial(&FileConfig{Channel: strPtr("unstable")}, SourceFlag)
	overlay := FromPartial(&FileConfig{Channel: strPtr("stable-2024")}, SourceDefaultFile)

	result := Patch(base, overlay)

	assert.Equal(t, "unstable", result.Channel.Value)
	assert.Equal(t, SourceFlag, result.Channel.Source)
}

func TestPatch_ExplicitOverlayFillsDefaultedBase(t *testing.T) {
	t.Setenv(BldrURLEnvVar, "")

	base := FromPartial(&FileConfig{Channel: strPtr("unstable")}, SourceFile)
	overlay := FromPartial(&FileConfig{HealthCheckInterval: uintPtr(60)}, SourceDefaultFile)

	result := Patch(base, overlay)

	// The base's builtin default gives way to the overlay's explicit value,
	// and the result adopts the overlay's source.
	assert.Equal(t, uint64(60), result.HealthCheckInterval.Value)
	assert.Equal(t, SourceDefaultFile, result.HealthCheckInterval.Source)
}

func TestPatch_ExplicitOverlayFillsUnsetBase(t *testing.T) {
	t.Setenv(BldrURLEnvVar, "")

	base := NewLoadSpec()
	overlay := FromPartial(&FileConfig{PkgIdent: strPtr("core/redis")}, SourceDefaultFile)

	result := Patch(base, overlay)

	assert.Equal(t, "core/redis", result.PkgIdent.Value)
	assert.Equal(t, SourceDefaultFile, result.PkgIdent.Source)
}

func TestPatch_BothDefaultedKeepsBase(t *testing.T) {
	t.Setenv(BldrURLEnvVar, "")

	base := NewLoadSpec()
	overlay := NewLoadSpec()
	overlay.Group = NewStringValue("other")

	result := Patch(base, overlay)

	assert.Equal(t, DefaultGroup, result.Group.Value)
	assert.Equal(t, SourceBuiltin, result.Group.Source)
}

func TestPatch_BothUnsetStaysUnset(t *testing.T) {
	t.Setenv(BldrURLEnvVar, "")

	result := Patch(NewLoadSpec(), NewLoadSpec())

	assert.False(t, result.PkgIdent.Source.IsSet())
	assert.False(t, result.Topology.Source.IsSet())
	assert.False(t, result.ShutdownTimeout.Source.IsSet())
}

func TestPatch_Idempotent(t *testing.T) {
	t.Setenv(BldrURLEnvVar, "")

	base := FromPartial(&FileConfig{
		PkgIdent: strPtr("core/redis"),
		Channel:  strPtr("unstable"),
	}, SourceFile)
	overlay := FromPartial(&FileConfig{
		Group:               strPtr("prod"),
		HealthCheckInterval: uintPtr(15),
	}, SourceDefaultFile)

	once := Patch(base, overlay)
	twice := Patch(once, overlay)

	assert.Equal(t, once, twice)
}

func TestPatch_NotCommutativeOnConflict(t *testing.T) {
	t.Setenv(BldrURLEnvVar, "")

	a := FromPartial(&FileConfig{Channel: strPtr("unstable")}, SourceFlag)
	b := FromPartial(&FileConfig{Channel: strPtr("stable-2024")}, SourceDefaultFile)

	// The base always wins a conflict of two explicit values, in either
	// direction.
	assert.Equal(t, "unstable", Patch(a, b).Channel.Value)
	assert.Equal(t, "stable-2024", Patch(b, a).Channel.Value)
}

func TestPatch_BindsAreCopied(t *testing.T) {
	t.Setenv(BldrURLEnvVar, "")

	overlay := FromPartial(&FileConfig{Bind: []string{"database:postgresql.default"}}, SourceDefaultFile)
	result := Patch(NewLoadSpec(), overlay)

	require.Equal(t, []string{"database:postgresql.default"}, result.Binds.Values)
	result.Binds.Values[0] = "mutated"
	assert.Equal(t, "database:postgresql.default", overlay.Binds.Values[0])
}

// Scenario from the resolution design: the shared default file provides
// health_check_interval, a discovered file provides only channel. The
// resolved spec takes channel from its own file and the interval from the
// default file, both explicit.
func TestPatch_DefaultFileFillsDiscoveredFile(t *testing.T) {
	t.Setenv(BldrURLEnvVar, "")

	svcA := FromPartial(&FileConfig{
		PkgIdent: strPtr("core/svc-a"),
		Channel:  strPtr("unstable"),
	}, SourceFile)
	defaults := FromPartial(&FileConfig{HealthCheckInterval: uintPtr(30)}, SourceDefaultFile)

	result := Patch(svcA, defaults)

	assert.Equal(t, "unstable", result.Channel.Value)
	assert.Equal(t, SourceFile, result.Channel.Source)
	assert.Equal(t, uint64(30), result.HealthCheckInterval.Value)
	assert.Equal(t, SourceDefaultFile, result.HealthCheckInterval.Source)
}

// Scenario: the CLI provides --shutdown-timeout 20 and the default file
// provides none; the resolved timeout is 20, explicit.
func TestPatch_FlagShutdownTimeoutSurvives(t *testing.T) {
	t.Setenv(BldrURLEnvVar, "")

	cli := FromPartial(&FileConfig{
		PkgIdent:        strPtr("core/redis"),
		ShutdownTimeout: uintPtr(20),
	}, SourceFlag)
	defaults := NewLoadSpec()

	result := Patch(cli, defaults)

	assert.Equal(t, uint64(20), result.ShutdownTimeout.Value)
	assert.Equal(t, SourceFlag, result.ShutdownTimeout.Source)
	require.NoError(t, result.Validate())
}
