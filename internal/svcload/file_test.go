package svcload

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile_AllFields(t *testing.T) {
	t.Setenv(BldrURLEnvVar, "")

	path := writeConfig(t, "svc.toml", `
pkg_ident = "core/redis"
channel = "unstable"
bldr_url = "https://bldr.example.com"
group = "prod"
topology = "leader"
strategy = "rolling"
update_condition = "track-channel"
bind = ["database:postgresql.default", "cache:redis.default"]
binding_mode = "relaxed"
health_check_interval = 15
shutdown_timeout = 20
force = true
config_from = "/tmp/config"
remote_sup = "10.0.0.5:9632"
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.False(t, cfg.IsEmpty())

	spec := FromPartial(cfg, SourceFile)

	// Every recognized field present means every field is explicit.
	assert.Equal(t, SourceFile, spec.PkgIdent.Source)
	assert.Equal(t, SourceFile, spec.Channel.Source)
	assert.Equal(t, SourceFile, spec.BldrURL.Source)
	assert.Equal(t, SourceFile, spec.Group.Source)
	assert.Equal(t, SourceFile, spec.Topology.Source)
	assert.Equal(t, SourceFile, spec.Strategy.Source)
	assert.Equal(t, SourceFile, spec.UpdateCondition.Source)
	assert.Equal(t, SourceFile, spec.Binds.Source)
	assert.Equal(t, SourceFile, spec.BindingMode.Source)
	assert.Equal(t, SourceFile, spec.HealthCheckInterval.Source)
	assert.Equal(t, SourceFile, spec.ShutdownTimeout.Source)
	assert.Equal(t, SourceFile, spec.Force.Source)
	assert.Equal(t, SourceFile, spec.ConfigFrom.Source)
	assert.Equal(t, SourceFile, spec.RemoteSup.Source)

	assert.Equal(t, "core/redis", spec.PkgIdent.Value)
	assert.Equal(t, []string{"database:postgresql.default", "cache:redis.default"}, spec.Binds.Values)
	assert.Equal(t, uint64(15), spec.HealthCheckInterval.Value)
	assert.Equal(t, uint64(20), spec.ShutdownTimeout.Value)
	assert.True(t, spec.Force.Value)

	require.NoError(t, spec.Validate())
}

func TestLoadFile_UnknownKey(t *testing.T) {
	path := writeConfig(t, "svc.toml", `
channel = "unstable"
chanel = "typo"
`)

	cfg, err := LoadFile(path)
	assert.Nil(t, cfg)

	var unknownErr *UnknownFieldError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "chanel", unknownErr.Key)
	assert.Equal(t, path, unknownErr.Path)
}

func TestLoadFile_MalformedDocument(t *testing.T) {
	path := writeConfig(t, "svc.toml", `channel = [unclosed`)

	cfg, err := LoadFile(path)
	assert.Nil(t, cfg)

	var malformedErr *MalformedDocumentError
	require.ErrorAs(t, err, &malformedErr)
	assert.Equal(t, path, malformedErr.Path)
}

func TestLoadFile_WrongValueType(t *testing.T) {
	path := writeConfig(t, "svc.toml", `health_check_interval = "thirty"`)

	_, err := LoadFile(path)

	var malformedErr *MalformedDocumentError
	require.ErrorAs(t, err, &malformedErr)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))

	var fsErr *FilesystemError
	require.ErrorAs(t, err, &fsErr)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadFile_InvalidEnumValue(t *testing.T) {
	path := writeConfig(t, "svc.toml", `topology = "clustered"`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid topology")
}

func TestLoadFile_InvalidBind(t *testing.T) {
	path := writeConfig(t, "svc.toml", `bind = ["no-colon-here"]`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid bind")
}

func TestLoadFile_EmptyDocument(t *testing.T) {
	path := writeConfig(t, "svc.toml", "")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.IsEmpty())
}
