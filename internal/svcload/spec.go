// Package svcload resolves the effective configuration for Supervisor
// service load operations. Values are layered from command-line flags,
// discovered service config files, the shared default svc.toml, and built-in
// defaults; each field carries its source so later merges never overwrite a
// value an operator set explicitly.
package svcload

import (
	"fmt"
	"os"
	"strings"
)

// Built-in defaults for service load fields that have one.
const (
	DefaultChannel             = "stable"
	DefaultBldrURL             = "https://bldr.habitat.sh"
	DefaultGroup               = "default"
	DefaultStrategy            = "none"
	DefaultUpdateCondition     = "latest"
	DefaultBindingMode         = "strict"
	DefaultHealthCheckInterval = 30
)

// BldrURLEnvVar overrides the built-in Builder endpoint when set.
const BldrURLEnvVar = "HAB_BLDR_URL"

// Allowed values for the enumerated fields.
var (
	Topologies       = []string{"standalone", "leader"}
	Strategies       = []string{"none", "at-once", "rolling"}
	UpdateConditions = []string{"latest", "track-channel"}
	BindingModes     = []string{"strict", "relaxed"}
)

// LoadSpec is the resolved set of parameters needed to load one service.
// The field set is fixed; every field tracks where its value came from.
// A LoadSpec is immutable once resolution completes.
type LoadSpec struct {
	// PkgIdent identifies the package to load (ex: core/redis). It has no
	// built-in default and must be provided by some source.
	PkgIdent StringValue

	Channel         StringValue
	BldrURL         StringValue
	Group           StringValue
	Topology        StringValue // optional: standalone or leader
	Strategy        StringValue
	UpdateCondition StringValue
	Binds           StringsValue
	BindingMode     StringValue

	// HealthCheckInterval is the interval in seconds on which to run health
	// checks.
	HealthCheckInterval UintValue

	// ShutdownTimeout is the delay in seconds after sending the shutdown
	// signal before killing the service process. Optional; when unset the
	// package's own default applies.
	ShutdownTimeout UintValue

	// Force reloads an already loaded service, restarting it if running.
	Force BoolValue

	// ConfigFrom uses the package config from this path rather than the
	// package itself. Optional.
	ConfigFrom StringValue

	// RemoteSup is the address of the Supervisor's control gateway.
	// Optional; the dialer falls back to the local gateway.
	RemoteSup StringValue
}

// NewLoadSpec returns a LoadSpec where every field holds its built-in
// default, or is unset for fields without one (pkg_ident, topology,
// shutdown_timeout, config_from, remote_sup). The Builder endpoint honors
// HAB_BLDR_URL when present.
func NewLoadSpec() *LoadSpec {
	s := &LoadSpec{
		Channel:             NewStringValue(DefaultChannel),
		BldrURL:             NewStringValue(DefaultBldrURL),
		Group:               NewStringValue(DefaultGroup),
		Strategy:            NewStringValue(DefaultStrategy),
		UpdateCondition:     NewStringValue(DefaultUpdateCondition),
		Binds:               NewStringsValue(nil),
		BindingMode:         NewStringValue(DefaultBindingMode),
		HealthCheckInterval: NewUintValue(DefaultHealthCheckInterval),
		Force:               NewBoolValue(false),
	}
	if url := os.Getenv(BldrURLEnvVar); url != "" {
		s.BldrURL = StringValue{Value: url, Source: SourceEnvironment}
	}
	return s
}

// FromPartial builds a LoadSpec from a partial field set. Fields present in
// the partial are tagged with the given source; everything else falls back
// to the built-in default or stays unset.
func FromPartial(fc *FileConfig, src Source) *LoadSpec {
	s := NewLoadSpec()
	if fc == nil {
		return s
	}
	if fc.PkgIdent != nil {
		s.PkgIdent = StringValue{Value: *fc.PkgIdent, Source: src}
	}
	if fc.Channel != nil {
		s.Channel = StringValue{Value: *fc.Channel, Source: src}
	}
	if fc.BldrURL != nil {
		s.BldrURL = StringValue{Value: *fc.BldrURL, Source: src}
	}
	if fc.Group != nil {
		s.Group = StringValue{Value: *fc.Group, Source: src}
	}
	if fc.Topology != nil {
		s.Topology = StringValue{Value: *fc.Topology, Source: src}
	}
	if fc.Strategy != nil {
		s.Strategy = StringValue{Value: *fc.Strategy, Source: src}
	}
	if fc.UpdateCondition != nil {
		s.UpdateCondition = StringValue{Value: *fc.UpdateCondition, Source: src}
	}
	if fc.Bind != nil {
		s.Binds = StringsValue{Values: append([]string(nil), fc.Bind...), Source: src}
	}
	if fc.BindingMode != nil {
		s.BindingMode = StringValue{Value: *fc.BindingMode, Source: src}
	}
	if fc.HealthCheckInterval != nil {
		s.HealthCheckInterval = UintValue{Value: *fc.HealthCheckInterval, Source: src}
	}
	if fc.ShutdownTimeout != nil {
		s.ShutdownTimeout = UintValue{Value: *fc.ShutdownTimeout, Source: src}
	}
	if fc.Force != nil {
		s.Force = BoolValue{Value: *fc.Force, Source: src}
	}
	if fc.ConfigFrom != nil {
		s.ConfigFrom = StringValue{Value: *fc.ConfigFrom, Source: src}
	}
	if fc.RemoteSup != nil {
		s.RemoteSup = StringValue{Value: *fc.RemoteSup, Source: src}
	}
	return s
}

// Validate checks a fully resolved LoadSpec. Package identity has no
// built-in default, so a spec that never received one is rejected.
func (s *LoadSpec) Validate() error {
	if !s.PkgIdent.Source.IsSet() || s.PkgIdent.Value == "" {
		return &MissingRequiredFieldError{Field: "pkg_ident"}
	}
	if s.Topology.Source.IsSet() {
		if err := validateOneOf("topology", s.Topology.Value, Topologies); err != nil {
			return err
		}
	}
	if err := validateOneOf("strategy", s.Strategy.Value, Strategies); err != nil {
		return err
	}
	if err := validateOneOf("update_condition", s.UpdateCondition.Value, UpdateConditions); err != nil {
		return err
	}
	if err := validateOneOf("binding_mode", s.BindingMode.Value, BindingModes); err != nil {
		return err
	}
	for _, bind := range s.Binds.Values {
		if err := validateBind(bind); err != nil {
			return err
		}
	}
	return nil
}

func validateOneOf(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s: %q (must be one of: %s)", field, value, strings.Join(allowed, ", "))
}

// validateBind checks the name:service.group bind form
// (ex: database:postgresql.default).
func validateBind(bind string) error {
	name, group, ok := strings.Cut(bind, ":")
	if !ok || name == "" || !strings.Contains(group, ".") {
		return fmt.Errorf("invalid bind: %q (expected name:service.group)", bind)
	}
	return nil
}
