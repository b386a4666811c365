package svcload

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// FileConfig represents the raw contents of one service config file.
// All fields are pointers (or nil slices) to distinguish "not set" from
// "set to zero/false".
type FileConfig struct {
	PkgIdent            *string  `toml:"pkg_ident"`
	Channel             *string  `toml:"channel"`
	BldrURL             *string  `toml:"bldr_url"`
	Group               *string  `toml:"group"`
	Topology            *string  `toml:"topology"`
	Strategy            *string  `toml:"strategy"`
	UpdateCondition     *string  `toml:"update_condition"`
	Bind                []string `toml:"bind"`
	BindingMode         *string  `toml:"binding_mode"`
	HealthCheckInterval *uint64  `toml:"health_check_interval"`
	ShutdownTimeout     *uint64  `toml:"shutdown_timeout"`
	Force               *bool    `toml:"force"`
	ConfigFrom          *string  `toml:"config_from"`
	RemoteSup           *string  `toml:"remote_sup"`
}

// knownFileKeys is the recognized field set for service config files.
// Any other key is a hard parse error.
var knownFileKeys = map[string]bool{
	"pkg_ident":             true,
	"channel":               true,
	"bldr_url":              true,
	"group":                 true,
	"topology":              true,
	"strategy":              true,
	"update_condition":      true,
	"bind":                  true,
	"binding_mode":          true,
	"health_check_interval": true,
	"shutdown_timeout":      true,
	"force":                 true,
	"config_from":           true,
	"remote_sup":            true,
}

// LoadFile reads and parses a single service config file into a partial
// field set. The only side effect is the one read.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FilesystemError{Path: path, Err: err}
	}
	return parseFileConfig(path, data)
}

func parseFileConfig(path string, data []byte) (*FileConfig, error) {
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedDocumentError{Path: path, Err: err}
	}

	// Reject unrecognized keys in a stable order.
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if !knownFileKeys[key] {
			return nil, &UnknownFieldError{Path: path, Key: key}
		}
	}

	var cfg FileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, &MalformedDocumentError{Path: path, Err: err}
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// validate checks enumerated fields before merging, so a bad value is
// reported against the file it came from rather than the resolved spec.
func (f *FileConfig) validate() error {
	if f.Topology != nil {
		if err := validateOneOf("topology", *f.Topology, Topologies); err != nil {
			return err
		}
	}
	if f.Strategy != nil {
		if err := validateOneOf("strategy", *f.Strategy, Strategies); err != nil {
			return err
		}
	}
	if f.UpdateCondition != nil {
		if err := validateOneOf("update_condition", *f.UpdateCondition, UpdateConditions); err != nil {
			return err
		}
	}
	if f.BindingMode != nil {
		if err := validateOneOf("binding_mode", *f.BindingMode, BindingModes); err != nil {
			return err
		}
	}
	for _, bind := range f.Bind {
		if err := validateBind(bind); err != nil {
			return err
		}
	}
	return nil
}

// IsEmpty returns true if no configuration values are set.
func (f *FileConfig) IsEmpty() bool {
	return f.PkgIdent == nil &&
		f.Channel == nil &&
		f.BldrURL == nil &&
		f.Group == nil &&
		f.Topology == nil &&
		f.Strategy == nil &&
		f.UpdateCondition == nil &&
		f.Bind == nil &&
		f.BindingMode == nil &&
		f.HealthCheckInterval == nil &&
		f.ShutdownTimeout == nil &&
		f.Force == nil &&
		f.ConfigFrom == nil &&
		f.RemoteSup == nil
}
