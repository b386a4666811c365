package svcload

// Source represents the origin of a service load configuration value.
type Source string

const (
	// SourceFlag means the value was set explicitly on the command line.
	SourceFlag Source = "flag"
	// SourceEnvironment means the value came from an environment variable.
	SourceEnvironment Source = "environment"
	// SourceFile means the value came from a discovered service config file.
	SourceFile Source = "file"
	// SourceDefaultFile means the value came from the shared default svc.toml.
	SourceDefaultFile Source = "default-file"
	// SourceBuiltin means the value is a built-in default.
	SourceBuiltin Source = "builtin"
)

// Explicit reports whether a value from this source was deliberately provided
// by an operator or a config file, as opposed to a built-in fallback. The
// zero Source (an unset field) is not explicit.
func (s Source) Explicit() bool {
	switch s {
	case SourceFlag, SourceEnvironment, SourceFile, SourceDefaultFile:
		return true
	}
	return false
}

// IsSet reports whether the field carries a value at all.
func (s Source) IsSet() bool {
	return s != ""
}

// String returns the string representation of the Source.
func (s Source) String() string {
	if s == "" {
		return "(not set)"
	}
	return string(s)
}
