package svcload

import "fmt"

// MalformedDocumentError indicates a service config file that could not be
// parsed as TOML.
type MalformedDocumentError struct {
	Path string
	Err  error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed service config %s: %v", e.Path, e.Err)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Err }

// UnknownFieldError indicates a key in a service config file that is not part
// of the recognized field set. Unknown keys are rejected rather than ignored
// so typos surface immediately.
type UnknownFieldError struct {
	Path string
	Key  string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown key %q in service config %s", e.Key, e.Path)
}

// FilesystemError indicates a traversal or read failure during config
// discovery.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// MissingRequiredFieldError indicates a field with no built-in default that
// remained unset after full patch resolution.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("required field %s was not provided by any source", e.Field)
}
