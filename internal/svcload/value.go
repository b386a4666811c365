package svcload

// StringValue represents a string configuration value with its source.
type StringValue struct {
	Value  string
	Source Source
}

// UintValue represents an unsigned integer configuration value with its source.
type UintValue struct {
	Value  uint64
	Source Source
}

// BoolValue represents a bool configuration value with its source.
type BoolValue struct {
	Value  bool
	Source Source
}

// StringsValue represents an ordered list of string values sharing one source.
// Used for service binds, where order is significant.
type StringsValue struct {
	Values []string
	Source Source
}

// NewStringValue creates a new StringValue with builtin source.
func NewStringValue(value string) StringValue {
	return StringValue{Value: value, Source: SourceBuiltin}
}

// NewUintValue creates a new UintValue with builtin source.
func NewUintValue(value uint64) UintValue {
	return UintValue{Value: value, Source: SourceBuiltin}
}

// NewBoolValue creates a new BoolValue with builtin source.
func NewBoolValue(value bool) BoolValue {
	return BoolValue{Value: value, Source: SourceBuiltin}
}

// NewStringsValue creates a new StringsValue with builtin source.
func NewStringsValue(values []string) StringsValue {
	return StringsValue{Values: values, Source: SourceBuiltin}
}
