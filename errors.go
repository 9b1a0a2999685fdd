package rscm

import "fmt"

// ParameterError reports a caller-supplied configuration value outside the
// range the core accepts (shard counts, block size, buffer lengths).
type ParameterError struct {
	Field string
	Value interface{}
	Msg   string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("rscm: parameter error: %s=%v: %s", e.Field, e.Value, e.Msg)
}

// InputError reports a problem with the actual blocks passed to Encode or
// Decode: a duplicate or out-of-range index, a missing block, or a block
// count inconsistent with the erasures present.
type InputError struct {
	Field string
	Value interface{}
	Msg   string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("rscm: input error: %s=%v: %s", e.Field, e.Value, e.Msg)
}

// InitError reports that Field initialization failed its self-test. The
// library must not be used after this; every entry point refuses to run.
type InitError struct {
	Msg string
}

func (e *InitError) Error() string {
	return fmt.Sprintf("rscm: init error: %s", e.Msg)
}

// InternalError reports a postcondition violation inside the library
// itself, such as a zero pivot surfacing during Cauchy LDU decomposition.
// It indicates a bug here, not a caller mistake.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("rscm: internal error: %s", e.Msg)
}
