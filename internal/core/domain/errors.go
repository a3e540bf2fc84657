package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPayloadType indicates a payload type with no object key layout
	ErrUnknownPayloadType = errors.New("unknown payload type")

	// ErrUnknownWorkflow indicates a workflow (or workflow/data type pair) missing from the lookup tables
	ErrUnknownWorkflow = errors.New("unknown workflow or data type")

	// ErrUnknownDataType indicates a filename that matched no classification rule
	ErrUnknownDataType = errors.New("unknown data type")

	// ErrUnsupportedCaller indicates a variant caller the variant-calling payload does not support
	ErrUnsupportedCaller = errors.New("unsupported variant caller")

	// ErrMissingField indicates a required metadata or payload field is absent or empty
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidField indicates a field whose value cannot be used as an object key segment
	ErrInvalidField = errors.New("invalid field")

	// ErrMissingIndexFile indicates an aligned reads file has no .bai/.crai companion
	ErrMissingIndexFile = errors.New("missing index file")
)

// FieldError names the field that failed validation
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func missingField(field string) error {
	return &FieldError{Field: field, Err: ErrMissingField}
}

func invalidField(field string) error {
	return &FieldError{Field: field, Err: ErrInvalidField}
}

// ExternalCommandError is returned when a subprocess fails to launch or exits non-zero
type ExternalCommandError struct {
	Command string
	Code    int // -1 when the process never started
	Stderr  string
	Err     error
}

func (e *ExternalCommandError) Error() string {
	if e.Code < 0 {
		return fmt.Sprintf("execution of %s failed: %v", e.Command, e.Err)
	}
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with return code %d: %s", e.Command, e.Code, e.Stderr)
	}
	return fmt.Sprintf("%s exited with return code %d", e.Command, e.Code)
}

func (e *ExternalCommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the code the process should exit with for this failure
func (e *ExternalCommandError) ExitCode() int {
	if e.Code > 0 {
		return e.Code
	}
	return 1
}
