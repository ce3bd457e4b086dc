package domain

import "fmt"

// ConvertError is the base error type with context.
type ConvertError struct {
	Phase   string // "config", "scan", "load", "render", "write"
	File    string
	Message string
	Cause   error
}

func (e *ConvertError) Error() string {
	s := fmt.Sprintf("[%s]", e.Phase)
	if e.File != "" {
		s += fmt.Sprintf(" %s", e.File)
	}
	s += fmt.Sprintf(": %s", e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	return s
}

func (e *ConvertError) Unwrap() error {
	return e.Cause
}

// NewError creates a new ConvertError.
func NewError(phase, file, message string, cause error) *ConvertError {
	return &ConvertError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// StructuralError reports a technique document that cannot be rendered at
// all: a missing technique id or display name, or an empty test list.
// Every other defect in the input degrades a single field or section
// instead of aborting the conversion.
type StructuralError struct {
	TechniqueID string // may be empty when the id itself is missing
	Field       string
	Message     string
}

func (e *StructuralError) Error() string {
	id := e.TechniqueID
	if id == "" {
		id = "<unknown technique>"
	}
	return fmt.Sprintf("structural error in %s: %s: %s", id, e.Field, e.Message)
}

// NewStructuralError creates a new StructuralError.
func NewStructuralError(techniqueID, field, message string) *StructuralError {
	return &StructuralError{TechniqueID: techniqueID, Field: field, Message: message}
}
