// Package errors provides custom error types for the depmerge system.
// These errors enable programmatic error checking across the merge engine,
// the resolver chain and the command line tool.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is is an alias for the standard library errors.Is.
var Is = errors.Is

// As is an alias for the standard library errors.As.
var As = errors.As

// Common sentinel errors for the depmerge system
var (
	// ErrInvalidResolution indicates that the only available or chosen
	// candidate for a key is not a valid resolution option.
	ErrInvalidResolution = errors.New("invalid resolution")

	// ErrAbortFile is raised by a resolver to skip the current manifest.
	// Callers catch it and continue with the next manifest.
	ErrAbortFile = errors.New("manifest merge aborted")

	// ErrAbortRun is raised by a resolver to stop the whole run.
	ErrAbortRun = errors.New("merge run aborted")

	// ErrInvalidVersion indicates that a version string could not be parsed.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrInvalidConflict indicates a conflict without any of its three sides.
	ErrInvalidConflict = errors.New("invalid conflict")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// InvalidResolutionError reports a key whose resolution failed the
// validity check.
type InvalidResolutionError struct {
	Key    string
	Source string
	Reason string
}

// Error implements the error interface
func (e *InvalidResolutionError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("invalid resolution for %s (%s): %s", e.Key, e.Source, e.Reason)
	}
	return fmt.Sprintf("invalid resolution for %s: %s", e.Key, e.Reason)
}

// Is implements errors.Is support
func (e *InvalidResolutionError) Is(target error) bool {
	return target == ErrInvalidResolution
}

// NewInvalidResolutionError creates a new InvalidResolutionError
func NewInvalidResolutionError(key, source, reason string) *InvalidResolutionError {
	return &InvalidResolutionError{Key: key, Source: source, Reason: reason}
}

// AbortScope tells how far an abort reaches.
type AbortScope int

const (
	// AbortScopeFile skips the current manifest only.
	AbortScopeFile AbortScope = iota
	// AbortScopeRun stops every remaining manifest.
	AbortScopeRun
)

// String returns the scope name.
func (s AbortScope) String() string {
	if s == AbortScopeRun {
		return "run"
	}
	return "file"
}

// AbortError is the control signal a resolver raises to stop merging.
type AbortError struct {
	Scope  AbortScope
	Reason string
}

// Error implements the error interface
func (e *AbortError) Error() string {
	base := ErrAbortFile
	if e.Scope == AbortScopeRun {
		base = ErrAbortRun
	}
	if e.Reason == "" {
		return base.Error()
	}
	return fmt.Sprintf("%s: %s", base.Error(), e.Reason)
}

// Is implements errors.Is support
func (e *AbortError) Is(target error) bool {
	switch e.Scope {
	case AbortScopeRun:
		return target == ErrAbortRun
	default:
		return target == ErrAbortFile
	}
}

// AbortFile returns a skip-this-manifest signal.
func AbortFile(reason string) *AbortError {
	return &AbortError{Scope: AbortScopeFile, Reason: reason}
}

// AbortRun returns a stop-everything signal.
func AbortRun(reason string) *AbortError {
	return &AbortError{Scope: AbortScopeRun, Reason: reason}
}

// VersionError represents a version string that failed to parse
type VersionError struct {
	Input  string
	Reason string
}

// Error implements the error interface
func (e *VersionError) Error() string {
	return fmt.Sprintf("invalid version %q: %s", e.Input, e.Reason)
}

// Is implements errors.Is support
func (e *VersionError) Is(target error) bool {
	return target == ErrInvalidVersion
}

// NewVersionError creates a new VersionError
func NewVersionError(input, reason string) *VersionError {
	return &VersionError{Input: input, Reason: reason}
}

// ConflictError reports a malformed conflict record.
type ConflictError struct {
	Key     string
	Message string
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict %s: %s", e.Key, e.Message)
}

// Is implements errors.Is support
func (e *ConflictError) Is(target error) bool {
	return target == ErrInvalidConflict
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "yaml", "json", ...
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "delete", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsInvalidResolution checks if an error is an invalid resolution error
func IsInvalidResolution(err error) bool {
	return errors.Is(err, ErrInvalidResolution)
}

// IsAbortFile checks if an error asks to skip the current manifest
func IsAbortFile(err error) bool {
	return errors.Is(err, ErrAbortFile)
}

// IsAbortRun checks if an error asks to stop the whole run
func IsAbortRun(err error) bool {
	return errors.Is(err, ErrAbortRun)
}

// IsInvalidVersion checks if an error is a version parse error
func IsInvalidVersion(err error) bool {
	return errors.Is(err, ErrInvalidVersion)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}
