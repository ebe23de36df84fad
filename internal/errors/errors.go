package errors

import (
	"errors"
	"fmt"
	"maps"
	"sort"

	"go.uber.org/zap"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates client specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a resource that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"

	// CodeValidation indicates a record failed its invariants
	CodeValidation Code = "validation"

	// CodeSlotMismatch indicates an item was placed in a slot it does not fit
	CodeSlotMismatch Code = "slot_mismatch"

	// CodePreconditionViolation indicates an operation was invoked on state that does not allow it
	CodePreconditionViolation Code = "precondition_violation"

	// CodePersistenceFailure indicates the store was unreachable or rejected a write
	CodePersistenceFailure Code = "persistence_failure"

	// CodeInventoryFull indicates an inventory has no free capacity
	CodeInventoryFull Code = "inventory_full"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Already coded errors keep their code
	var codedErr *Error
	if errors.As(err, &codedErr) {
		return &Error{
			Code:    codedErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(codedErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper functions for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Validation creates a validation error
func Validation(message string) *Error {
	return New(CodeValidation, message)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// SlotMismatchf creates a formatted slot mismatch error
func SlotMismatchf(format string, args ...any) *Error {
	return Newf(CodeSlotMismatch, format, args...)
}

// PreconditionViolation creates a precondition violation error
func PreconditionViolation(message string) *Error {
	return New(CodePreconditionViolation, message)
}

// PreconditionViolationf creates a formatted precondition violation error
func PreconditionViolationf(format string, args ...any) *Error {
	return Newf(CodePreconditionViolation, format, args...)
}

// InventoryFullf creates a formatted inventory full error
func InventoryFullf(format string, args ...any) *Error {
	return Newf(CodeInventoryFull, format, args...)
}

// PersistenceFailure wraps a storage error, replacing whatever code it carried
func PersistenceFailure(err error, message string) *Error {
	return WrapWithCode(err, CodePersistenceFailure, message)
}

// PersistenceFailuref wraps a storage error with a formatted message
func PersistenceFailuref(err error, format string, args ...any) *Error {
	return WrapWithCode(err, CodePersistenceFailure, fmt.Sprintf(format, args...))
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var codedErr *Error
	if errors.As(err, &codedErr) {
		return codedErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

// IsSlotMismatch checks if the error is a slot mismatch error
func IsSlotMismatch(err error) bool {
	return Is(err, CodeSlotMismatch)
}

// IsPreconditionViolation checks if the error is a precondition violation error
func IsPreconditionViolation(err error) bool {
	return Is(err, CodePreconditionViolation)
}

// IsPersistenceFailure checks if the error is a persistence failure
func IsPersistenceFailure(err error) bool {
	return Is(err, CodePersistenceFailure)
}

// IsInventoryFull checks if the error is an inventory full error
func IsInventoryFull(err error) bool {
	return Is(err, CodeInventoryFull)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var codedErr *Error
	if errors.As(err, &codedErr) {
		return codedErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var codedErr *Error
	if errors.As(err, &codedErr) {
		return codedErr.Meta
	}
	return nil
}

// Fields renders the error with its code and sorted metadata for structured logs
func Fields(err error) []zap.Field {
	if err == nil {
		return nil
	}
	fields := []zap.Field{zap.Error(err), zap.String("code", string(GetCode(err)))}

	meta := GetMeta(err)
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, zap.Any(k, meta[k]))
	}
	return fields
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	return maps.Clone(meta)
}
