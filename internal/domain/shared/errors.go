package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	cause   error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/errors.As
func (e *DomainError) Unwrap() error {
	return e.cause
}

// Is matches domain errors by code so wrapped instances compare equal
// to their sentinel
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidID         = NewDomainError("INVALID_ID", "Invalid employee ID format")
	ErrInvalidName       = NewDomainError("INVALID_NAME", "Invalid name")
	ErrInvalidDepartment = NewDomainError("INVALID_DEPARTMENT", "Invalid department")
	ErrInvalidSalary     = NewDomainError("INVALID_SALARY", "Invalid salary")
	ErrInvalidContact    = NewDomainError("INVALID_CONTACT", "Invalid contact email")
	ErrDuplicateID       = NewDomainError("DUPLICATE_ID", "Employee ID already exists")
	ErrDuplicateContact  = NewDomainError("DUPLICATE_CONTACT", "Contact email already exists")
	ErrNotFound          = NewDomainError("NOT_FOUND", "Employee not found")
	ErrStorage           = NewDomainError("STORAGE_ERROR", "Storage operation failed")
	ErrNotification      = NewDomainError("NOTIFICATION_ERROR", "Notification delivery failed")
)

// NewStorageError wraps a load/save failure with its underlying cause
func NewStorageError(cause error) *DomainError {
	return &DomainError{Code: ErrStorage.Code, Message: ErrStorage.Message, cause: cause}
}

// NewNotificationError wraps a delivery failure with its underlying cause
func NewNotificationError(cause error) *DomainError {
	return &DomainError{Code: ErrNotification.Code, Message: ErrNotification.Message, cause: cause}
}
