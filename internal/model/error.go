package model

// Standard error codes for API responses
const (
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// DomainError is a business failure surfaced to the caller as a
// structured result: a stable code plus a human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error with a field-level reason.
func NewValidationError(message string) *DomainError {
	return NewDomainError(ErrCodeValidation, message)
}

// Common domain errors
var (
	ErrItemNotFound    = NewDomainError(ErrCodeNotFound, "Food item not found")
	ErrOrderNotFound   = NewDomainError(ErrCodeNotFound, "Order not found")
	ErrUnauthorised    = NewDomainError(ErrCodeUnauthorised, "Invalid admin secret")
	ErrNegativePrice   = NewValidationError("Price must not be negative")
	ErrInvalidQuantity = NewValidationError("Quantity must be greater than zero")
	ErrEmptyOrder      = NewValidationError("Order must contain at least one item")
	ErrInvalidStatus   = NewValidationError("Status must be one of PENDING, PROCESSING, COMPLETED, CANCELLED")

	ErrStorageUnavailable = NewDomainError(ErrCodeStorageUnavailable, "Storage unavailable")
)
