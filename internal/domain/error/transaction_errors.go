// Package error defines domain-specific errors for FINDASH.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when the transaction date is missing or invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidTransactionAmount is returned when the final transaction amount is not positive.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrMissingDescription is returned when the transaction description is empty.
	ErrMissingDescription = errors.New("description is required")

	// ErrMissingCategory is returned when no category is selected for the transaction.
	ErrMissingCategory = errors.New("category is required")

	// ErrSubItemsExceedInitialAmount is returned when the user-authored sub-items
	// of an expense sum to more than the entered initial amount.
	ErrSubItemsExceedInitialAmount = errors.New("sub-items exceed initial amount")

	// ErrReservedSubItemDescription is returned when a user-authored sub-item
	// uses the reserved remainder description.
	ErrReservedSubItemDescription = errors.New("sub-item description is reserved")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010004"
	ErrCodeMissingDescription       TransactionErrorCode = "TXN-010005"
	ErrCodeMissingCategory          TransactionErrorCode = "TXN-010006"
	ErrCodeSubItemsExceedInitial    TransactionErrorCode = "TXN-010007"
	ErrCodeReservedSubItem          TransactionErrorCode = "TXN-010008"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
