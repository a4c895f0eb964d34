package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation            Kind = "ValidationError"
	KindInvalidQuantity       Kind = "InvalidQuantityError"
	KindInsufficientQuantity  Kind = "InsufficientQuantityError"
	KindDuplicateCode         Kind = "DuplicateCodeError"
	KindUnsupportedConversion Kind = "UnsupportedConversionError"
	KindInstanceScrapped      Kind = "InstanceScrappedError"
	KindNotFound              Kind = "NotFoundError"
	KindConcurrencyConflict   Kind = "ConcurrencyConflictError"
	KindInternal              Kind = "InternalError"
)

// Error is the single error type surfaced by the ledger. Two errors are
// considered equal by errors.Is when their kinds match, so callers can test
// against the sentinels below regardless of message or details.
type Error struct {
	Kind    Kind   `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Details)
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is.
var (
	ErrValidation            = &Error{Kind: KindValidation}
	ErrInvalidQuantity       = &Error{Kind: KindInvalidQuantity}
	ErrInsufficientQuantity  = &Error{Kind: KindInsufficientQuantity}
	ErrDuplicateCode         = &Error{Kind: KindDuplicateCode}
	ErrUnsupportedConversion = &Error{Kind: KindUnsupportedConversion}
	ErrInstanceScrapped      = &Error{Kind: KindInstanceScrapped}
	ErrNotFound              = &Error{Kind: KindNotFound}
	ErrConcurrencyConflict   = &Error{Kind: KindConcurrencyConflict}
	ErrInternal              = &Error{Kind: KindInternal}
)

func New(kind Kind, message, details string) *Error {
	return &Error{Kind: kind, Message: message, Details: details}
}

func Validation(field, message string) *Error {
	return New(KindValidation, message, fmt.Sprintf("field: %s", field))
}

func InvalidQuantity(message string, args ...interface{}) *Error {
	return New(KindInvalidQuantity, fmt.Sprintf(message, args...), "")
}

func InsufficientQuantity(available, requested string) *Error {
	return New(KindInsufficientQuantity, "insufficient quantity available",
		fmt.Sprintf("available: %s, requested: %s", available, requested))
}

func DuplicateCode(code string) *Error {
	return New(KindDuplicateCode, "instance code already exists", fmt.Sprintf("code: %s", code))
}

func UnsupportedConversion(batchTypeID string) *Error {
	return New(KindUnsupportedConversion, "batch type cannot be converted", fmt.Sprintf("batch_type_id: %s", batchTypeID))
}

func InstanceScrapped(instanceID string) *Error {
	return New(KindInstanceScrapped, "instance is scrapped", fmt.Sprintf("instance_id: %s", instanceID))
}

func NotFound(entity, id string) *Error {
	return New(KindNotFound, entity+" not found", fmt.Sprintf("id: %s", id))
}

func ConcurrencyConflict(instanceID string, attempts int) *Error {
	return New(KindConcurrencyConflict, "concurrent modification, retry the request",
		fmt.Sprintf("instance_id: %s, attempts: %d", instanceID, attempts))
}

func Internal(message string, err error) *Error {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return New(KindInternal, message, details)
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
