package errors

import (
	"errors"
)

// Metadata keys attached to dice errors
const (
	MetaPool       = "pool"
	MetaDie        = "die"
	MetaSymbol     = "symbol"
	MetaEntityID   = "entity_id"
	MetaContext    = "context"
	MetaPath       = "path"
	MetaValidation = "validation_errors"
)

// WithPool records the dice pool the error is about
func (e *Error) WithPool(shortCodes string) *Error {
	return e.WithMeta(MetaPool, shortCodes)
}

// WithDie records the die type the error is about
func (e *Error) WithDie(dieType string) *Error {
	return e.WithMeta(MetaDie, dieType)
}

// WithSymbol records the result symbol the error is about
func (e *Error) WithSymbol(symbol string) *Error {
	return e.WithMeta(MetaSymbol, symbol)
}

// WithSession records the roll session the error is about
func (e *Error) WithSession(entityID, sessionContext string) *Error {
	return e.WithMeta(MetaEntityID, entityID).WithMeta(MetaContext, sessionContext)
}

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}
	return codeOf(err)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsResourceExhausted checks if an error is a resource exhausted error
func IsResourceExhausted(err error) bool {
	return GetCode(err) == CodeResourceExhausted
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}
