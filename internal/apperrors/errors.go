package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
// Raised before any state is mutated.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStorage indicates that reading, writing or listing the underlying storage failed.
var ErrStorage = errors.New("storage error")

// ErrPrintTransport indicates that a finished receipt could not be delivered to the printer.
// The sale it belongs to is already final.
var ErrPrintTransport = errors.New("print transport error")

// ErrParse indicates a malformed ledger record name or body.
var ErrParse = errors.New("ledger parse error")

// ErrUnauthorized indicates invalid operator credentials.
var ErrUnauthorized = errors.New("unauthorized")
