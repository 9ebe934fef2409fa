package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to repeat an action that may only happen once,
// such as a second vote from the same member.
var ErrDuplicate = errors.New("resource already exists")

// ErrStateConflict indicates a status transition that the item's current state does not allow.
var ErrStateConflict = errors.New("state transition not allowed")

// ErrForbidden indicates the acting member lacks the role required for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInconsistentState indicates stored data that cannot support the operation,
// e.g. a withdrawal request whose member no longer exists.
var ErrInconsistentState = errors.New("inconsistent state")

// ErrUnavailable indicates an external collaborator is not configured or failed.
var ErrUnavailable = errors.New("dependency unavailable")
