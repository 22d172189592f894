package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for common business errors.
The HTTP mapping follows the API contract: validation and duplicate
failures are 400, ownership failures are 403, absent (or not-yours)
resources are 404.
*/

// ErrNotFound converts a repository "no rows" error into a 404.
// Deliberately used for both "does not exist" and "belongs to someone
// else" so the two cases are indistinguishable to the caller.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrDuplicate covers both the pre-check and the constraint-surfaced
// path of a uniqueness violation, so callers see one error shape
// regardless of which race path was taken.
func ErrDuplicate(err error, domain, message string) *AppError {
	return Wrap(err, CodeDuplicate, domain, message, http.StatusBadRequest)
}

// ErrInvalidOperation rejects an operation the current state does not permit.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus rejects a status transition from a terminal state.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrUpstream wraps a failure of an external collaborator (mail, storage).
func ErrUpstream(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message, http.StatusBadGateway)
}

// --- Auth & account lifecycle ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid username or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInvalidVerificationCode = New(
	CodeValidationFailed,
	"auth",
	"Invalid or expired code",
	http.StatusBadRequest,
)

var ErrEmailAlreadyUsed = New(
	CodeDuplicate,
	"auth",
	"Email is already in use",
	http.StatusBadRequest,
)

var ErrUsernameAlreadyUsed = New(
	CodeDuplicate,
	"auth",
	"Username is already in use",
	http.StatusBadRequest,
)

var ErrAccountDeleted = New(
	CodeInvalidOperation,
	"auth",
	"Account has been deleted, try to recover it",
	http.StatusBadRequest,
)

var ErrAccountNotDeleted = New(
	CodeInvalidOperation,
	"auth",
	"This account has not been deleted",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Applications ---

var ErrAlreadyApplied = New(
	CodeDuplicate,
	"application",
	"You have already applied to this job",
	http.StatusBadRequest,
)

var ErrNotApplicationOwner = New(
	CodeForbidden,
	"application",
	"You can only manage your own application",
	http.StatusForbidden,
)

var ErrApplicationNotCancellable = New(
	CodeInvalidStatus,
	"application",
	"Application can no longer be cancelled",
	http.StatusBadRequest,
)

var ErrApplicationHired = New(
	CodeInvalidOperation,
	"application",
	"You cannot delete an application that is already hired",
	http.StatusBadRequest,
)

var ErrRecruiterHasNoCompany = New(
	CodeValidationFailed,
	"application",
	"Recruiter must have a company name before hiring",
	http.StatusBadRequest,
)

// --- Jobs ---

var ErrNotJobOwner = New(
	CodeForbidden,
	"job",
	"You are not allowed to manage this job",
	http.StatusForbidden,
)
