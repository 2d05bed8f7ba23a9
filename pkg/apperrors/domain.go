package apperrors

import "net/http"

// Factories and predefined errors for the auth, job and application domains.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound etc.)
// into a 404 AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists converts a duplicate-row error into a 409.
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrConflict builds a generic 409.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidStatus builds a 400 for a status value outside the enum.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrInvalidOperation builds a 400 for an operation the domain forbids.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- auth ---

var (
	// ErrIncorrectUsername: no account with the supplied username.
	ErrIncorrectUsername = New(CodeInvalidCredentials, "auth", "incorrect username", http.StatusUnauthorized)

	// ErrIncorrectPassword: hash mismatch for an existing account.
	ErrIncorrectPassword = New(CodeInvalidCredentials, "auth", "incorrect password", http.StatusUnauthorized)

	// ErrInvalidLoginMethod: password login against a phone-only account.
	ErrInvalidLoginMethod = New(CodeInvalidCredentials, "auth", "invalid login method", http.StatusUnauthorized)

	// ErrOTPExpired: the stored OTP is past its expiry and needs a re-request.
	ErrOTPExpired = New(CodeOTPExpired, "auth", "OTP expired, request a new one", http.StatusUnauthorized)

	// ErrOTPInvalid: unknown phone, no pending OTP, or value mismatch.
	ErrOTPInvalid = New(CodeOTPInvalid, "auth", "invalid OTP", http.StatusUnauthorized)

	// ErrWeakPassword: password below the minimum length.
	ErrWeakPassword = New(CodeValidationFailed, "auth", "password must be at least 6 characters", http.StatusBadRequest)

	// ErrInvalidUserRole: operation not available for the caller's role.
	ErrInvalidUserRole = New(CodeInvalidOperation, "auth", "invalid user role for this operation", http.StatusBadRequest)

	// ErrInsufficientPermissions: role check failed on a protected route.
	ErrInsufficientPermissions = New(CodeForbidden, "auth", "insufficient permissions", http.StatusForbidden)
)

// --- jobs & applications ---

var (
	ErrJobNotFound = New(CodeNotFound, "job", "job not found", http.StatusNotFound)

	// ErrJobClosed: applications against a closed posting are rejected.
	ErrJobClosed = New(CodeInvalidOperation, "job", "job is closed", http.StatusBadRequest)

	// ErrNotJobOwner: mutation attempted by an employer who does not own the job.
	ErrNotJobOwner = New(CodeForbidden, "job", "job belongs to another employer", http.StatusForbidden)

	ErrApplicationNotFound = New(CodeNotFound, "application", "application not found", http.StatusNotFound)

	// ErrDuplicateApplication: one application per (job, worker) pair.
	ErrDuplicateApplication = New(CodeAlreadyExists, "application", "already applied to this job", http.StatusConflict)
)
