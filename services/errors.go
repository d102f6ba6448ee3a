package services

import "errors"

// Domain errors surfaced to API callers. Anything else coming out of the
// service layer is an internal failure and must not leak its detail.
var (
	ErrEmailAlreadyRegistered = errors.New("email is already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyVerified   = errors.New("email is already verified")
	ErrNoPendingCode          = errors.New("no verification code found, please request a new one")
	ErrCodeExpired            = errors.New("verification code has expired, please request a new one")
	ErrCodeMismatch           = errors.New("invalid verification code")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailNotVerified       = errors.New("email is not verified")
	ErrNotificationFailed     = errors.New("failed to send verification email")
)

// IsDomainError reports whether err is one of the user-visible failures above.
func IsDomainError(err error) bool {
	for _, domainErr := range []error{
		ErrEmailAlreadyRegistered,
		ErrUserNotFound,
		ErrEmailAlreadyVerified,
		ErrNoPendingCode,
		ErrCodeExpired,
		ErrCodeMismatch,
		ErrInvalidCredentials,
		ErrEmailNotVerified,
		ErrNotificationFailed,
	} {
		if errors.Is(err, domainErr) {
			return true
		}
	}
	return false
}
