package services

import "context"

// Notifier delivers account emails out-of-band. Verification delivery errors
// are reported to the caller; welcome mail is fire-and-forget and
// implementations swallow its failures.
type Notifier interface {
	SendVerificationEmail(ctx context.Context, email, code string) error
	SendWelcomeEmail(ctx context.Context, email, firstName string)
}

// TokenIssuer mints bearer tokens bound to an account email.
type TokenIssuer interface {
	Generate(email string) (string, error)
}
