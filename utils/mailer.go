package utils

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"
)

// SESMailer sends account emails through AWS SES.
type SESMailer struct {
	client *ses.Client
	source string
	logger *zap.Logger
}

// NewSESMailer constructs a mailer sending from the given verified source
// address.
func NewSESMailer(client *ses.Client, source string, logger *zap.Logger) *SESMailer {
	return &SESMailer{client: client, source: source, logger: logger}
}

// generic SES sender
func (m *SESMailer) sendEmail(ctx context.Context, to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.source),
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendVerificationEmail delivers the 6-digit verification code. Failures are
// returned to the caller, who decides whether they are fatal.
func (m *SESMailer) SendVerificationEmail(ctx context.Context, to, code string) error {
	subject := "Verify Your FitTrack Account"
	body := fmt.Sprintf(
		"Welcome to FitTrack!\n\n"+
			"Your verification code is: %s\n\n"+
			"This code will expire in 15 minutes.\n\n"+
			"If you didn't create an account with us, please ignore this email.\n\n"+
			"Best regards,\nThe FitTrack Team",
		code,
	)
	return m.sendEmail(ctx, to, subject, body)
}

// SendWelcomeEmail greets a freshly verified user. Welcome mail is
// non-essential, so failures are logged and never propagated.
func (m *SESMailer) SendWelcomeEmail(ctx context.Context, to, firstName string) {
	subject := "Welcome to FitTrack!"
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Welcome to FitTrack! Your email has been verified successfully.\n\n"+
			"You can now start tracking your fitness journey and achieving your goals.\n\n"+
			"Best regards,\nThe FitTrack Team",
		firstName,
	)
	if err := m.sendEmail(ctx, to, subject, body); err != nil {
		m.logger.Warn("failed to send welcome email", zap.String("to", to), zap.Error(err))
	}
}
