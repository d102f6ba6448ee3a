package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/haseebmalik18/fit-track/models"
	"github.com/haseebmalik18/fit-track/repositories"
	"github.com/haseebmalik18/fit-track/utils"
)

// verificationCodeTTL is how long a freshly issued code stays redeemable.
const verificationCodeTTL = 15 * time.Minute

// RegisterInput carries the registration fields after transport validation.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// OnboardingInput carries the profile fields collected at onboarding.
// TargetWeight is the only optional field.
type OnboardingInput struct {
	Goal          models.Goal
	ActivityLevel models.ActivityLevel
	CurrentWeight float64
	TargetWeight  *float64
	Height        int
	Age           int
	Gender        models.Gender
}

// AuthResult pairs a freshly issued bearer token with the account it is
// bound to.
type AuthResult struct {
	Token string
	User  *models.User
}

// AuthService orchestrates the account lifecycle: register, verify, resend,
// login, and onboarding.
type AuthService struct {
	repo     repositories.UserRepository
	notifier Notifier
	tokens   TokenIssuer
	logger   *zap.Logger
	now      func() time.Time
}

// NewAuthService wires the lifecycle service with its collaborators.
func NewAuthService(repo repositories.UserRepository, notifier Notifier, tokens TokenIssuer, logger *zap.Logger) *AuthService {
	return &AuthService{
		repo:     repo,
		notifier: notifier,
		tokens:   tokens,
		logger:   logger,
		now:      time.Now,
	}
}

// NormalizeEmail applies the one normalization policy used at every entry
// point: trim, then lowercase.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a disabled, unverified account and sends the verification
// code. A failed send is logged and swallowed; the registration stands.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	email := NormalizeEmail(input.Email)

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyRegistered
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     email,
		Password:  hashed,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
	}
	code := utils.GenerateVerificationCode()
	user.SetPendingVerification(models.PendingVerification{
		Code:      code,
		ExpiresAt: s.now().Add(verificationCodeTTL),
	})

	if err := s.repo.Create(ctx, user); err != nil {
		// The unique index is the real duplicate guard; the existence check
		// above only gives friendlier ordering under normal load.
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, err
	}

	if err := s.notifier.SendVerificationEmail(ctx, user.Email, code); err != nil {
		s.logger.Warn("failed to send verification email",
			zap.String("email", user.Email), zap.Error(err))
	}

	return user, nil
}

// VerifyEmail redeems a pending verification code. Check order is fixed so
// callers get deterministic errors: not found, already verified, no pending
// code, expired, mismatch.
func (s *AuthService) VerifyEmail(ctx context.Context, email, code string) (*AuthResult, error) {
	email = NormalizeEmail(email)
	code = strings.TrimSpace(code)

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.EmailVerified {
		return nil, ErrEmailAlreadyVerified
	}
	if user.VerificationCode == nil || strings.TrimSpace(*user.VerificationCode) == "" {
		return nil, ErrNoPendingCode
	}
	if user.VerificationCodeExpiresAt == nil || s.now().After(*user.VerificationCodeExpiresAt) {
		return nil, ErrCodeExpired
	}
	if code != *user.VerificationCode {
		return nil, ErrCodeMismatch
	}

	user.EmailVerified = true
	user.Enabled = true
	user.ClearPendingVerification()

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user.Email)
	if err != nil {
		return nil, err
	}

	s.notifier.SendWelcomeEmail(ctx, user.Email, user.FirstName)

	return &AuthResult{Token: token, User: user}, nil
}

// ResendVerificationCode replaces any pending code with a fresh one. The old
// code becomes permanently invalid. Unlike registration, a delivery failure
// here is a hard error: the new code is unusable if it never arrives.
func (s *AuthService) ResendVerificationCode(ctx context.Context, email string) error {
	email = NormalizeEmail(email)

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.EmailVerified {
		return ErrEmailAlreadyVerified
	}

	code := utils.GenerateVerificationCode()
	user.SetPendingVerification(models.PendingVerification{
		Code:      code,
		ExpiresAt: s.now().Add(verificationCodeTTL),
	})

	if err := s.repo.Save(ctx, user); err != nil {
		return err
	}

	if err := s.notifier.SendVerificationEmail(ctx, user.Email, code); err != nil {
		s.logger.Warn("failed to resend verification email",
			zap.String("email", user.Email), zap.Error(err))
		return ErrNotificationFailed
	}
	return nil
}

// Login checks credentials and issues a fresh stateless token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = NormalizeEmail(email)

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	token, err := s.tokens.Generate(user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// CompleteOnboarding writes the profile fields for the authenticated caller
// and marks the profile completed. Repeating the call overwrites the previous
// values; there is no already-onboarded guard.
func (s *AuthService) CompleteOnboarding(ctx context.Context, email string, input OnboardingInput) (*AuthResult, error) {
	email = NormalizeEmail(email)

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	goal := input.Goal
	activity := input.ActivityLevel
	currentWeight := input.CurrentWeight
	height := input.Height
	age := input.Age
	gender := input.Gender

	user.Goal = &goal
	user.ActivityLevel = &activity
	user.CurrentWeight = &currentWeight
	user.TargetWeight = input.TargetWeight
	user.Height = &height
	user.Age = &age
	user.Gender = &gender
	user.ProfileCompleted = true

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// GetProfile returns the account for the authenticated caller.
func (s *AuthService) GetProfile(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
