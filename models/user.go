package models

import (
	"time"

	"gorm.io/gorm"
)

// Goal is the user's primary fitness objective, chosen during onboarding.
type Goal string

const (
	GoalLoseWeight     Goal = "LOSE_WEIGHT"
	GoalMaintainWeight Goal = "MAINTAIN_WEIGHT"
	GoalGainWeight     Goal = "GAIN_WEIGHT"
	GoalBuildMuscle    Goal = "BUILD_MUSCLE"
)

// ActivityLevel describes how active the user is day to day.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "SEDENTARY"
	ActivityLightlyActive    ActivityLevel = "LIGHTLY_ACTIVE"
	ActivityModeratelyActive ActivityLevel = "MODERATELY_ACTIVE"
	ActivityVeryActive       ActivityLevel = "VERY_ACTIVE"
	ActivityExtremelyActive  ActivityLevel = "EXTREMELY_ACTIVE"
)

// Gender options offered during onboarding.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// User is the single account row. Email is stored lowercased and is the
// identity key. Accounts start disabled and become enabled exactly when the
// email gets verified.
type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null" json:"-"`
	FirstName     string
	LastName      string
	EmailVerified bool `gorm:"not null;default:false"`
	Enabled       bool `gorm:"not null;default:false"`

	VerificationCode          *string
	VerificationCodeExpiresAt *time.Time

	ProfileCompleted bool `gorm:"not null;default:false"`
	Goal             *Goal
	ActivityLevel    *ActivityLevel
	CurrentWeight    *float64
	TargetWeight     *float64
	Height           *int
	Age              *int
	Gender           *Gender
}

// PendingVerification holds a verification code together with its expiry.
// The two always travel as a pair; the User columns are only touched through
// the methods below.
type PendingVerification struct {
	Code      string
	ExpiresAt time.Time
}

// SetPendingVerification stores a fresh code/expiry pair, replacing any
// previous one.
func (u *User) SetPendingVerification(p PendingVerification) {
	code := p.Code
	expiresAt := p.ExpiresAt
	u.VerificationCode = &code
	u.VerificationCodeExpiresAt = &expiresAt
}

// ClearPendingVerification removes the code and its expiry together.
func (u *User) ClearPendingVerification() {
	u.VerificationCode = nil
	u.VerificationCodeExpiresAt = nil
}

// PendingVerification returns the current code/expiry pair, or nil when no
// verification is pending. A half-set pair is treated as absent.
func (u *User) PendingVerification() *PendingVerification {
	if u.VerificationCode == nil || *u.VerificationCode == "" || u.VerificationCodeExpiresAt == nil {
		return nil
	}
	return &PendingVerification{Code: *u.VerificationCode, ExpiresAt: *u.VerificationCodeExpiresAt}
}
