package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/haseebmalik18/fit-track/models"
	"github.com/haseebmalik18/fit-track/services"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6,max=40"`
	FirstName string `json:"firstName" binding:"required,min=2,max=50"`
	LastName  string `json:"lastName" binding:"required,min=2,max=50"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type OnboardingRequest struct {
	Goal          models.Goal          `json:"goal" binding:"required,oneof=LOSE_WEIGHT MAINTAIN_WEIGHT GAIN_WEIGHT BUILD_MUSCLE"`
	ActivityLevel models.ActivityLevel `json:"activityLevel" binding:"required,oneof=SEDENTARY LIGHTLY_ACTIVE MODERATELY_ACTIVE VERY_ACTIVE EXTREMELY_ACTIVE"`
	CurrentWeight float64              `json:"currentWeight" binding:"required,gt=0"`
	TargetWeight  *float64             `json:"targetWeight" binding:"omitempty,gt=0"`
	Height        int                  `json:"height" binding:"required,min=100,max=250"`
	Age           int                  `json:"age" binding:"required,min=13,max=120"`
	Gender        models.Gender        `json:"gender" binding:"required,oneof=MALE FEMALE OTHER"`
}

// AuthResponse is the token-bearing payload returned by verify-email, login,
// and onboarding. The password hash never appears here.
type AuthResponse struct {
	Token            string `json:"token"`
	Type             string `json:"type"`
	ID               uint   `json:"id"`
	Email            string `json:"email"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	EmailVerified    bool   `json:"emailVerified"`
	ProfileCompleted bool   `json:"profileCompleted"`
}

func newAuthResponse(result *services.AuthResult) AuthResponse {
	return AuthResponse{
		Token:            result.Token,
		Type:             "Bearer",
		ID:               result.User.ID,
		Email:            result.User.Email,
		FirstName:        result.User.FirstName,
		LastName:         result.User.LastName,
		EmailVerified:    result.User.EmailVerified,
		ProfileCompleted: result.User.ProfileCompleted,
	}
}

// AuthController exposes the account lifecycle over HTTP.
type AuthController struct {
	service *services.AuthService
	logger  *zap.Logger
}

func NewAuthController(service *services.AuthService, logger *zap.Logger) *AuthController {
	return &AuthController{service: service, logger: logger}
}

// respondError maps domain failures to a 400 with their message and hides
// everything else behind a generic 500.
func (ac *AuthController) respondError(c *gin.Context, err error) {
	if services.IsDomainError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ac.logger.Error("unexpected failure",
		zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.service.Register(c.Request.Context(), services.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		ac.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Registration successful! Please check your email for verification code.",
		"email":   user.Email,
	})
}

func (ac *AuthController) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ac.service.VerifyEmail(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		ac.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAuthResponse(result))
}

func (ac *AuthController) ResendVerification(c *gin.Context) {
	var req ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ac.service.ResendVerificationCode(c.Request.Context(), req.Email); err != nil {
		ac.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent successfully"})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ac.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ac.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAuthResponse(result))
}

func (ac *AuthController) CompleteOnboarding(c *gin.Context) {
	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := c.GetString("email")
	result, err := ac.service.CompleteOnboarding(c.Request.Context(), email, services.OnboardingInput{
		Goal:          req.Goal,
		ActivityLevel: req.ActivityLevel,
		CurrentWeight: req.CurrentWeight,
		TargetWeight:  req.TargetWeight,
		Height:        req.Height,
		Age:           req.Age,
		Gender:        req.Gender,
	})
	if err != nil {
		ac.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAuthResponse(result))
}

func (ac *AuthController) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
}
