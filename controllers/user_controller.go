package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/haseebmalik18/fit-track/services"
	"github.com/haseebmalik18/fit-track/utils"
)

// UserController serves the authenticated profile view.
type UserController struct {
	service *services.AuthService
	logger  *zap.Logger
}

func NewUserController(service *services.AuthService, logger *zap.Logger) *UserController {
	return &UserController{service: service, logger: logger}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	user, err := uc.service.GetProfile(c.Request.Context(), c.GetString("email"))
	if err != nil {
		if services.IsDomainError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		uc.logger.Error("load profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	profile := gin.H{
		"id":               user.ID,
		"email":            user.Email,
		"firstName":        user.FirstName,
		"lastName":         user.LastName,
		"emailVerified":    user.EmailVerified,
		"profileCompleted": user.ProfileCompleted,
		"goal":             user.Goal,
		"activityLevel":    user.ActivityLevel,
		"currentWeight":    user.CurrentWeight,
		"targetWeight":     user.TargetWeight,
		"height":           user.Height,
		"age":              user.Age,
		"gender":           user.Gender,
	}

	if user.Height != nil && user.CurrentWeight != nil {
		if bmi, err := utils.CalculateBMI(*user.Height, *user.CurrentWeight); err == nil {
			profile["bmi"] = bmi
			profile["bmiCategory"] = utils.BMICategory(bmi)
		}
	}

	c.JSON(http.StatusOK, profile)
}
