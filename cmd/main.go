package main

import (
	"context"
	"log"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"go.uber.org/zap"

	"github.com/haseebmalik18/fit-track/config"
	"github.com/haseebmalik18/fit-track/controllers"
	"github.com/haseebmalik18/fit-track/repositories"
	"github.com/haseebmalik18/fit-track/routes"
	"github.com/haseebmalik18/fit-track/services"
	"github.com/haseebmalik18/fit-track/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := utils.NewLogger(cfg.Environment)
	defer logger.Sync()

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("init database", zap.Error(err))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		logger.Fatal("load AWS config", zap.Error(err))
	}

	mailer := utils.NewSESMailer(ses.NewFromConfig(awsCfg), cfg.SESEmail, logger)
	jwtManager := utils.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	repo := repositories.NewGormUserRepository(db)

	authService := services.NewAuthService(repo, mailer, jwtManager, logger)
	authController := controllers.NewAuthController(authService, logger)
	userController := controllers.NewUserController(authService, logger)

	r := routes.SetupRouter(authController, userController, jwtManager, logger)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
