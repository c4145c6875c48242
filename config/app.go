package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"campus-trade-api/config/common"
	"campus-trade-api/config/logger"
	"campus-trade-api/handler"
	"campus-trade-api/mail"
	"campus-trade-api/middleware"
	"campus-trade-api/repository"
	"campus-trade-api/routes"
	"campus-trade-api/security"
	"campus-trade-api/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	AppLog *logger.AppLogger
	*DBConfig
	*security.JWT
	*middleware.Middleware
	Mailer mail.Mailer
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	log := NewLogger()
	appLog := logger.NewLogger()
	newDB := NewDB(newConfig, appLog)
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig)
	newMiddleware := middleware.NewMiddleware(newConfig, newJWT, log)
	newMailer := mail.NewSMTPMailer(newConfig, log)

	app.Use(cors.New(cors.Config{
		AllowOrigins: newConfig.GetCORSOrigins(),
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	App(&AppConfig{
		App:        app,
		Validate:   newValidator,
		Logger:     log,
		AppLog:     appLog,
		DBConfig:   newDB,
		JWT:        newJWT,
		Middleware: newMiddleware,
		Mailer:     newMailer,
	})

	if err := app.Listen(":" + newConfig.GetServerPort()); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	newAuthRepository := repository.NewAuthRepository()
	newUserRepository := repository.NewUserRepository()
	newOTPRepository := repository.NewOTPRepository()
	newListingRepository := repository.NewListingRepository()
	newConversationRepository := repository.NewConversationRepository()
	newMessageRepository := repository.NewMessageRepository()
	newReviewRepository := repository.NewReviewRepository()
	newFavoriteRepository := repository.NewFavoriteRepository()

	conversationStore := repository.NewGormConversationStore(aC.GetDB(), newConversationRepository, newUserRepository, newListingRepository)
	messageStore := repository.NewGormMessageStore(aC.GetDB(), newMessageRepository, newConversationRepository, newUserRepository)

	newAuthUsecase := usecase.NewAuthUsecase(newAuthRepository, newOTPRepository, aC.Validate, aC.GetDB(), aC.Logger, aC.JWT, aC.Mailer)
	newUserUsecase := usecase.NewUserUsecase(newUserRepository, aC.Validate, aC.GetDB(), aC.AppLog, aC.JWT)
	newListingUsecase := usecase.NewListingUsecase(newListingRepository, aC.Validate, aC.GetDB(), aC.Logger)
	newConversationUsecase := usecase.NewConversationUsecase(conversationStore, aC.Logger)
	newMessageUsecase := usecase.NewMessageUsecase(messageStore, newConversationUsecase, aC.Logger)
	newReviewUsecase := usecase.NewReviewUsecase(newReviewRepository, newUserRepository, aC.Validate, aC.GetDB(), aC.Logger)
	newFavoriteUsecase := usecase.NewFavoriteUsecase(newFavoriteRepository, newListingRepository, aC.GetDB(), aC.Logger)

	newAuthHandler := handler.NewAuthHandler(newAuthUsecase, aC.Logger)
	newUserHandler := handler.NewUserHandler(newUserUsecase, aC.Logger)
	newListingHandler := handler.NewListingHandler(newListingUsecase, aC.Logger)
	newConversationHandler := handler.NewConversationHandler(newConversationUsecase, newMessageUsecase, aC.Logger)
	newReviewHandler := handler.NewReviewHandler(newReviewUsecase, aC.Logger)
	newFavoriteHandler := handler.NewFavoriteHandler(newFavoriteUsecase, aC.Logger)

	wsHandler := handler.NewWebSocketHandler(aC.Logger, newMessageUsecase)

	route := routes.ConfigRoute{
		App:                 aC.App,
		Middleware:          aC.Middleware,
		AuthHandler:         newAuthHandler,
		UserHandler:         newUserHandler,
		ListingHandler:      newListingHandler,
		ConversationHandler: newConversationHandler,
		ReviewHandler:       newReviewHandler,
		FavoriteHandler:     newFavoriteHandler,
	}
	route.GetRoute()
	route.GetWebSocketRoute(wsHandler)
}
