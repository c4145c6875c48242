package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"campus-trade-api/dto/req"
	"campus-trade-api/dto/res"
	"campus-trade-api/usecase"
)

type AuthHandler struct {
	usecase.AuthUsecase
	*logrus.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUsecase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{AuthUsecase: authUseCase, Logger: logger}
}

func (handler *AuthHandler) RegisterUser(ctx *fiber.Ctx) error {
	payload := new(req.RegisterRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	registerResponse, err := handler.AuthUsecase.RegisterUser(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to register new user: %v", err)
		if errors.Is(err, usecase.ErrEmailTaken) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	response := res.CommonResponse[res.RegisterResponse]{
		Message:    "Verification code sent to your email",
		StatusCode: fiber.StatusOK,
		Data:       registerResponse,
	}
	handler.Logger.Infof("Success register user with id: %s", registerResponse.ID)
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *AuthHandler) VerifySignup(ctx *fiber.Ctx) error {
	payload := new(req.VerifyOTPRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	loginResponse, err := handler.AuthUsecase.VerifySignup(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to verify signup code")
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	response := res.CommonResponse[res.LoginResponse]{
		Message:    "Account verified",
		StatusCode: fiber.StatusOK,
		Data:       loginResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *AuthHandler) ResendSignupCode(ctx *fiber.Ctx) error {
	payload := new(req.ForgotPasswordRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	if err := handler.AuthUsecase.ResendSignupCode(ctx.Context(), payload.Email); err != nil {
		handler.Logger.WithError(err).Error("Failed to resend signup code")
		if errors.Is(err, usecase.ErrCodeCooldown) {
			return fiber.NewError(fiber.StatusTooManyRequests, err.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[any]{
		Message:    "Verification code sent",
		StatusCode: fiber.StatusOK,
	})
}

func (handler *AuthHandler) LoginUser(ctx *fiber.Ctx) error {
	payload := new(req.LoginRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	loginResponse, err := handler.AuthUsecase.LoginUser(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to login: %v", err)
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	response := res.CommonResponse[res.LoginResponse]{
		Message:    "Successfully to login",
		StatusCode: fiber.StatusOK,
		Data:       loginResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *AuthHandler) ForgotPassword(ctx *fiber.Ctx) error {
	payload := new(req.ForgotPasswordRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	if err := handler.AuthUsecase.RequestPasswordReset(ctx.Context(), payload); err != nil {
		handler.Logger.WithError(err).Error("Failed to request password reset")
		if errors.Is(err, usecase.ErrCodeCooldown) {
			return fiber.NewError(fiber.StatusTooManyRequests, err.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[any]{
		Message:    "Password reset code sent",
		StatusCode: fiber.StatusOK,
	})
}

func (handler *AuthHandler) ResetPassword(ctx *fiber.Ctx) error {
	payload := new(req.ResetPasswordRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	if err := handler.AuthUsecase.ResetPassword(ctx.Context(), payload); err != nil {
		handler.Logger.WithError(err).Error("Failed to reset password")
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[any]{
		Message:    "Password updated",
		StatusCode: fiber.StatusOK,
	})
}
