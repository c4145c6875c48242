package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"campus-trade-api/dto/req"
	"campus-trade-api/dto/res"
	"campus-trade-api/usecase"
)

type UserHandler struct {
	usecase.UserUsecase
	*logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase, Logger: logger}
}

func (handler *UserHandler) GetUserByToken(ctx *fiber.Ctx) error {
	token := ctx.Get("Authorization")
	if len(token) < 8 {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Missing Authorization header",
		})
	}

	userResponse, err := handler.UserUsecase.GetUserByToken(ctx.Context(), token[7:])
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get user by token")
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	response := res.CommonResponse[res.UserResponse]{
		Message:    "Successfully To Get User By ID",
		StatusCode: fiber.StatusOK,
		Data:       userResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *UserHandler) GetUserByID(ctx *fiber.Ctx) error {
	userResponse, err := handler.UserUsecase.GetUserByID(ctx.Context(), ctx.Params("userId"))
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get user by id")
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	response := res.CommonResponse[res.UserResponse]{
		Message:    "Successfully To Get User",
		StatusCode: fiber.StatusOK,
		Data:       userResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *UserHandler) GetAllUsers(ctx *fiber.Ctx) error {
	userResponses, err := handler.UserUsecase.GetAllUsers(ctx.Context())
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get all users")
		return err
	}

	responses := res.CommonResponse[[]res.UserResponse]{
		Message:    "Successfully To Get All User",
		StatusCode: fiber.StatusOK,
		Data:       userResponses,
	}
	return ctx.Status(fiber.StatusOK).JSON(responses)
}

func (handler *UserHandler) EditProfile(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("user_id").(string)

	payload := new(req.EditProfileRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	userResponse, err := handler.UserUsecase.EditProfile(ctx.Context(), userID, payload)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to edit profile")
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	response := res.CommonResponse[res.UserResponse]{
		Message:    "Profile updated",
		StatusCode: fiber.StatusOK,
		Data:       userResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
