package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"campus-trade-api/dto/res"
	"campus-trade-api/usecase"
)

type FavoriteHandler struct {
	usecase.FavoriteUsecase
	*logrus.Logger
}

func NewFavoriteHandler(favoriteUsecase usecase.FavoriteUsecase, logger *logrus.Logger) *FavoriteHandler {
	return &FavoriteHandler{FavoriteUsecase: favoriteUsecase, Logger: logger}
}

func (handler *FavoriteHandler) AddFavorite(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("user_id").(string)

	if err := handler.FavoriteUsecase.AddFavorite(ctx.Context(), userID, ctx.Params("listingId")); err != nil {
		handler.Logger.WithError(err).Error("Failed to add favorite")
		if errors.Is(err, usecase.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.ErrInternalServerError
	}

	return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[any]{
		Message:    "Listing favorited",
		StatusCode: fiber.StatusOK,
	})
}

func (handler *FavoriteHandler) RemoveFavorite(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("user_id").(string)

	if err := handler.FavoriteUsecase.RemoveFavorite(ctx.Context(), userID, ctx.Params("listingId")); err != nil {
		handler.Logger.WithError(err).Error("Failed to remove favorite")
		return fiber.ErrInternalServerError
	}

	return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[any]{
		Message:    "Favorite removed",
		StatusCode: fiber.StatusOK,
	})
}

func (handler *FavoriteHandler) GetFavorites(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("user_id").(string)

	favorites, err := handler.FavoriteUsecase.GetFavorites(ctx.Context(), userID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	response := res.CommonResponse[[]res.FavoriteResponse]{
		Message:    "Successfully to get favorites",
		StatusCode: fiber.StatusOK,
		Data:       favorites,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
