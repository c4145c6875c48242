package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"campus-trade-api/dto/req"
	"campus-trade-api/dto/res"
	"campus-trade-api/usecase"
)

type ReviewHandler struct {
	usecase.ReviewUsecase
	*logrus.Logger
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{ReviewUsecase: reviewUsecase, Logger: logger}
}

func (handler *ReviewHandler) CreateReview(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("user_id").(string)

	payload := new(req.ReviewRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	reviewResponse, err := handler.ReviewUsecase.CreateReview(ctx.Context(), userID, payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to create review")
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	response := res.CommonResponse[res.ReviewResponse]{
		Message:    "Review submitted",
		StatusCode: fiber.StatusCreated,
		Data:       reviewResponse,
	}
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *ReviewHandler) GetReviewsForUser(ctx *fiber.Ctx) error {
	summary, err := handler.ReviewUsecase.GetReviewsForUser(ctx.Context(), ctx.Params("userId"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	response := res.CommonResponse[res.ReviewSummaryResponse]{
		Message:    "Successfully to get reviews",
		StatusCode: fiber.StatusOK,
		Data:       summary,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *ReviewHandler) GetMyReviews(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("user_id").(string)

	reviews, err := handler.ReviewUsecase.GetReviewsByReviewer(ctx.Context(), userID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	response := res.CommonResponse[[]res.ReviewResponse]{
		Message:    "Successfully to get reviews",
		StatusCode: fiber.StatusOK,
		Data:       reviews,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
