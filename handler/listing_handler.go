package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"campus-trade-api/dto/req"
	"campus-trade-api/dto/res"
	"campus-trade-api/usecase"
)

type ListingHandler struct {
	usecase.ListingUsecase
	*logrus.Logger
}

func NewListingHandler(listingUsecase usecase.ListingUsecase, logger *logrus.Logger) *ListingHandler {
	return &ListingHandler{ListingUsecase: listingUsecase, Logger: logger}
}

func (handler *ListingHandler) CreateListing(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("user_id").(string)

	payload := new(req.ListingRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	listingResponse, err := handler.ListingUsecase.CreateListing(ctx.Context(), userID, payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to create listing")
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	response := res.CommonResponse[res.ListingResponse]{
		Message:    "Listing created",
		StatusCode: fiber.StatusCreated,
		Data:       listingResponse,
	}
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *ListingHandler) UpdateListing(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("user_id").(string)

	payload := new(req.ListingRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	listingResponse, err := handler.ListingUsecase.UpdateListing(ctx.Context(), userID, ctx.Params("listingId"), payload)
	if err != nil {
		return handler.listingError(err)
	}

	response := res.CommonResponse[res.ListingResponse]{
		Message:    "Listing updated",
		StatusCode: fiber.StatusOK,
		Data:       listingResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *ListingHandler) ChangeStatus(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("user_id").(string)

	payload := new(req.ChangeListingStatusRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	listingResponse, err := handler.ListingUsecase.ChangeStatus(ctx.Context(), userID, ctx.Params("listingId"), payload)
	if err != nil {
		return handler.listingError(err)
	}

	response := res.CommonResponse[res.ListingResponse]{
		Message:    "Listing status updated",
		StatusCode: fiber.StatusOK,
		Data:       listingResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *ListingHandler) DeleteListing(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("user_id").(string)

	if err := handler.ListingUsecase.DeleteListing(ctx.Context(), userID, ctx.Params("listingId")); err != nil {
		return handler.listingError(err)
	}

	return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[any]{
		Message:    "Listing deleted",
		StatusCode: fiber.StatusOK,
	})
}

func (handler *ListingHandler) GetListing(ctx *fiber.Ctx) error {
	listingResponse, err := handler.ListingUsecase.GetListing(ctx.Context(), ctx.Params("listingId"))
	if err != nil {
		return handler.listingError(err)
	}

	response := res.CommonResponse[res.ListingResponse]{
		Message:    "Successfully to get listing",
		StatusCode: fiber.StatusOK,
		Data:       listingResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *ListingHandler) GetListingBySlug(ctx *fiber.Ctx) error {
	listingResponse, err := handler.ListingUsecase.GetListingBySlug(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return handler.listingError(err)
	}

	response := res.CommonResponse[res.ListingResponse]{
		Message:    "Successfully to get listing",
		StatusCode: fiber.StatusOK,
		Data:       listingResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *ListingHandler) BrowseListings(ctx *fiber.Ctx) error {
	filter := req.ListingFilter{
		Category:    ctx.Query("category"),
		Subcategory: ctx.Query("subcategory"),
		Search:      ctx.Query("q"),
		Limit:       ctx.QueryInt("limit", 50),
	}
	if raw := ctx.Query("minPrice"); raw != "" {
		if price, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &price
		}
	}
	if raw := ctx.Query("maxPrice"); raw != "" {
		if price, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &price
		}
	}

	listings, err := handler.ListingUsecase.BrowseListings(ctx.Context(), filter)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	responses := res.CommonResponse[[]res.ListingResponse]{
		Message:    "Successfully to browse listings",
		StatusCode: fiber.StatusOK,
		Data:       listings,
	}
	return ctx.Status(fiber.StatusOK).JSON(responses)
}

func (handler *ListingHandler) GetMyListings(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("user_id").(string)

	listings, err := handler.ListingUsecase.GetMyListings(ctx.Context(), userID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	responses := res.CommonResponse[[]res.ListingResponse]{
		Message:    "Successfully to get my listings",
		StatusCode: fiber.StatusOK,
		Data:       listings,
	}
	return ctx.Status(fiber.StatusOK).JSON(responses)
}

func (handler *ListingHandler) listingError(err error) error {
	handler.Logger.WithError(err).Error("Listing operation failed")
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrNotOwner):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	default:
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
}
