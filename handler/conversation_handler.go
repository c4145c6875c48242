package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"campus-trade-api/dto/req"
	"campus-trade-api/dto/res"
	"campus-trade-api/usecase"
)

type ConversationHandler struct {
	usecase.ConversationUsecase
	usecase.MessageUsecase
	*logrus.Logger
}

func NewConversationHandler(conversationUsecase usecase.ConversationUsecase, messageUsecase usecase.MessageUsecase, logger *logrus.Logger) *ConversationHandler {
	return &ConversationHandler{
		ConversationUsecase: conversationUsecase,
		MessageUsecase:      messageUsecase,
		Logger:              logger,
	}
}

// GetDirectory returns the enriched conversation list for the current user.
// A user with no conversations gets an empty list, not an error.
func (handler *ConversationHandler) GetDirectory(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("user_id").(string)

	directory, err := handler.ConversationUsecase.LoadDirectory(ctx.Context(), userID)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to load conversation directory")
		return fiber.ErrInternalServerError
	}

	response := res.CommonResponse[res.DirectoryResponse]{
		Message:    "Successfully to get conversations",
		StatusCode: fiber.StatusOK,
		Data:       directory,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

// StartConversation opens (or reuses) the conversation for the triple and
// records the first message.
func (handler *ConversationHandler) StartConversation(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("user_id").(string)

	payload := new(req.StartConversationRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	started, err := handler.MessageUsecase.StartConversation(ctx.Context(), userID, payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to start conversation")
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	response := res.CommonResponse[res.StartConversationResponse]{
		Message:    "Message sent",
		StatusCode: fiber.StatusCreated,
		Data:       started,
	}
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *ConversationHandler) GetMessages(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("user_id").(string)
	conversationID := ctx.Params("conversationId")
	if conversationID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "conversationId is required",
		})
	}

	messages, err := handler.MessageUsecase.GetMessages(ctx.Context(), conversationID, userID)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to get messages by conversation ID")
		if errors.Is(err, usecase.ErrNotParticipant) {
			return fiber.NewError(fiber.StatusForbidden, err.Error())
		}
		return fiber.ErrInternalServerError
	}

	return ctx.JSON(fiber.Map{
		"conversationId": conversationID,
		"messages":       messages,
	})
}

func (handler *ConversationHandler) MarkMessagesAsRead(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("user_id").(string)
	conversationID := ctx.Params("conversationId")

	if err := handler.MessageUsecase.MarkMessagesAsRead(ctx.Context(), conversationID, userID); err != nil {
		handler.Logger.WithError(err).Error("Failed to mark messages as read")
		if errors.Is(err, usecase.ErrNotParticipant) {
			return fiber.NewError(fiber.StatusForbidden, err.Error())
		}
		return fiber.ErrInternalServerError
	}

	return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[any]{
		Message:    "Messages marked as read",
		StatusCode: fiber.StatusOK,
	})
}
