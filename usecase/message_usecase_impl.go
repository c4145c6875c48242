package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"campus-trade-api/dto"
	"campus-trade-api/dto/req"
	"campus-trade-api/dto/res"
	"campus-trade-api/entity"
)

type messageUsecase struct {
	store               MessageStore
	conversationUsecase ConversationUsecase
	log                 *logrus.Logger
}

func NewMessageUsecase(store MessageStore, conversationUC ConversationUsecase, logger *logrus.Logger) MessageUsecase {
	return &messageUsecase{store: store, conversationUsecase: conversationUC, log: logger}
}

func (uc *messageUsecase) ResolveConversation(ctx context.Context, payload *req.MessageRequest) (string, error) {
	if payload.ConversationID != "" {
		ok, err := uc.store.IsParticipant(ctx, payload.ConversationID, payload.SenderID)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrNotParticipant
		}
		return payload.ConversationID, nil
	}

	if payload.ReceiverID == "" {
		return "", errors.New("conversationId or receiverId is required")
	}

	var listingID *string
	if payload.ListingID != "" {
		listingID = &payload.ListingID
	}
	conversation, err := uc.conversationUsecase.EnsureConversation(ctx, payload.SenderID, payload.ReceiverID, listingID)
	if err != nil {
		return "", err
	}
	return conversation.ID, nil
}

func (uc *messageUsecase) ProcessIncomingMessage(ctx context.Context, payload *req.MessageRequest) (dto.BroadcastMessage, error) {
	content, err := ValidateMessageContent(payload.Content)
	if err != nil {
		return dto.BroadcastMessage{}, err
	}

	sender, err := uc.store.FindUser(ctx, payload.SenderID)
	if err != nil {
		return dto.BroadcastMessage{}, err
	}
	if sender == nil {
		return dto.BroadcastMessage{}, ErrNotFound
	}

	message := &entity.Message{
		ConversationID: payload.ConversationID,
		SenderID:       payload.SenderID,
		Content:        content,
	}
	if err := uc.store.SaveAndTouch(ctx, message); err != nil {
		uc.log.WithError(err).Error("Failed to save message")
		return dto.BroadcastMessage{}, err
	}

	return dto.BroadcastMessage{
		MessageID:      message.ID,
		ConversationID: payload.ConversationID,
		SenderID:       payload.SenderID,
		SenderName:     sender.FullName,
		SenderAvatar:   sender.AvatarURL,
		ClientRef:      payload.ClientRef,
		Content:        content,
		CreatedAt:      message.CreatedAt.Format(timeFormat),
	}, nil
}

func (uc *messageUsecase) StartConversation(ctx context.Context, buyerID string, request *req.StartConversationRequest) (res.StartConversationResponse, error) {
	content, err := ValidateMessageContent(request.Content)
	if err != nil {
		return res.StartConversationResponse{}, err
	}

	var listingID *string
	if request.ListingID != "" {
		listingID = &request.ListingID
	}
	conversation, err := uc.conversationUsecase.EnsureConversation(ctx, buyerID, request.SellerID, listingID)
	if err != nil {
		return res.StartConversationResponse{}, err
	}

	message := &entity.Message{
		ConversationID: conversation.ID,
		SenderID:       buyerID,
		Content:        content,
	}
	if err := uc.store.SaveAndTouch(ctx, message); err != nil {
		uc.log.WithError(err).Error("Failed to save opening message")
		return res.StartConversationResponse{}, err
	}

	uc.log.Infof("User %s opened conversation %s", buyerID, conversation.ID)
	return res.StartConversationResponse{
		ConversationID: conversation.ID,
		MessageID:      message.ID,
	}, nil
}

func (uc *messageUsecase) GetMessages(ctx context.Context, conversationID, userID string) ([]res.MessageResponse, error) {
	ok, err := uc.store.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotParticipant
	}

	messages, err := uc.store.FindByConversationID(ctx, conversationID)
	if err != nil {
		uc.log.WithError(err).Error("Failed to get messages")
		return nil, err
	}

	responses := make([]res.MessageResponse, 0, len(messages))
	for i := range messages {
		message := &messages[i]
		responses = append(responses, res.MessageResponse{
			MessageID:  message.ID,
			SenderID:   message.SenderID,
			SenderName: message.Sender.FullName,
			Content:    message.Content,
			Read:       message.Read,
			CreatedAt:  message.CreatedAt.Format(timeFormat),
		})
	}
	return responses, nil
}

func (uc *messageUsecase) MarkMessagesAsRead(ctx context.Context, conversationID, userID string) error {
	ok, err := uc.store.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotParticipant
	}
	return uc.store.MarkRead(ctx, conversationID, userID)
}
