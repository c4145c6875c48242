package usecase

import (
	"context"

	"campus-trade-api/dto"
	"campus-trade-api/dto/req"
	"campus-trade-api/dto/res"
	"campus-trade-api/entity"
)

// MessageStore is the persistence surface of the message usecase.
type MessageStore interface {
	SaveAndTouch(ctx context.Context, message *entity.Message) error
	FindByConversationID(ctx context.Context, conversationID string) ([]entity.Message, error)
	MarkRead(ctx context.Context, conversationID, readerID string) error
	IsParticipant(ctx context.Context, conversationID, userID string) (bool, error)
	FindUser(ctx context.Context, id string) (*entity.User, error)
}

type MessageUsecase interface {
	// ResolveConversation maps an incoming websocket frame to a conversation
	// id, creating the conversation lazily for a first contact.
	ResolveConversation(ctx context.Context, payload *req.MessageRequest) (string, error)
	// ProcessIncomingMessage validates, persists and shapes the broadcast for
	// one inbound message.
	ProcessIncomingMessage(ctx context.Context, payload *req.MessageRequest) (dto.BroadcastMessage, error)
	// StartConversation is the REST first-contact path: ensure the
	// conversation and insert the opening message.
	StartConversation(ctx context.Context, buyerID string, request *req.StartConversationRequest) (res.StartConversationResponse, error)
	GetMessages(ctx context.Context, conversationID, userID string) ([]res.MessageResponse, error)
	MarkMessagesAsRead(ctx context.Context, conversationID, userID string) error
}
