package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"campus-trade-api/dto/res"
	"campus-trade-api/entity"
)

const timeFormat = "2006-01-02 15:04:05"

type ConversationUsecaseImpl struct {
	store ConversationStore
	log   *logrus.Logger
}

func NewConversationUsecase(store ConversationStore, logger *logrus.Logger) ConversationUsecase {
	return &ConversationUsecaseImpl{store: store, log: logger}
}

func (uc *ConversationUsecaseImpl) EnsureConversation(ctx context.Context, buyerID, sellerID string, listingID *string) (*entity.Conversation, error) {
	if buyerID == sellerID {
		return nil, errors.New("cannot start a conversation with yourself")
	}

	existing, err := uc.store.FindByTriple(ctx, buyerID, sellerID, listingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	conversation := &entity.Conversation{
		BuyerID:   buyerID,
		SellerID:  sellerID,
		ListingID: listingID,
	}
	created, err := uc.store.CreateIdempotent(ctx, conversation)
	if err != nil {
		return nil, err
	}
	uc.log.Infof("Conversation %s ready for buyer %s and seller %s", created.ID, buyerID, sellerID)
	return created, nil
}

func (uc *ConversationUsecaseImpl) LoadDirectory(ctx context.Context, currentUserID string) (res.DirectoryResponse, error) {
	conversations, err := uc.store.FindAllByUserID(ctx, currentUserID)
	if err != nil {
		uc.log.WithError(err).Error("Failed to load conversations")
		return res.DirectoryResponse{Conversations: []res.ConversationResponse{}}, err
	}

	directory := res.DirectoryResponse{
		Conversations: make([]res.ConversationResponse, 0, len(conversations)),
	}
	for i := range conversations {
		directory.Conversations = append(directory.Conversations, uc.enrich(ctx, currentUserID, &conversations[i]))
	}
	if len(directory.Conversations) > 0 {
		directory.ActiveConversationID = directory.Conversations[0].ID
	}
	return directory, nil
}

// enrich always produces an entry; a failed listing or counterpart lookup
// leaves that field nil rather than dropping the conversation.
func (uc *ConversationUsecaseImpl) enrich(ctx context.Context, currentUserID string, conversation *entity.Conversation) res.ConversationResponse {
	response := res.ConversationResponse{
		ID:        conversation.ID,
		BuyerID:   conversation.BuyerID,
		SellerID:  conversation.SellerID,
		Messages:  make([]res.MessageResponse, 0, len(conversation.Messages)),
		UpdatedAt: conversation.UpdatedAt.Format(timeFormat),
	}

	counterpartID := conversation.CounterpartID(currentUserID)
	counterpart, err := uc.store.FindUser(ctx, counterpartID)
	if err != nil {
		uc.log.WithError(err).Warnf("Failed to resolve counterpart %s", counterpartID)
	} else if counterpart != nil {
		response.Counterpart = &res.ConversationCounterpart{
			ID:        counterpart.ID,
			FullName:  counterpart.FullName,
			AvatarURL: counterpart.AvatarURL,
			Verified:  counterpart.Verified,
		}
	}

	if conversation.ListingID != nil {
		listing, err := uc.store.FindListing(ctx, *conversation.ListingID)
		if err != nil {
			uc.log.WithError(err).Warnf("Failed to resolve listing %s", *conversation.ListingID)
		} else if listing != nil {
			response.Listing = &res.ConversationListingPreview{
				ID:       listing.ID,
				Title:    listing.Title,
				Price:    listing.Price,
				PhotoURL: listing.PrimaryPhoto(),
			}
		}
	}

	for i := range conversation.Messages {
		message := &conversation.Messages[i]
		response.Messages = append(response.Messages, res.MessageResponse{
			MessageID: message.ID,
			SenderID:  message.SenderID,
			Content:   message.Content,
			Read:      message.Read,
			CreatedAt: message.CreatedAt.Format(timeFormat),
		})
	}

	if len(conversation.Messages) > 0 {
		last := conversation.Messages[len(conversation.Messages)-1]
		response.LastMessageText = last.Content
		response.LastMessageTime = last.CreatedAt.Format(timeFormat)
	} else {
		response.LastMessageText = "No messages yet"
		response.LastMessageTime = "Just now"
	}
	return response
}
