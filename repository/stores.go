package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campus-trade-api/entity"
)

// GormConversationStore binds the conversation, user and listing repositories
// to one database handle, matching the store interface the conversation
// usecase consumes.
type GormConversationStore struct {
	db            *gorm.DB
	conversations *ConversationRepository
	users         *UserRepository
	listings      *ListingRepository
}

func NewGormConversationStore(db *gorm.DB, conversations *ConversationRepository, users *UserRepository, listings *ListingRepository) *GormConversationStore {
	return &GormConversationStore{db: db, conversations: conversations, users: users, listings: listings}
}

func (s *GormConversationStore) FindByTriple(ctx context.Context, buyerID, sellerID string, listingID *string) (*entity.Conversation, error) {
	return s.conversations.FindByTriple(ctx, s.db, buyerID, sellerID, listingID)
}

func (s *GormConversationStore) CreateIdempotent(ctx context.Context, conversation *entity.Conversation) (*entity.Conversation, error) {
	return s.conversations.CreateIdempotent(ctx, s.db, conversation)
}

func (s *GormConversationStore) FindAllByUserID(ctx context.Context, userID string) ([]entity.Conversation, error) {
	return s.conversations.FindAllByUserID(ctx, s.db, userID)
}

func (s *GormConversationStore) FindUser(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := s.users.FindById(ctx, s.db, &user, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormConversationStore) FindListing(ctx context.Context, id string) (*entity.Listing, error) {
	var listing entity.Listing
	err := s.listings.FindById(ctx, s.db, &listing, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// GormMessageStore is the message usecase's persistence surface.
type GormMessageStore struct {
	db            *gorm.DB
	messages      *MessageRepository
	conversations *ConversationRepository
	users         *UserRepository
}

func NewGormMessageStore(db *gorm.DB, messages *MessageRepository, conversations *ConversationRepository, users *UserRepository) *GormMessageStore {
	return &GormMessageStore{db: db, messages: messages, conversations: conversations, users: users}
}

func (s *GormMessageStore) SaveAndTouch(ctx context.Context, message *entity.Message) error {
	return s.messages.SaveAndTouch(ctx, s.db, message)
}

func (s *GormMessageStore) FindByConversationID(ctx context.Context, conversationID string) ([]entity.Message, error) {
	return s.messages.FindByConversationID(ctx, s.db, conversationID)
}

func (s *GormMessageStore) MarkRead(ctx context.Context, conversationID, readerID string) error {
	return s.messages.MarkRead(ctx, s.db, conversationID, readerID)
}

func (s *GormMessageStore) IsParticipant(ctx context.Context, conversationID, userID string) (bool, error) {
	return s.conversations.IsParticipant(ctx, s.db, conversationID, userID)
}

func (s *GormMessageStore) FindUser(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := s.users.FindById(ctx, s.db, &user, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
