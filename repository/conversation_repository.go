package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campus-trade-api/entity"
)

type ConversationRepository struct {
	Repository[entity.Conversation]
}

func NewConversationRepository() *ConversationRepository {
	return &ConversationRepository{}
}

// FindByTriple looks up the conversation for a (buyer, seller, listing)
// triple, treating an absent listing id as IS NULL.
func (repository ConversationRepository) FindByTriple(ctx context.Context, db *gorm.DB, buyerID, sellerID string, listingID *string) (*entity.Conversation, error) {
	query := db.WithContext(ctx).
		Where("buyer_id = ? AND seller_id = ?", buyerID, sellerID)
	if listingID != nil {
		query = query.Where("listing_id = ?", *listingID)
	} else {
		query = query.Where("listing_id IS NULL")
	}

	var conversation entity.Conversation
	err := query.First(&conversation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// CreateIdempotent inserts with ON CONFLICT DO NOTHING against the unique
// (buyer, seller, listing) index, then re-reads: the returned row is the same
// whichever of two concurrent callers won the insert.
func (repository ConversationRepository) CreateIdempotent(ctx context.Context, db *gorm.DB, conversation *entity.Conversation) (*entity.Conversation, error) {
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(conversation).Error
	if err != nil {
		return nil, err
	}

	existing, err := repository.FindByTriple(ctx, db, conversation.BuyerID, conversation.SellerID, conversation.ListingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return conversation, nil
}

// FindAllByUserID loads every conversation the user participates in, most
// recently updated first, with the full message history in creation order.
func (repository ConversationRepository) FindAllByUserID(ctx context.Context, db *gorm.DB, userID string) ([]entity.Conversation, error) {
	var conversations []entity.Conversation
	err := db.WithContext(ctx).
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order("updated_at DESC").
		Find(&conversations).Error
	if err != nil {
		return nil, err
	}
	return conversations, nil
}

func (repository ConversationRepository) IsParticipant(ctx context.Context, db *gorm.DB, conversationID, userID string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.Conversation{}).
		Where("id = ? AND (buyer_id = ? OR seller_id = ?)", conversationID, userID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Touch bumps updated_at so the directory ordering follows message activity.
func (repository ConversationRepository) Touch(ctx context.Context, db *gorm.DB, conversationID string) error {
	return db.WithContext(ctx).
		Model(&entity.Conversation{}).
		Where("id = ?", conversationID).
		Update("updated_at", gorm.Expr("NOW()")).Error
}
