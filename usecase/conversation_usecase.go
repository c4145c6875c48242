package usecase

import (
	"context"

	"campus-trade-api/dto/res"
	"campus-trade-api/entity"
)

// ConversationStore is the slice of persistence the conversation usecase
// needs. Keeping it an interface lets the directory and the get-or-create
// path be exercised against an in-memory store.
type ConversationStore interface {
	FindByTriple(ctx context.Context, buyerID, sellerID string, listingID *string) (*entity.Conversation, error)
	CreateIdempotent(ctx context.Context, conversation *entity.Conversation) (*entity.Conversation, error)
	FindAllByUserID(ctx context.Context, userID string) ([]entity.Conversation, error)
	FindUser(ctx context.Context, id string) (*entity.User, error)
	FindListing(ctx context.Context, id string) (*entity.Listing, error)
}

type ConversationUsecase interface {
	// EnsureConversation returns the conversation for the triple, creating it
	// when absent. Repeated and concurrent calls converge on one row.
	EnsureConversation(ctx context.Context, buyerID, sellerID string, listingID *string) (*entity.Conversation, error)
	// LoadDirectory builds the enriched conversation list for the user,
	// most recently updated first.
	LoadDirectory(ctx context.Context, currentUserID string) (res.DirectoryResponse, error)
}
