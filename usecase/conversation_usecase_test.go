package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-trade-api/entity"
)

// memoryConversationStore is an in-memory ConversationStore with the same
// idempotency contract as the gorm-backed one.
type memoryConversationStore struct {
	conversations []*entity.Conversation
	users         map[string]*entity.User
	listings      map[string]*entity.Listing
	userErr       error
	creates       int
}

func newMemoryConversationStore() *memoryConversationStore {
	return &memoryConversationStore{
		users:    map[string]*entity.User{},
		listings: map[string]*entity.Listing{},
	}
}

func sameListingID(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (s *memoryConversationStore) FindByTriple(ctx context.Context, buyerID, sellerID string, listingID *string) (*entity.Conversation, error) {
	for _, conversation := range s.conversations {
		if conversation.BuyerID == buyerID && conversation.SellerID == sellerID && sameListingID(conversation.ListingID, listingID) {
			return conversation, nil
		}
	}
	return nil, nil
}

func (s *memoryConversationStore) CreateIdempotent(ctx context.Context, conversation *entity.Conversation) (*entity.Conversation, error) {
	if existing, _ := s.FindByTriple(ctx, conversation.BuyerID, conversation.SellerID, conversation.ListingID); existing != nil {
		return existing, nil
	}
	conversation.ID = uuid.New().String()
	conversation.CreatedAt = time.Now()
	conversation.UpdatedAt = conversation.CreatedAt
	s.conversations = append(s.conversations, conversation)
	s.creates++
	return conversation, nil
}

func (s *memoryConversationStore) FindAllByUserID(ctx context.Context, userID string) ([]entity.Conversation, error) {
	var result []entity.Conversation
	for _, conversation := range s.conversations {
		if conversation.HasParticipant(userID) {
			result = append(result, *conversation)
		}
	}
	return result, nil
}

func (s *memoryConversationStore) FindUser(ctx context.Context, id string) (*entity.User, error) {
	if s.userErr != nil {
		return nil, s.userErr
	}
	return s.users[id], nil
}

func (s *memoryConversationStore) FindListing(ctx context.Context, id string) (*entity.Listing, error) {
	return s.listings[id], nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestEnsureConversationIsIdempotent(t *testing.T) {
	store := newMemoryConversationStore()
	uc := NewConversationUsecase(store, quietLogger())
	listingID := "listing-1"

	first, err := uc.EnsureConversation(context.Background(), "buyer-1", "seller-1", &listingID)
	require.NoError(t, err)
	second, err := uc.EnsureConversation(context.Background(), "buyer-1", "seller-1", &listingID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, store.creates)
}

func TestEnsureConversationRejectsSelfConversation(t *testing.T) {
	store := newMemoryConversationStore()
	uc := NewConversationUsecase(store, quietLogger())

	_, err := uc.EnsureConversation(context.Background(), "user-1", "user-1", nil)
	assert.Error(t, err)
	assert.Empty(t, store.conversations)
}

func TestEnsureConversationSeparatesListings(t *testing.T) {
	store := newMemoryConversationStore()
	uc := NewConversationUsecase(store, quietLogger())
	listingID := "listing-1"

	general, err := uc.EnsureConversation(context.Background(), "buyer-1", "seller-1", nil)
	require.NoError(t, err)
	scoped, err := uc.EnsureConversation(context.Background(), "buyer-1", "seller-1", &listingID)
	require.NoError(t, err)

	assert.NotEqual(t, general.ID, scoped.ID, "listing-scoped and general threads are distinct")
	assert.Equal(t, 2, store.creates)
}

func TestLoadDirectoryEmpty(t *testing.T) {
	store := newMemoryConversationStore()
	uc := NewConversationUsecase(store, quietLogger())

	directory, err := uc.LoadDirectory(context.Background(), "buyer-1")
	require.NoError(t, err)
	assert.Empty(t, directory.Conversations)
	assert.Empty(t, directory.ActiveConversationID)
}

func TestLoadDirectoryEnrichesListingAndCounterpart(t *testing.T) {
	store := newMemoryConversationStore()
	store.users["seller-1"] = &entity.User{
		BaseEntity: entity.BaseEntity{ID: "seller-1"},
		FullName:   "Jordan Lee",
		Verified:   true,
	}
	store.listings["listing-1"] = &entity.Listing{
		BaseEntity: entity.BaseEntity{ID: "listing-1"},
		Title:      "Mini fridge, great condition",
		Price:      45.50,
		Photos:     []string{"https://cdn.example.com/fridge.jpg"},
	}
	uc := NewConversationUsecase(store, quietLogger())

	listingID := "listing-1"
	conversation, err := uc.EnsureConversation(context.Background(), "buyer-1", "seller-1", &listingID)
	require.NoError(t, err)
	conversation.Messages = []entity.Message{
		{BaseEntity: entity.BaseEntity{ID: "msg-1", CreatedAt: time.Now()}, SenderID: "buyer-1", Content: "still available?"},
	}

	directory, err := uc.LoadDirectory(context.Background(), "buyer-1")
	require.NoError(t, err)
	require.Len(t, directory.Conversations, 1)

	entry := directory.Conversations[0]
	assert.Equal(t, conversation.ID, directory.ActiveConversationID)
	require.NotNil(t, entry.Counterpart)
	assert.Equal(t, "Jordan Lee", entry.Counterpart.FullName)
	require.NotNil(t, entry.Listing)
	assert.Equal(t, "Mini fridge, great condition", entry.Listing.Title)
	assert.Equal(t, "still available?", entry.LastMessageText)
}

func TestLoadDirectorySurvivesLookupFailure(t *testing.T) {
	store := newMemoryConversationStore()
	store.userErr = errors.New("user service down")
	uc := NewConversationUsecase(store, quietLogger())

	_, err := uc.EnsureConversation(context.Background(), "buyer-1", "seller-1", nil)
	require.NoError(t, err)

	directory, err := uc.LoadDirectory(context.Background(), "buyer-1")
	require.NoError(t, err)
	require.Len(t, directory.Conversations, 1)

	entry := directory.Conversations[0]
	assert.Nil(t, entry.Counterpart, "failed lookup leaves the field nil instead of dropping the entry")
	assert.Equal(t, "No messages yet", entry.LastMessageText)
	assert.Equal(t, "Just now", entry.LastMessageTime)
}
