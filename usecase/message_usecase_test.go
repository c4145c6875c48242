package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-trade-api/dto/req"
	"campus-trade-api/entity"
)

// memoryMessageStore is an in-memory MessageStore sharing conversation
// membership with a memoryConversationStore.
type memoryMessageStore struct {
	conversationStore *memoryConversationStore
	messages          []entity.Message
	users             map[string]*entity.User
	saves             int
}

func newMemoryMessageStore(conversationStore *memoryConversationStore) *memoryMessageStore {
	return &memoryMessageStore{
		conversationStore: conversationStore,
		users:             map[string]*entity.User{},
	}
}

func (s *memoryMessageStore) SaveAndTouch(ctx context.Context, message *entity.Message) error {
	message.ID = uuid.New().String()
	message.CreatedAt = time.Now()
	s.messages = append(s.messages, *message)
	s.saves++
	for _, conversation := range s.conversationStore.conversations {
		if conversation.ID == message.ConversationID {
			conversation.UpdatedAt = message.CreatedAt
		}
	}
	return nil
}

func (s *memoryMessageStore) FindByConversationID(ctx context.Context, conversationID string) ([]entity.Message, error) {
	var result []entity.Message
	for _, message := range s.messages {
		if message.ConversationID == conversationID {
			result = append(result, message)
		}
	}
	return result, nil
}

func (s *memoryMessageStore) MarkRead(ctx context.Context, conversationID, readerID string) error {
	for i := range s.messages {
		if s.messages[i].ConversationID == conversationID && s.messages[i].SenderID != readerID {
			s.messages[i].Read = true
		}
	}
	return nil
}

func (s *memoryMessageStore) IsParticipant(ctx context.Context, conversationID, userID string) (bool, error) {
	for _, conversation := range s.conversationStore.conversations {
		if conversation.ID == conversationID {
			return conversation.HasParticipant(userID), nil
		}
	}
	return false, nil
}

func (s *memoryMessageStore) FindUser(ctx context.Context, id string) (*entity.User, error) {
	return s.users[id], nil
}

func newTestMessageUsecase() (MessageUsecase, *memoryMessageStore, *memoryConversationStore) {
	conversationStore := newMemoryConversationStore()
	messageStore := newMemoryMessageStore(conversationStore)
	messageStore.users["buyer-1"] = &entity.User{
		BaseEntity: entity.BaseEntity{ID: "buyer-1"},
		FullName:   "Casey Kim",
	}
	conversationUC := NewConversationUsecase(conversationStore, quietLogger())
	return NewMessageUsecase(messageStore, conversationUC, quietLogger()), messageStore, conversationStore
}

func TestStartConversationCreatesOneConversationAndOneMessage(t *testing.T) {
	uc, messageStore, conversationStore := newTestMessageUsecase()

	response, err := uc.StartConversation(context.Background(), "buyer-1", &req.StartConversationRequest{
		SellerID:  "seller-1",
		ListingID: "listing-1",
		Content:   "is the fridge still available?",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, response.ConversationID)
	assert.NotEmpty(t, response.MessageID)
	assert.Equal(t, 1, conversationStore.creates)
	assert.Equal(t, 1, messageStore.saves)

	// A second opener for the same listing reuses the conversation.
	again, err := uc.StartConversation(context.Background(), "buyer-1", &req.StartConversationRequest{
		SellerID:  "seller-1",
		ListingID: "listing-1",
		Content:   "bumping this, still interested",
	})
	require.NoError(t, err)
	assert.Equal(t, response.ConversationID, again.ConversationID)
	assert.Equal(t, 1, conversationStore.creates)
	assert.Equal(t, 2, messageStore.saves)
}

func TestResolveConversationChecksMembership(t *testing.T) {
	uc, _, conversationStore := newTestMessageUsecase()

	opened, err := uc.StartConversation(context.Background(), "buyer-1", &req.StartConversationRequest{
		SellerID: "seller-1",
		Content:  "quick question about pickup",
	})
	require.NoError(t, err)

	resolved, err := uc.ResolveConversation(context.Background(), &req.MessageRequest{
		ConversationID: opened.ConversationID,
		SenderID:       "seller-1",
	})
	require.NoError(t, err)
	assert.Equal(t, opened.ConversationID, resolved)

	_, err = uc.ResolveConversation(context.Background(), &req.MessageRequest{
		ConversationID: opened.ConversationID,
		SenderID:       "stranger-1",
	})
	assert.ErrorIs(t, err, ErrNotParticipant)
	assert.Equal(t, 1, conversationStore.creates)
}

func TestResolveConversationCreatesOnFirstContact(t *testing.T) {
	uc, _, conversationStore := newTestMessageUsecase()

	first, err := uc.ResolveConversation(context.Background(), &req.MessageRequest{
		SenderID:   "buyer-1",
		ReceiverID: "seller-1",
		ListingID:  "listing-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := uc.ResolveConversation(context.Background(), &req.MessageRequest{
		SenderID:   "buyer-1",
		ReceiverID: "seller-1",
		ListingID:  "listing-1",
	})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, conversationStore.creates)

	_, err = uc.ResolveConversation(context.Background(), &req.MessageRequest{SenderID: "buyer-1"})
	assert.Error(t, err, "neither conversationId nor receiverId given")
}

func TestProcessIncomingMessageEchoesClientRef(t *testing.T) {
	uc, _, _ := newTestMessageUsecase()

	opened, err := uc.StartConversation(context.Background(), "buyer-1", &req.StartConversationRequest{
		SellerID: "seller-1",
		Content:  "opening message for the thread",
	})
	require.NoError(t, err)

	broadcast, err := uc.ProcessIncomingMessage(context.Background(), &req.MessageRequest{
		ConversationID: opened.ConversationID,
		SenderID:       "buyer-1",
		ClientRef:      "ref-42",
		Content:        "  does Saturday work?  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "ref-42", broadcast.ClientRef)
	assert.Equal(t, "does Saturday work?", broadcast.Content, "content trimmed before persisting")
	assert.Equal(t, "Casey Kim", broadcast.SenderName)
	assert.NotEmpty(t, broadcast.MessageID)
}

func TestProcessIncomingMessageRejectsInvalidContent(t *testing.T) {
	uc, messageStore, _ := newTestMessageUsecase()

	_, err := uc.ProcessIncomingMessage(context.Background(), &req.MessageRequest{
		ConversationID: "conv-1",
		SenderID:       "buyer-1",
		Content:        "   ",
	})
	assert.Error(t, err)

	_, err = uc.ProcessIncomingMessage(context.Background(), &req.MessageRequest{
		ConversationID: "conv-1",
		SenderID:       "buyer-1",
		Content:        strings.Repeat("a", 1001),
	})
	assert.Error(t, err)
	assert.Zero(t, messageStore.saves, "invalid content never reaches the store")
}

func TestMarkMessagesAsReadRequiresMembership(t *testing.T) {
	uc, messageStore, _ := newTestMessageUsecase()

	opened, err := uc.StartConversation(context.Background(), "buyer-1", &req.StartConversationRequest{
		SellerID: "seller-1",
		Content:  "one unread message here",
	})
	require.NoError(t, err)

	err = uc.MarkMessagesAsRead(context.Background(), opened.ConversationID, "stranger-1")
	assert.ErrorIs(t, err, ErrNotParticipant)

	require.NoError(t, uc.MarkMessagesAsRead(context.Background(), opened.ConversationID, "seller-1"))
	require.Len(t, messageStore.messages, 1)
	assert.True(t, messageStore.messages[0].Read)

	messages, err := uc.GetMessages(context.Background(), opened.ConversationID, "seller-1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].Read)
}
