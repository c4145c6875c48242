// Package thread manages a message thread view under concurrent local
// (optimistic) and remote (realtime feed) writes. A provisional copy of every
// sent message is shown immediately, then replaced by the authoritative row
// once the feed echoes it back; a failed send is rolled back and the draft
// restored.
package thread

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	maxContentLength = 1000
	// localIDPrefix marks provisional ids so they can never collide with
	// server-assigned ones.
	localIDPrefix = "local-"
)

var (
	ErrEmptyContent   = errors.New("message content is empty")
	ErrContentTooLong = errors.New("message content exceeds 1000 characters")
	ErrNoConversation = errors.New("no active conversation")
)

// Message is one row of the thread view.
type Message struct {
	ID          string
	SenderID    string
	Content     string
	ClientRef   string
	CreatedAt   time.Time
	Read        bool
	Provisional bool
}

// Event is an authoritative insert delivered by the realtime feed.
type Event struct {
	MessageID      string
	ConversationID string
	SenderID       string
	SenderName     string
	ClientRef      string
	Content        string
	CreatedAt      time.Time
}

// Feed is a per-conversation subscription to insert events. Events for one
// conversation arrive in commit order. The returned function releases the
// subscription.
type Feed interface {
	Subscribe(conversationID string, fn func(Event)) (func(), error)
}

// Sender performs the network send for one message.
type Sender func(conversationID, clientRef, content string) error

// Controller owns the active conversation's message list. All methods are
// safe for concurrent use; feed callbacks and sends may interleave freely.
type Controller struct {
	mu          sync.Mutex
	userID      string
	feed        Feed
	send        Sender
	active      string
	messages    []Message
	draft       string
	unsubscribe func()
}

func NewController(userID string, feed Feed, send Sender) *Controller {
	return &Controller{userID: userID, feed: feed, send: send}
}

// SetActive switches the controller to a conversation, replacing all thread
// state. The previous subscription is torn down before the new one is
// established, so at most one is ever held.
func (c *Controller) SetActive(conversationID string, history []Message) error {
	c.mu.Lock()
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.active = conversationID
	c.messages = append([]Message(nil), history...)
	c.draft = ""
	c.mu.Unlock()

	unsubscribe, err := c.feed.Subscribe(conversationID, c.handleEvent)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.active != conversationID {
		// Selection changed while subscribing; this subscription lost.
		c.mu.Unlock()
		unsubscribe()
		return nil
	}
	c.unsubscribe = unsubscribe
	c.mu.Unlock()
	return nil
}

// Close releases the feed subscription.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.active = ""
}

func (c *Controller) SetDraft(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = text
}

func (c *Controller) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Send validates the draft, appends a provisional message synchronously,
// clears the input and only then performs the network call. On failure the
// provisional message is removed and the draft restored exactly as typed.
func (c *Controller) Send() error {
	c.mu.Lock()
	if c.active == "" {
		c.mu.Unlock()
		return ErrNoConversation
	}
	draft := c.draft
	trimmed := strings.TrimSpace(draft)
	if trimmed == "" {
		c.mu.Unlock()
		return ErrEmptyContent
	}
	if len([]rune(trimmed)) > maxContentLength {
		c.mu.Unlock()
		return ErrContentTooLong
	}

	clientRef := uuid.New().String()
	provisional := Message{
		ID:          localIDPrefix + clientRef,
		SenderID:    c.userID,
		Content:     trimmed,
		ClientRef:   clientRef,
		CreatedAt:   time.Now(),
		Provisional: true,
	}
	conversationID := c.active
	c.messages = append(c.messages, provisional)
	c.draft = ""
	c.mu.Unlock()

	if err := c.send(conversationID, clientRef, trimmed); err != nil {
		c.mu.Lock()
		c.removeByID(provisional.ID)
		c.draft = draft
		c.mu.Unlock()
		return err
	}
	return nil
}

// Messages returns a snapshot of the thread in non-decreasing creation-time
// order.
func (c *Controller) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.messages...)
}

// Preview derives the conversation-list line for the active thread.
func (c *Controller) Preview() (text string, at string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.messages) == 0 {
		return "No messages yet", "Just now"
	}
	last := c.messages[len(c.messages)-1]
	return last.Content, last.CreatedAt.Format("2006-01-02 15:04:05")
}

// handleEvent reconciles an authoritative insert against the thread. The
// sender's own echo is matched by clientRef first, then by sender+content as
// a fallback for transports that drop the ref; everything else is appended.
func (c *Controller) handleEvent(event Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if event.ConversationID != c.active {
		return
	}

	authoritative := Message{
		ID:        event.MessageID,
		SenderID:  event.SenderID,
		Content:   event.Content,
		ClientRef: event.ClientRef,
		CreatedAt: event.CreatedAt,
	}

	// A matched confirmation takes over the provisional's slot so submission
	// order survives client/server clock skew while siblings are still
	// pending. Only unmatched rows need an ordered insert.
	if index := c.matchProvisional(event); index >= 0 {
		c.messages[index] = authoritative
		return
	}
	c.insertOrdered(authoritative)
}

func (c *Controller) matchProvisional(event Event) int {
	if event.ClientRef != "" {
		for i := range c.messages {
			if c.messages[i].Provisional && c.messages[i].ClientRef == event.ClientRef {
				return i
			}
		}
		return -1
	}
	for i := range c.messages {
		if c.messages[i].Provisional &&
			c.messages[i].SenderID == event.SenderID &&
			c.messages[i].Content == event.Content {
			return i
		}
	}
	return -1
}

// insertOrdered keeps the thread sorted by creation time, placing equal
// timestamps after existing entries so arrival order breaks ties.
func (c *Controller) insertOrdered(message Message) {
	index := len(c.messages)
	for index > 0 && c.messages[index-1].CreatedAt.After(message.CreatedAt) {
		index--
	}
	c.messages = append(c.messages, Message{})
	copy(c.messages[index+1:], c.messages[index:])
	c.messages[index] = message
}

func (c *Controller) removeByID(id string) {
	for i := range c.messages {
		if c.messages[i].ID == id {
			c.messages = append(c.messages[:i], c.messages[i+1:]...)
			return
		}
	}
}
