package thread

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFeed records subscriptions and lets tests push events by hand.
type fakeFeed struct {
	mu           sync.Mutex
	fn           func(Event)
	subscribed   int
	unsubscribed int
	subscribeErr error
}

func (f *fakeFeed) Subscribe(conversationID string, fn func(Event)) (func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subscribeErr != nil {
		return nil, f.subscribeErr
	}
	f.subscribed++
	f.fn = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.unsubscribed++
	}, nil
}

func (f *fakeFeed) push(event Event) {
	f.mu.Lock()
	fn := f.fn
	f.mu.Unlock()
	fn(event)
}

// fakeSender captures outgoing sends and can fail on demand.
type fakeSender struct {
	mu     sync.Mutex
	calls  []string
	refs   []string
	err    error
	onSend func()
}

func (s *fakeSender) send(conversationID, clientRef, content string) error {
	s.mu.Lock()
	s.calls = append(s.calls, content)
	s.refs = append(s.refs, clientRef)
	onSend := s.onSend
	err := s.err
	s.mu.Unlock()
	if onSend != nil {
		onSend()
	}
	return err
}

func (s *fakeSender) lastRef() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refs[len(s.refs)-1]
}

func newTestController(t *testing.T) (*Controller, *fakeFeed, *fakeSender) {
	t.Helper()
	feed := &fakeFeed{}
	sender := &fakeSender{}
	controller := NewController("buyer-1", feed, sender.send)
	require.NoError(t, controller.SetActive("conv-1", nil))
	return controller, feed, sender
}

func TestSendShowsProvisionalBeforeNetworkResolves(t *testing.T) {
	controller, _, sender := newTestController(t)

	var seenDuringSend []Message
	var draftDuringSend string
	sender.onSend = func() {
		seenDuringSend = controller.Messages()
		draftDuringSend = controller.Draft()
	}

	controller.SetDraft("is this still available?")
	require.NoError(t, controller.Send())

	require.Len(t, seenDuringSend, 1)
	assert.True(t, seenDuringSend[0].Provisional)
	assert.Equal(t, "is this still available?", seenDuringSend[0].Content)
	assert.Equal(t, "buyer-1", seenDuringSend[0].SenderID)
	assert.Contains(t, seenDuringSend[0].ID, "local-")
	assert.Empty(t, draftDuringSend, "draft should clear before the network call")
}

func TestConfirmationReplacesProvisionalWithoutDuplicate(t *testing.T) {
	controller, feed, sender := newTestController(t)

	controller.SetDraft("is this still available?")
	require.NoError(t, controller.Send())

	feed.push(Event{
		MessageID:      "msg-1",
		ConversationID: "conv-1",
		SenderID:       "buyer-1",
		ClientRef:      sender.lastRef(),
		Content:        "is this still available?",
		CreatedAt:      time.Now(),
	})

	messages := controller.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "msg-1", messages[0].ID)
	assert.False(t, messages[0].Provisional)
}

func TestConfirmationFallsBackToSenderAndContent(t *testing.T) {
	controller, feed, _ := newTestController(t)

	controller.SetDraft("meet at the library?")
	require.NoError(t, controller.Send())

	// A transport that drops the correlation id still reconciles.
	feed.push(Event{
		MessageID:      "msg-2",
		ConversationID: "conv-1",
		SenderID:       "buyer-1",
		Content:        "meet at the library?",
		CreatedAt:      time.Now(),
	})

	messages := controller.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "msg-2", messages[0].ID)
}

func TestFailedSendRemovesProvisionalAndRestoresDraft(t *testing.T) {
	controller, _, sender := newTestController(t)
	sender.err = errors.New("connection reset")

	controller.SetDraft("  can you do $40?  ")
	err := controller.Send()

	require.Error(t, err)
	assert.Empty(t, controller.Messages())
	assert.Equal(t, "  can you do $40?  ", controller.Draft(), "draft restored exactly as typed")
}

func TestTwoQuickSendsKeepSubmissionOrder(t *testing.T) {
	controller, feed, sender := newTestController(t)

	controller.SetDraft("first message here")
	require.NoError(t, controller.Send())
	refFirst := sender.lastRef()

	controller.SetDraft("second message here")
	require.NoError(t, controller.Send())
	refSecond := sender.lastRef()

	base := time.Now()
	// Confirmations arrive out of order.
	feed.push(Event{
		MessageID: "msg-b", ConversationID: "conv-1", SenderID: "buyer-1",
		ClientRef: refSecond, Content: "second message here", CreatedAt: base.Add(2 * time.Second),
	})
	feed.push(Event{
		MessageID: "msg-a", ConversationID: "conv-1", SenderID: "buyer-1",
		ClientRef: refFirst, Content: "first message here", CreatedAt: base.Add(1 * time.Second),
	})

	messages := controller.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "msg-a", messages[0].ID)
	assert.Equal(t, "msg-b", messages[1].ID)
}

func TestConfirmationKeepsPlaceUnderClockSkew(t *testing.T) {
	controller, feed, sender := newTestController(t)

	controller.SetDraft("first message here")
	require.NoError(t, controller.Send())
	refFirst := sender.lastRef()

	controller.SetDraft("second message here")
	require.NoError(t, controller.Send())

	// The first confirmation carries a server timestamp ahead of the second
	// provisional's local clock; it must not leapfrog it.
	feed.push(Event{
		MessageID: "msg-a", ConversationID: "conv-1", SenderID: "buyer-1",
		ClientRef: refFirst, Content: "first message here", CreatedAt: time.Now().Add(time.Minute),
	})

	messages := controller.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "msg-a", messages[0].ID)
	assert.True(t, messages[1].Provisional)
	assert.Equal(t, "second message here", messages[1].Content)
}

func TestCounterpartMessageAppends(t *testing.T) {
	controller, feed, _ := newTestController(t)

	feed.push(Event{
		MessageID:      "msg-3",
		ConversationID: "conv-1",
		SenderID:       "seller-9",
		Content:        "yes, still available",
		CreatedAt:      time.Now(),
	})

	messages := controller.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "seller-9", messages[0].SenderID)
	assert.False(t, messages[0].Provisional)
}

func TestEventForOtherConversationIgnored(t *testing.T) {
	controller, feed, _ := newTestController(t)

	feed.push(Event{
		MessageID:      "msg-4",
		ConversationID: "conv-other",
		SenderID:       "seller-9",
		Content:        "wrong room",
		CreatedAt:      time.Now(),
	})

	assert.Empty(t, controller.Messages())
}

func TestSetActiveTearsDownPriorSubscription(t *testing.T) {
	controller, feed, _ := newTestController(t)

	require.NoError(t, controller.SetActive("conv-2", nil))

	feed.mu.Lock()
	defer feed.mu.Unlock()
	assert.Equal(t, 2, feed.subscribed)
	assert.Equal(t, 1, feed.unsubscribed)
}

func TestSwitchingConversationResetsThreadState(t *testing.T) {
	controller, _, _ := newTestController(t)

	controller.SetDraft("half-typed note")
	history := []Message{{ID: "msg-old", SenderID: "seller-9", Content: "hey", CreatedAt: time.Now()}}
	require.NoError(t, controller.SetActive("conv-2", history))

	messages := controller.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "msg-old", messages[0].ID)
	assert.Empty(t, controller.Draft())
}

func TestSendRejectsEmptyAndOversizedDrafts(t *testing.T) {
	controller, _, sender := newTestController(t)

	controller.SetDraft("   ")
	assert.ErrorIs(t, controller.Send(), ErrEmptyContent)

	long := make([]rune, 1001)
	for i := range long {
		long[i] = 'a'
	}
	controller.SetDraft(string(long))
	assert.ErrorIs(t, controller.Send(), ErrContentTooLong)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	assert.Empty(t, sender.calls, "invalid drafts never reach the network")
}

func TestPreviewTracksLastMessage(t *testing.T) {
	controller, feed, _ := newTestController(t)

	text, at := controller.Preview()
	assert.Equal(t, "No messages yet", text)
	assert.Equal(t, "Just now", at)

	feed.push(Event{
		MessageID: "msg-5", ConversationID: "conv-1", SenderID: "seller-9",
		Content: "sold, sorry", CreatedAt: time.Now(),
	})

	text, _ = controller.Preview()
	assert.Equal(t, "sold, sorry", text)
}
