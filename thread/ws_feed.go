package thread

import (
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// frame mirrors the wire shape of the realtime feed in both directions. The
// server derives the sender from the authenticated session, so outgoing
// frames carry no sender id; incoming broadcasts do.
type frame struct {
	MessageID      string `json:"messageId,omitempty"`
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId,omitempty"`
	SenderName     string `json:"senderName,omitempty"`
	ClientRef      string `json:"clientRef,omitempty"`
	Content        string `json:"content"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// WSFeed is a websocket Feed implementation. The dial authenticates with the
// session token; one connection is held per subscription and Send writes on
// whichever connection is current.
type WSFeed struct {
	baseURL string
	token   string

	mu   sync.Mutex
	conn *websocket.Conn
}

func NewWSFeed(baseURL, token string) *WSFeed {
	return &WSFeed{baseURL: baseURL, token: token}
}

// Subscribe dials the feed for one conversation and pumps insert events into
// fn until the connection closes or the returned function is called.
func (f *WSFeed) Subscribe(conversationID string, fn func(Event)) (func(), error) {
	endpoint := fmt.Sprintf("%s/ws?conversationId=%s&token=%s",
		f.baseURL, url.QueryEscape(conversationID), url.QueryEscape(f.token))

	conn, _, err := websocket.DefaultDialer.Dial(endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("dial feed: %w", err)
	}

	f.mu.Lock()
	f.conn = conn
	f.mu.Unlock()

	go func() {
		defer conn.Close()
		for {
			var incoming frame
			if err := conn.ReadJSON(&incoming); err != nil {
				return
			}
			createdAt, err := time.Parse("2006-01-02 15:04:05", incoming.CreatedAt)
			if err != nil {
				createdAt = time.Now()
			}
			fn(Event{
				MessageID:      incoming.MessageID,
				ConversationID: incoming.ConversationID,
				SenderID:       incoming.SenderID,
				SenderName:     incoming.SenderName,
				ClientRef:      incoming.ClientRef,
				Content:        incoming.Content,
				CreatedAt:      createdAt,
			})
		}
	}()

	return func() {
		f.mu.Lock()
		if f.conn == conn {
			f.conn = nil
		}
		f.mu.Unlock()
		conn.Close()
	}, nil
}

// Send writes one outgoing message frame. It satisfies the Sender signature.
func (f *WSFeed) Send(conversationID, clientRef, content string) error {
	f.mu.Lock()
	conn := f.conn
	f.mu.Unlock()
	if conn == nil {
		return ErrNoConversation
	}
	return conn.WriteJSON(frame{
		ConversationID: conversationID,
		ClientRef:      clientRef,
		Content:        content,
	})
}
