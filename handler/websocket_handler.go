package handler

import (
	"context"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"

	"campus-trade-api/dto"
	"campus-trade-api/dto/req"
	"campus-trade-api/usecase"
)

// WebSocketHandler is the realtime change feed: one room per conversation,
// every persisted message broadcast to the room in commit order. A client
// holds one room subscription at a time; switching conversations means a new
// connection.
type WebSocketHandler struct {
	*logrus.Logger
	sync.Mutex
	usecase.MessageUsecase
	Clients   map[string]map[*websocket.Conn]bool // conversationId -> subscribed clients
	Broadcast chan dto.BroadcastMessage
}

func NewWebSocketHandler(logger *logrus.Logger, messageUsecase usecase.MessageUsecase) *WebSocketHandler {
	handler := &WebSocketHandler{
		Logger:         logger,
		MessageUsecase: messageUsecase,
		Clients:        make(map[string]map[*websocket.Conn]bool),
		Broadcast:      make(chan dto.BroadcastMessage),
	}
	go handler.runBroadcast()
	return handler
}

func (handler *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	ctx := context.Background()

	// The sender is whoever the upgrade middleware authenticated. Query
	// params and frames cannot speak for another user.
	senderID, ok := c.Locals("user_id").(string)
	if !ok || senderID == "" {
		handler.Logger.Error("Websocket connection without authenticated user")
		c.Close()
		return
	}

	join := &req.MessageRequest{
		ConversationID: c.Query("conversationId"),
		SenderID:       senderID,
		ReceiverID:     c.Query("receiverId"),
		ListingID:      c.Query("listingId"),
	}

	conversationID, err := handler.MessageUsecase.ResolveConversation(ctx, join)
	if err != nil {
		handler.Logger.Errorf("Failed to resolve conversation: %v", err)
		c.Close()
		return
	}
	handler.Logger.Infof("Client joined conversation: %s", conversationID)

	handler.registerClient(conversationID, c)
	defer func() {
		handler.removeClient(conversationID, c)
		c.Close()
	}()

	for {
		var payload req.MessageRequest
		if err := c.ReadJSON(&payload); err != nil {
			handler.Logger.Warnf("Read error: %v", err)
			break
		}

		payload.ConversationID = conversationID
		payload.SenderID = senderID

		broadcastMsg, err := handler.MessageUsecase.ProcessIncomingMessage(ctx, &payload)
		if err != nil {
			handler.Logger.Errorf("Failed to process message: %v", err)
			continue
		}

		handler.Broadcast <- broadcastMsg
	}
}

func (handler *WebSocketHandler) registerClient(conversationID string, conn *websocket.Conn) {
	handler.Mutex.Lock()
	defer handler.Mutex.Unlock()

	if handler.Clients[conversationID] == nil {
		handler.Clients[conversationID] = make(map[*websocket.Conn]bool)
	}
	handler.Clients[conversationID][conn] = true
	handler.Logger.Infof("Client joined conversation room: %s (Total: %d)", conversationID, len(handler.Clients[conversationID]))
}

func (handler *WebSocketHandler) removeClient(conversationID string, conn *websocket.Conn) {
	handler.Mutex.Lock()
	defer handler.Mutex.Unlock()

	if clients, ok := handler.Clients[conversationID]; ok {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(handler.Clients, conversationID)
		}
	}
	handler.Logger.Infof("Client left conversation room: %s", conversationID)
}

func (handler *WebSocketHandler) runBroadcast() {
	for {
		msg := <-handler.Broadcast
		handler.Mutex.Lock()
		clients := handler.Clients[msg.ConversationID]
		for conn := range clients {
			if err := conn.WriteJSON(msg); err != nil {
				handler.Logger.Warnf("Error broadcasting message: %v", err)
				conn.Close()
				delete(clients, conn)
			}
		}
		handler.Mutex.Unlock()
	}
}
