package dto

// BroadcastMessage is one realtime feed event: an authoritative message row,
// pushed to every client in the conversation room. ClientRef echoes the
// sender's correlation id so its provisional copy can be replaced without
// content matching.
type BroadcastMessage struct {
	MessageID      string `json:"messageId"`
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	SenderName     string `json:"senderName"`
	SenderAvatar   string `json:"senderAvatar,omitempty"`
	ClientRef      string `json:"clientRef,omitempty"`
	Content        string `json:"content"`
	CreatedAt      string `json:"createdAt"`
}
