package req

// MessageRequest is the frame a websocket client sends. ClientRef is an opaque
// correlation id echoed back in the broadcast so the sender can reconcile its
// provisional copy; it is never persisted. SenderID is filled in server-side
// from the authenticated session; anything a client puts there is discarded.
type MessageRequest struct {
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"-"`
	ReceiverID     string `json:"receiverId,omitempty"`
	ListingID      string `json:"listingId,omitempty"`
	ClientRef      string `json:"clientRef,omitempty"`
	Content        string `json:"content"`
}

// StartConversationRequest opens (or reuses) a conversation with a seller and
// sends the first message in one call.
type StartConversationRequest struct {
	SellerID  string `json:"sellerId" validate:"required"`
	ListingID string `json:"listingId"`
	Content   string `json:"content" validate:"required"`
}
