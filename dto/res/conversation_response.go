package res

// ConversationListingPreview is the slice of the listing shown in the
// conversation list. Nil when the listing is gone or the conversation was
// never listing-scoped.
type ConversationListingPreview struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Price   float64 `json:"price"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// ConversationCounterpart is the other participant's card.
type ConversationCounterpart struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Verified  bool   `json:"verified"`
}

// ConversationResponse is one enriched directory entry. Listing and
// Counterpart stay nil when their lookup fails; the entry itself is always
// produced.
type ConversationResponse struct {
	ID              string                      `json:"id"`
	BuyerID         string                      `json:"buyerId"`
	SellerID        string                      `json:"sellerId"`
	Listing         *ConversationListingPreview `json:"listing,omitempty"`
	Counterpart     *ConversationCounterpart    `json:"counterpart,omitempty"`
	Messages        []MessageResponse           `json:"messages"`
	LastMessageText string                      `json:"lastMessageText"`
	LastMessageTime string                      `json:"lastMessageTime"`
	UpdatedAt       string                      `json:"updatedAt"`
}

// StartConversationResponse confirms a first contact: the conversation that
// now exists for the triple and the id of the opening message.
type StartConversationResponse struct {
	ConversationID string `json:"conversationId"`
	MessageID      string `json:"messageId"`
}

// DirectoryResponse is the whole conversation list plus the entry the client
// should open first (the most recently updated one).
type DirectoryResponse struct {
	Conversations        []ConversationResponse `json:"conversations"`
	ActiveConversationID string                 `json:"activeConversationId,omitempty"`
}
