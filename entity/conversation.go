package entity

// Conversation is the two-party channel between a buyer and a seller,
// optionally scoped to one listing. The unique index over the triple makes
// creation idempotent at the storage layer; concurrent first-contact attempts
// collapse onto one row instead of racing a lookup.
type Conversation struct {
	BaseEntity
	BuyerID   string  `json:"buyerId" gorm:"type:varchar(255);not null;uniqueIndex:idx_conversation_parties"`
	SellerID  string  `json:"sellerId" gorm:"type:varchar(255);not null;uniqueIndex:idx_conversation_parties"`
	ListingID *string `json:"listingId,omitempty" gorm:"type:varchar(255);uniqueIndex:idx_conversation_parties"`

	Buyer    User      `json:"-" gorm:"foreignKey:BuyerID;references:ID"`
	Seller   User      `json:"-" gorm:"foreignKey:SellerID;references:ID"`
	Listing  *Listing  `json:"-" gorm:"foreignKey:ListingID;references:ID"`
	Messages []Message `json:"messages,omitempty" gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE;"`
}

// CounterpartID returns the other participant relative to userID.
func (c *Conversation) CounterpartID(userID string) string {
	if c.BuyerID == userID {
		return c.SellerID
	}
	return c.BuyerID
}

// HasParticipant reports whether userID is one of the two parties.
func (c *Conversation) HasParticipant(userID string) bool {
	return c.BuyerID == userID || c.SellerID == userID
}
