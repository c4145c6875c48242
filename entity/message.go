package entity

// Message is immutable once created; only the read flag is ever updated.
type Message struct {
	BaseEntity
	ConversationID string `json:"conversationId" gorm:"type:varchar(255);not null;index"`
	SenderID       string `json:"senderId" gorm:"type:varchar(255);not null"`
	Content        string `json:"content" gorm:"type:varchar(1000);not null"`
	Read           bool   `json:"read" gorm:"default:false"`

	Conversation Conversation `json:"-" gorm:"foreignKey:ConversationID;references:ID"`
	Sender       User         `json:"-" gorm:"foreignKey:SenderID;references:ID"`
}
