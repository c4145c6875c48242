package entity

import "campus-trade-api/enum"

type User struct {
	BaseEntity
	FullName  string        `json:"fullName" gorm:"type:varchar(255)"`
	Email     string        `json:"email" gorm:"unique;type:varchar(100)"`
	AvatarURL string        `json:"avatarUrl,omitempty" gorm:"type:text"`
	Bio       string        `json:"bio,omitempty" gorm:"type:text"`
	Role      enum.UserRole `json:"role" gorm:"type:varchar(20);default:'student'"`
	Verified  bool          `json:"verified" gorm:"default:false"`
	AccountID string        `json:"accountId" gorm:"type:varchar(255);unique"`

	Listings []Listing `json:"-" gorm:"foreignKey:UserID"`
	Messages []Message `json:"-" gorm:"foreignKey:SenderID"`
}
