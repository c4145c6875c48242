package entity

import "time"

// Account holds the credential side of a signup. The profile lives in User.
// Verified is flipped once the signup OTP is confirmed; login is refused
// before that.
type Account struct {
	BaseEntity
	Email      string     `json:"email" gorm:"unique;type:varchar(100)"`
	Password   string     `json:"-" gorm:"type:varchar(255)"`
	Verified   bool       `json:"verified" gorm:"default:false"`
	VerifiedAt *time.Time `json:"verifiedAt,omitempty" gorm:"null"`
	User       User       `gorm:"foreignKey:AccountID;references:ID"`
}
