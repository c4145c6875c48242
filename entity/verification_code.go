package entity

import (
	"time"

	"campus-trade-api/enum"
)

// VerificationCode is a one-time 6-digit code mailed during signup and
// password reset. Validity is ten minutes, enforced by the auth usecase.
type VerificationCode struct {
	BaseEntity
	Email      string          `json:"email" gorm:"type:varchar(100);not null;index"`
	Code       string          `json:"-" gorm:"type:varchar(6);not null"`
	Purpose    enum.OTPPurpose `json:"purpose" gorm:"type:varchar(20);not null"`
	ExpiresAt  time.Time       `json:"expiresAt" gorm:"not null"`
	ConsumedAt *time.Time      `json:"consumedAt,omitempty" gorm:"null"`
}

func (v *VerificationCode) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}

func (v *VerificationCode) Consumed() bool {
	return v.ConsumedAt != nil
}
