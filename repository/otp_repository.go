package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"campus-trade-api/entity"
	"campus-trade-api/enum"
)

type OTPRepository struct {
	Repository[entity.VerificationCode]
}

func NewOTPRepository() *OTPRepository {
	return &OTPRepository{}
}

// FindLatest returns the newest code for the address and purpose, consumed or
// not. The usecase decides whether it is still usable.
func (repository OTPRepository) FindLatest(ctx context.Context, db *gorm.DB, email string, purpose enum.OTPPurpose) (*entity.VerificationCode, error) {
	var code entity.VerificationCode
	err := db.WithContext(ctx).
		Where("email = ? AND purpose = ?", email, purpose).
		Order("created_at DESC").
		First(&code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &code, nil
}

func (repository OTPRepository) Consume(ctx context.Context, db *gorm.DB, id string, at time.Time) error {
	return db.WithContext(ctx).
		Model(&entity.VerificationCode{}).
		Where("id = ?", id).
		Update("consumed_at", at).Error
}
