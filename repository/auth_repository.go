package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campus-trade-api/entity"
)

type AuthRepository struct {
	Repository[entity.Account]
}

func NewAuthRepository() *AuthRepository {
	return &AuthRepository{}
}

func (repository AuthRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Account, error) {
	account := &entity.Account{}
	err := db.WithContext(ctx).Preload("User").Where("email = ?", email).First(account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

// MarkVerified flips the account and mirrors the badge onto the profile in
// one transaction, so the two can never diverge.
func (repository AuthRepository) MarkVerified(ctx context.Context, db *gorm.DB, accountID string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&entity.Account{}).
			Where("id = ?", accountID).
			Updates(map[string]interface{}{
				"verified":    true,
				"verified_at": gorm.Expr("NOW()"),
			}).Error
		if err != nil {
			return err
		}
		return tx.Model(&entity.User{}).
			Where("account_id = ?", accountID).
			Update("verified", true).Error
	})
}

func (repository AuthRepository) UpdatePassword(ctx context.Context, db *gorm.DB, accountID, hashed string) error {
	return db.WithContext(ctx).
		Model(&entity.Account{}).
		Where("id = ?", accountID).
		Update("password", hashed).Error
}
