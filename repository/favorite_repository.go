package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campus-trade-api/entity"
)

type FavoriteRepository struct {
	Repository[entity.Favorite]
}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{}
}

// SaveIdempotent relies on the (user, listing) unique index; re-favoriting is
// a no-op.
func (repository FavoriteRepository) SaveIdempotent(ctx context.Context, db *gorm.DB, favorite *entity.Favorite) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favorite).Error
}

func (repository FavoriteRepository) FindByUserAndListing(ctx context.Context, db *gorm.DB, userID, listingID string) (*entity.Favorite, error) {
	var favorite entity.Favorite
	err := db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		First(&favorite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (repository FavoriteRepository) FindAllByUserID(ctx context.Context, db *gorm.DB, userID string) ([]entity.Favorite, error) {
	var favorites []entity.Favorite
	err := db.WithContext(ctx).
		Preload("Listing").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

func (repository FavoriteRepository) DeleteByUserAndListing(ctx context.Context, db *gorm.DB, userID, listingID string) error {
	return db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&entity.Favorite{}).Error
}
