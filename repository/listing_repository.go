package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campus-trade-api/dto/req"
	"campus-trade-api/entity"
	"campus-trade-api/enum"
)

type ListingRepository struct {
	Repository[entity.Listing]
}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{}
}

func (repository ListingRepository) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*entity.Listing, error) {
	var listing entity.Listing
	err := db.WithContext(ctx).Where("slug = ?", slug).First(&listing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// FindPublished applies the browse filters over published listings only,
// newest first.
func (repository ListingRepository) FindPublished(ctx context.Context, db *gorm.DB, filter req.ListingFilter) ([]entity.Listing, error) {
	query := db.WithContext(ctx).
		Model(&entity.Listing{}).
		Where("status = ?", enum.ListingStatusPublished)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Subcategory != "" {
		query = query.Where("subcategory = ?", filter.Subcategory)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var listings []entity.Listing
	err := query.Order("created_at DESC").Find(&listings).Error
	return listings, err
}

func (repository ListingRepository) FindAllByUserID(ctx context.Context, db *gorm.DB, userID string) ([]entity.Listing, error) {
	var listings []entity.Listing
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&listings).Error
	return listings, err
}

func (repository ListingRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id string, status enum.ListingStatus) error {
	return db.WithContext(ctx).
		Model(&entity.Listing{}).
		Where("id = ?", id).
		Update("status", status).Error
}
