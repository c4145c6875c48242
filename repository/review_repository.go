package repository

import (
	"context"

	"gorm.io/gorm"

	"campus-trade-api/entity"
)

type ReviewRepository struct {
	Repository[entity.Review]
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (repository ReviewRepository) FindByReviewedUser(ctx context.Context, db *gorm.DB, reviewedUserID string) ([]entity.Review, error) {
	var reviews []entity.Review
	err := db.WithContext(ctx).
		Preload("Reviewer").
		Where("reviewed_user_id = ?", reviewedUserID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (repository ReviewRepository) FindByReviewer(ctx context.Context, db *gorm.DB, reviewerID string) ([]entity.Review, error) {
	var reviews []entity.Review
	err := db.WithContext(ctx).
		Where("reviewer_id = ?", reviewerID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
