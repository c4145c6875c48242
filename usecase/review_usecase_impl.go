package usecase

import (
	"context"
	"errors"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"campus-trade-api/dto/req"
	"campus-trade-api/dto/res"
	"campus-trade-api/entity"
	"campus-trade-api/repository"
)

type ReviewUsecaseImpl struct {
	*repository.ReviewRepository
	*repository.UserRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
}

func NewReviewUsecase(reviewRepository *repository.ReviewRepository, userRepository *repository.UserRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger) ReviewUsecase {
	return &ReviewUsecaseImpl{
		ReviewRepository: reviewRepository,
		UserRepository:   userRepository,
		Validate:         validate,
		DB:               DB,
		Logger:           logger,
	}
}

func (uc *ReviewUsecaseImpl) CreateReview(ctx context.Context, reviewerID string, request *req.ReviewRequest) (res.ReviewResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("Failed to validate review request")
		return res.ReviewResponse{}, err
	}
	if request.ReviewedUserID == reviewerID {
		return res.ReviewResponse{}, errors.New("cannot review yourself")
	}

	var reviewed entity.User
	if err := uc.UserRepository.FindById(ctx, uc.DB, &reviewed, request.ReviewedUserID); err != nil {
		return res.ReviewResponse{}, ErrNotFound
	}

	review := &entity.Review{
		ReviewerID:     reviewerID,
		ReviewedUserID: request.ReviewedUserID,
		Rating:         request.Rating,
		Comment:        request.Comment,
	}
	if request.ListingID != "" {
		review.ListingID = &request.ListingID
	}

	if err := uc.ReviewRepository.Save(ctx, uc.DB, review); err != nil {
		uc.Logger.WithError(err).Error("Failed to save review")
		return res.ReviewResponse{}, err
	}
	uc.Logger.Infof("User %s reviewed user %s with rating %d", reviewerID, request.ReviewedUserID, request.Rating)
	return toReviewResponse(review), nil
}

func (uc *ReviewUsecaseImpl) GetReviewsForUser(ctx context.Context, reviewedUserID string) (res.ReviewSummaryResponse, error) {
	reviews, err := uc.ReviewRepository.FindByReviewedUser(ctx, uc.DB, reviewedUserID)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to get reviews")
		return res.ReviewSummaryResponse{}, err
	}

	summary := res.ReviewSummaryResponse{
		Reviews: make([]res.ReviewResponse, 0, len(reviews)),
		Count:   len(reviews),
	}
	var total int
	for i := range reviews {
		review := &reviews[i]
		response := toReviewResponse(review)
		response.ReviewerName = review.Reviewer.FullName
		summary.Reviews = append(summary.Reviews, response)
		total += review.Rating
	}
	if summary.Count > 0 {
		summary.AverageRating = math.Round(float64(total)/float64(summary.Count)*10) / 10
	}
	return summary, nil
}

func (uc *ReviewUsecaseImpl) GetReviewsByReviewer(ctx context.Context, reviewerID string) ([]res.ReviewResponse, error) {
	reviews, err := uc.ReviewRepository.FindByReviewer(ctx, uc.DB, reviewerID)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to get reviews by reviewer")
		return nil, err
	}
	responses := make([]res.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, toReviewResponse(&reviews[i]))
	}
	return responses, nil
}

func toReviewResponse(review *entity.Review) res.ReviewResponse {
	response := res.ReviewResponse{
		ID:         review.ID,
		ReviewerID: review.ReviewerID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt.Format(timeFormat),
	}
	if review.ListingID != nil {
		response.ListingID = *review.ListingID
	}
	return response
}
