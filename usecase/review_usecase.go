package usecase

import (
	"context"

	"campus-trade-api/dto/req"
	"campus-trade-api/dto/res"
)

type ReviewUsecase interface {
	CreateReview(ctx context.Context, reviewerID string, request *req.ReviewRequest) (res.ReviewResponse, error)
	GetReviewsForUser(ctx context.Context, reviewedUserID string) (res.ReviewSummaryResponse, error)
	GetReviewsByReviewer(ctx context.Context, reviewerID string) ([]res.ReviewResponse, error)
}
