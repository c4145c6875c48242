package usecase

import (
	"context"

	"campus-trade-api/dto/req"
	"campus-trade-api/dto/res"
)

type ListingUsecase interface {
	CreateListing(ctx context.Context, userID string, request *req.ListingRequest) (res.ListingResponse, error)
	UpdateListing(ctx context.Context, userID, listingID string, request *req.ListingRequest) (res.ListingResponse, error)
	ChangeStatus(ctx context.Context, userID, listingID string, request *req.ChangeListingStatusRequest) (res.ListingResponse, error)
	DeleteListing(ctx context.Context, userID, listingID string) error
	GetListing(ctx context.Context, listingID string) (res.ListingResponse, error)
	GetListingBySlug(ctx context.Context, slug string) (res.ListingResponse, error)
	BrowseListings(ctx context.Context, filter req.ListingFilter) ([]res.ListingResponse, error)
	GetMyListings(ctx context.Context, userID string) ([]res.ListingResponse, error)
}
