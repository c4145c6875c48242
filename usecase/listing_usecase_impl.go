package usecase

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"campus-trade-api/dto/req"
	"campus-trade-api/dto/res"
	"campus-trade-api/entity"
	"campus-trade-api/enum"
	"campus-trade-api/repository"
	"campus-trade-api/util"
)

type ListingUsecaseImpl struct {
	*repository.ListingRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
}

func NewListingUsecase(listingRepository *repository.ListingRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger) ListingUsecase {
	return &ListingUsecaseImpl{ListingRepository: listingRepository, Validate: validate, DB: DB, Logger: logger}
}

func (uc *ListingUsecaseImpl) CreateListing(ctx context.Context, userID string, request *req.ListingRequest) (res.ListingResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("Failed to validate listing request")
		return res.ListingResponse{}, err
	}
	if err := ValidateListing(request, request.Publish); err != nil {
		return res.ListingResponse{}, err
	}

	listing := &entity.Listing{
		UserID:       userID,
		Title:        strings.TrimSpace(request.Title),
		Category:     request.Category,
		Subcategory:  request.Subcategory,
		Size:         request.Size,
		Condition:    enum.ListingCondition(request.Condition),
		Price:        request.Price,
		Description:  request.Description,
		Location:     strings.TrimSpace(request.Location),
		Photos:       request.Photos,
		Status:       enum.ListingStatusDraft,
		ContactEmail: request.ContactEmail,
		ContactPhone: request.ContactPhone,
	}
	if request.Publish {
		listing.Status = enum.ListingStatusPublished
	}
	if request.GameDate != "" {
		date, err := parseGameDate(request.GameDate)
		if err != nil {
			return res.ListingResponse{}, err
		}
		listing.GameDate = &date
	}

	listing.ID = uuid.New().String()
	listing.Slug = util.Slugify(listing.Title, listing.ID)

	if err := uc.ListingRepository.Save(ctx, uc.DB, listing); err != nil {
		uc.Logger.WithError(err).Error("Failed to save listing")
		return res.ListingResponse{}, err
	}

	uc.Logger.Infof("Created listing %s for user %s", listing.ID, userID)
	return toListingResponse(listing), nil
}

func (uc *ListingUsecaseImpl) UpdateListing(ctx context.Context, userID, listingID string, request *req.ListingRequest) (res.ListingResponse, error) {
	listing, err := uc.findOwned(ctx, userID, listingID)
	if err != nil {
		return res.ListingResponse{}, err
	}

	if err := uc.Validate.Struct(request); err != nil {
		return res.ListingResponse{}, err
	}
	publishing := listing.Status == enum.ListingStatusPublished || request.Publish
	if err := ValidateListing(request, publishing); err != nil {
		return res.ListingResponse{}, err
	}

	listing.Title = strings.TrimSpace(request.Title)
	listing.Category = request.Category
	listing.Subcategory = request.Subcategory
	listing.Size = request.Size
	listing.Condition = enum.ListingCondition(request.Condition)
	listing.Price = request.Price
	listing.Description = request.Description
	listing.Location = strings.TrimSpace(request.Location)
	listing.Photos = request.Photos
	listing.ContactEmail = request.ContactEmail
	listing.ContactPhone = request.ContactPhone
	listing.GameDate = nil
	if request.GameDate != "" {
		date, err := parseGameDate(request.GameDate)
		if err != nil {
			return res.ListingResponse{}, err
		}
		listing.GameDate = &date
	}
	if request.Publish && listing.Status == enum.ListingStatusDraft {
		listing.Status = enum.ListingStatusPublished
	}

	if err := uc.ListingRepository.Update(ctx, uc.DB, listing); err != nil {
		uc.Logger.WithError(err).Error("Failed to update listing")
		return res.ListingResponse{}, err
	}
	return toListingResponse(listing), nil
}

func (uc *ListingUsecaseImpl) ChangeStatus(ctx context.Context, userID, listingID string, request *req.ChangeListingStatusRequest) (res.ListingResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.ListingResponse{}, err
	}

	listing, err := uc.findOwned(ctx, userID, listingID)
	if err != nil {
		return res.ListingResponse{}, err
	}

	next := enum.ListingStatus(request.Status)
	if !listing.Status.CanTransitionTo(next) {
		return res.ListingResponse{}, &InvalidTransitionError{From: listing.Status, To: next}
	}
	if next == enum.ListingStatusPublished && len(listing.Photos) < minPhotosToPublish {
		return res.ListingResponse{}, &InvalidTransitionError{From: listing.Status, To: next, Reason: "at least 2 photos are required to publish"}
	}

	if err := uc.ListingRepository.UpdateStatus(ctx, uc.DB, listing.ID, next); err != nil {
		uc.Logger.WithError(err).Error("Failed to change listing status")
		return res.ListingResponse{}, err
	}
	listing.Status = next
	uc.Logger.Infof("Listing %s moved to %s", listing.ID, next)
	return toListingResponse(listing), nil
}

func (uc *ListingUsecaseImpl) DeleteListing(ctx context.Context, userID, listingID string) error {
	listing, err := uc.findOwned(ctx, userID, listingID)
	if err != nil {
		return err
	}
	if err := uc.ListingRepository.Delete(ctx, uc.DB, listing); err != nil {
		uc.Logger.WithError(err).Error("Failed to delete listing")
		return err
	}
	return nil
}

func (uc *ListingUsecaseImpl) GetListing(ctx context.Context, listingID string) (res.ListingResponse, error) {
	var listing entity.Listing
	if err := uc.ListingRepository.FindById(ctx, uc.DB, &listing, listingID); err != nil {
		return res.ListingResponse{}, ErrNotFound
	}
	return toListingResponse(&listing), nil
}

func (uc *ListingUsecaseImpl) GetListingBySlug(ctx context.Context, slug string) (res.ListingResponse, error) {
	listing, err := uc.ListingRepository.FindBySlug(ctx, uc.DB, slug)
	if err != nil {
		return res.ListingResponse{}, err
	}
	if listing == nil {
		return res.ListingResponse{}, ErrNotFound
	}
	return toListingResponse(listing), nil
}

func (uc *ListingUsecaseImpl) BrowseListings(ctx context.Context, filter req.ListingFilter) ([]res.ListingResponse, error) {
	listings, err := uc.ListingRepository.FindPublished(ctx, uc.DB, filter)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to browse listings")
		return nil, err
	}
	return toListingResponses(listings), nil
}

func (uc *ListingUsecaseImpl) GetMyListings(ctx context.Context, userID string) ([]res.ListingResponse, error) {
	listings, err := uc.ListingRepository.FindAllByUserID(ctx, uc.DB, userID)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to get user listings")
		return nil, err
	}
	return toListingResponses(listings), nil
}

func (uc *ListingUsecaseImpl) findOwned(ctx context.Context, userID, listingID string) (*entity.Listing, error) {
	var listing entity.Listing
	if err := uc.ListingRepository.FindById(ctx, uc.DB, &listing, listingID); err != nil {
		return nil, ErrNotFound
	}
	if listing.UserID != userID {
		return nil, ErrNotOwner
	}
	return &listing, nil
}

func toListingResponse(listing *entity.Listing) res.ListingResponse {
	response := res.ListingResponse{
		ID:           listing.ID,
		UserID:       listing.UserID,
		Title:        listing.Title,
		Slug:         listing.Slug,
		Category:     listing.Category,
		Subcategory:  listing.Subcategory,
		Size:         listing.Size,
		Condition:    string(listing.Condition),
		Price:        listing.Price,
		Description:  listing.Description,
		Location:     listing.Location,
		Photos:       listing.Photos,
		Status:       string(listing.Status),
		ContactEmail: listing.ContactEmail,
		ContactPhone: listing.ContactPhone,
		CreatedAt:    listing.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if listing.GameDate != nil {
		response.GameDate = listing.GameDate.Format("2006-01-02")
	}
	return response
}

func toListingResponses(listings []entity.Listing) []res.ListingResponse {
	responses := make([]res.ListingResponse, 0, len(listings))
	for i := range listings {
		responses = append(responses, toListingResponse(&listings[i]))
	}
	return responses
}
