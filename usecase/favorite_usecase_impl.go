package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"campus-trade-api/dto/res"
	"campus-trade-api/entity"
	"campus-trade-api/repository"
)

type FavoriteUsecaseImpl struct {
	*repository.FavoriteRepository
	*repository.ListingRepository
	*gorm.DB
	*logrus.Logger
}

func NewFavoriteUsecase(favoriteRepository *repository.FavoriteRepository, listingRepository *repository.ListingRepository, DB *gorm.DB, logger *logrus.Logger) FavoriteUsecase {
	return &FavoriteUsecaseImpl{
		FavoriteRepository: favoriteRepository,
		ListingRepository:  listingRepository,
		DB:                 DB,
		Logger:             logger,
	}
}

func (uc *FavoriteUsecaseImpl) AddFavorite(ctx context.Context, userID, listingID string) error {
	var listing entity.Listing
	if err := uc.ListingRepository.FindById(ctx, uc.DB, &listing, listingID); err != nil {
		return ErrNotFound
	}

	favorite := &entity.Favorite{UserID: userID, ListingID: listingID}
	if err := uc.FavoriteRepository.SaveIdempotent(ctx, uc.DB, favorite); err != nil {
		uc.Logger.WithError(err).Error("Failed to save favorite")
		return err
	}
	return nil
}

func (uc *FavoriteUsecaseImpl) RemoveFavorite(ctx context.Context, userID, listingID string) error {
	return uc.FavoriteRepository.DeleteByUserAndListing(ctx, uc.DB, userID, listingID)
}

func (uc *FavoriteUsecaseImpl) GetFavorites(ctx context.Context, userID string) ([]res.FavoriteResponse, error) {
	favorites, err := uc.FavoriteRepository.FindAllByUserID(ctx, uc.DB, userID)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to list favorites")
		return nil, err
	}

	responses := make([]res.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		favorite := &favorites[i]
		responses = append(responses, res.FavoriteResponse{
			ID:        favorite.ID,
			ListingID: favorite.ListingID,
			Listing:   toListingResponse(&favorite.Listing),
			CreatedAt: favorite.CreatedAt.Format(timeFormat),
		})
	}
	return responses, nil
}
