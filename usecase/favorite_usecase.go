package usecase

import (
	"context"

	"campus-trade-api/dto/res"
)

type FavoriteUsecase interface {
	AddFavorite(ctx context.Context, userID, listingID string) error
	RemoveFavorite(ctx context.Context, userID, listingID string) error
	GetFavorites(ctx context.Context, userID string) ([]res.FavoriteResponse, error)
}
