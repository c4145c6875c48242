package usecase

import (
	"context"

	"campus-trade-api/dto/req"
	"campus-trade-api/dto/res"
)

type UserUsecase interface {
	GetUserByToken(ctx context.Context, token string) (res.UserResponse, error)
	GetUserByID(ctx context.Context, userID string) (res.UserResponse, error)
	GetAllUsers(ctx context.Context) ([]res.UserResponse, error)
	EditProfile(ctx context.Context, userID string, request *req.EditProfileRequest) (res.UserResponse, error)
}
