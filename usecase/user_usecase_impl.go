package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"campus-trade-api/config/logger"
	"campus-trade-api/dto/req"
	"campus-trade-api/dto/res"
	"campus-trade-api/entity"
	"campus-trade-api/enum"
	"campus-trade-api/repository"
	"campus-trade-api/security"
)

type UserUsecaseImpl struct {
	*repository.UserRepository
	*validator.Validate
	*gorm.DB
	Log *logger.AppLogger
	*security.JWT
}

func NewUserUsecase(userRepository *repository.UserRepository, validate *validator.Validate, DB *gorm.DB, logger *logger.AppLogger, JWT *security.JWT) UserUsecase {
	return &UserUsecaseImpl{UserRepository: userRepository, Validate: validate, DB: DB, Log: logger, JWT: JWT}
}

func (uc *UserUsecaseImpl) GetUserByToken(ctx context.Context, token string) (res.UserResponse, error) {
	uc.Log.Http.Trace.Trace().Msg("Extracting user ID from token")

	userID, err := uc.JWT.GetUserIdFromToken(token)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to extract user ID from token")
		return res.UserResponse{}, errors.New("invalid token")
	}
	return uc.GetUserByID(ctx, userID)
}

func (uc *UserUsecaseImpl) GetUserByID(ctx context.Context, userID string) (res.UserResponse, error) {
	var user entity.User
	if err := uc.UserRepository.FindById(ctx, uc.DB, &user, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			uc.Log.Http.Warning.Warn().Str("userId", userID).Msg("User not found")
			return res.UserResponse{}, ErrNotFound
		}
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to find user")
		return res.UserResponse{}, err
	}
	return toUserResponse(&user), nil
}

func (uc *UserUsecaseImpl) GetAllUsers(ctx context.Context) ([]res.UserResponse, error) {
	var users []entity.User
	if err := uc.UserRepository.FindAll(ctx, uc.DB, &users); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to list users")
		return nil, err
	}
	responses := make([]res.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toUserResponse(&users[i]))
	}
	return responses, nil
}

func (uc *UserUsecaseImpl) EditProfile(ctx context.Context, userID string, request *req.EditProfileRequest) (res.UserResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.UserResponse{}, err
	}

	var user entity.User
	if err := uc.UserRepository.FindById(ctx, uc.DB, &user, userID); err != nil {
		return res.UserResponse{}, ErrNotFound
	}

	user.FullName = request.FullName
	user.Bio = request.Bio
	user.AvatarURL = request.AvatarURL
	if request.Role != "" {
		user.Role = enum.UserRole(request.Role)
	}

	if err := uc.UserRepository.Update(ctx, uc.DB, &user); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to update profile")
		return res.UserResponse{}, err
	}
	uc.Log.Http.Info.Info().Str("userId", userID).Msg("Profile updated")
	return toUserResponse(&user), nil
}

func toUserResponse(user *entity.User) res.UserResponse {
	return res.UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		Bio:       user.Bio,
		Role:      string(user.Role),
		Verified:  user.Verified,
	}
}
