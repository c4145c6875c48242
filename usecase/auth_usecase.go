package usecase

import (
	"context"

	"campus-trade-api/dto/req"
	"campus-trade-api/dto/res"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *req.RegisterRequest) (res.RegisterResponse, error)
	VerifySignup(ctx context.Context, request *req.VerifyOTPRequest) (res.LoginResponse, error)
	ResendSignupCode(ctx context.Context, email string) error
	LoginUser(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error)
	RequestPasswordReset(ctx context.Context, request *req.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, request *req.ResetPasswordRequest) error
}
