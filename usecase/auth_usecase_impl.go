package usecase

import (
	"context"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"campus-trade-api/dto/req"
	"campus-trade-api/dto/res"
	"campus-trade-api/entity"
	"campus-trade-api/enum"
	"campus-trade-api/mail"
	"campus-trade-api/repository"
	"campus-trade-api/security"
	"campus-trade-api/util"
)

const (
	otpValidity    = 10 * time.Minute
	resendCooldown = 30 * time.Second
)

var (
	hasLetter = regexp.MustCompile(`[A-Za-z]`)
	hasDigit  = regexp.MustCompile(`[0-9]`)
)

type AuthUsecaseImpl struct {
	*repository.AuthRepository
	*repository.OTPRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	*security.JWT
	Mailer mail.Mailer
}

func NewAuthUsecase(authRepository *repository.AuthRepository, otpRepository *repository.OTPRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, JWT *security.JWT, mailer mail.Mailer) AuthUsecase {
	return &AuthUsecaseImpl{
		AuthRepository: authRepository,
		OTPRepository:  otpRepository,
		Validate:       validate,
		DB:             DB,
		Logger:         logger,
		JWT:            JWT,
		Mailer:         mailer,
	}
}

func (uc *AuthUsecaseImpl) RegisterUser(ctx context.Context, request *req.RegisterRequest) (res.RegisterResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("Failed to validate register request")
		return res.RegisterResponse{}, err
	}
	if !hasLetter.MatchString(request.Password) || !hasDigit.MatchString(request.Password) {
		return res.RegisterResponse{}, errPasswordPolicy
	}

	existing, err := uc.AuthRepository.FindByEmail(ctx, uc.DB, request.Email)
	if err != nil {
		return res.RegisterResponse{}, err
	}
	if existing != nil {
		return res.RegisterResponse{}, ErrEmailTaken
	}

	hashPassword, err := util.HashPassword(request.Password)
	if err != nil {
		return res.RegisterResponse{}, err
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	newAccount := &entity.Account{
		Email:    request.Email,
		Password: hashPassword,
		User: entity.User{
			FullName: request.FullName,
			Email:    request.Email,
			Role:     enum.RoleStudent,
		},
	}
	if err := uc.AuthRepository.Save(ctx, trx, newAccount); err != nil {
		uc.Logger.WithError(err).Error("Failed to save account")
		return res.RegisterResponse{}, err
	}

	if err := uc.issueCode(ctx, trx, request.Email, enum.OTPPurposeSignup); err != nil {
		return res.RegisterResponse{}, err
	}

	if err := trx.Commit().Error; err != nil {
		uc.Logger.WithError(err).Error("Failed to commit registration")
		return res.RegisterResponse{}, err
	}

	uc.Logger.Infof("Registered account %s, verification code sent", newAccount.ID)
	return res.RegisterResponse{ID: newAccount.ID, Email: newAccount.Email}, nil
}

func (uc *AuthUsecaseImpl) VerifySignup(ctx context.Context, request *req.VerifyOTPRequest) (res.LoginResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.LoginResponse{}, err
	}

	account, err := uc.AuthRepository.FindByEmail(ctx, uc.DB, request.Email)
	if err != nil {
		return res.LoginResponse{}, err
	}
	if account == nil {
		return res.LoginResponse{}, ErrInvalidCredential
	}

	if err := uc.consumeCode(ctx, request.Email, request.Code, enum.OTPPurposeSignup); err != nil {
		return res.LoginResponse{}, err
	}

	if err := uc.AuthRepository.MarkVerified(ctx, uc.DB, account.ID); err != nil {
		uc.Logger.WithError(err).Error("Failed to mark account verified")
		return res.LoginResponse{}, err
	}

	token, err := uc.JWT.GenerateToken(&account.User)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to generate token")
		return res.LoginResponse{}, err
	}
	uc.Logger.Infof("Account %s verified", account.ID)
	return res.LoginResponse{Token: token}, nil
}

func (uc *AuthUsecaseImpl) ResendSignupCode(ctx context.Context, email string) error {
	account, err := uc.AuthRepository.FindByEmail(ctx, uc.DB, email)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrInvalidCredential
	}
	if account.Verified {
		return nil
	}
	return uc.issueCode(ctx, uc.DB, email, enum.OTPPurposeSignup)
}

func (uc *AuthUsecaseImpl) LoginUser(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("Failed to validate login request")
		return res.LoginResponse{}, err
	}

	account, err := uc.AuthRepository.FindByEmail(ctx, uc.DB, request.Email)
	if err != nil {
		return res.LoginResponse{}, err
	}
	if account == nil {
		return res.LoginResponse{}, ErrInvalidCredential
	}
	if !util.ComparePassword(account.Password, request.Password) {
		return res.LoginResponse{}, ErrInvalidCredential
	}
	if !account.Verified {
		return res.LoginResponse{}, ErrNotVerified
	}

	token, err := uc.JWT.GenerateToken(&account.User)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to generate token")
		return res.LoginResponse{}, err
	}
	return res.LoginResponse{Token: token}, nil
}

func (uc *AuthUsecaseImpl) RequestPasswordReset(ctx context.Context, request *req.ForgotPasswordRequest) error {
	if err := uc.Validate.Struct(request); err != nil {
		return err
	}
	account, err := uc.AuthRepository.FindByEmail(ctx, uc.DB, request.Email)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrInvalidCredential
	}
	return uc.issueCode(ctx, uc.DB, request.Email, enum.OTPPurposePasswordReset)
}

func (uc *AuthUsecaseImpl) ResetPassword(ctx context.Context, request *req.ResetPasswordRequest) error {
	if err := uc.Validate.Struct(request); err != nil {
		return err
	}
	if !hasLetter.MatchString(request.NewPassword) || !hasDigit.MatchString(request.NewPassword) {
		return errPasswordPolicy
	}

	account, err := uc.AuthRepository.FindByEmail(ctx, uc.DB, request.Email)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrInvalidCredential
	}

	if err := uc.consumeCode(ctx, request.Email, request.Code, enum.OTPPurposePasswordReset); err != nil {
		return err
	}

	hashed, err := util.HashPassword(request.NewPassword)
	if err != nil {
		return err
	}
	if err := uc.AuthRepository.UpdatePassword(ctx, uc.DB, account.ID, hashed); err != nil {
		uc.Logger.WithError(err).Error("Failed to update password")
		return err
	}
	uc.Logger.Infof("Password reset for account %s", account.ID)
	return nil
}

// issueCode stores a fresh ten-minute code and mails it. A second request
// within the cooldown window is refused so the resend button cannot hammer
// the mailer.
func (uc *AuthUsecaseImpl) issueCode(ctx context.Context, db *gorm.DB, email string, purpose enum.OTPPurpose) error {
	latest, err := uc.OTPRepository.FindLatest(ctx, db, email, purpose)
	if err != nil {
		return err
	}
	if latest != nil && time.Since(latest.CreatedAt) < resendCooldown {
		return ErrCodeCooldown
	}

	code, err := util.GenerateOTP()
	if err != nil {
		return err
	}
	record := &entity.VerificationCode{
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(otpValidity),
	}
	if err := uc.OTPRepository.Save(ctx, db, record); err != nil {
		uc.Logger.WithError(err).Error("Failed to store verification code")
		return err
	}
	if err := uc.Mailer.SendOTP(email, code, purpose); err != nil {
		return err
	}
	return nil
}

func (uc *AuthUsecaseImpl) consumeCode(ctx context.Context, email, code string, purpose enum.OTPPurpose) error {
	latest, err := uc.OTPRepository.FindLatest(ctx, uc.DB, email, purpose)
	if err != nil {
		return err
	}
	now := time.Now()
	if latest == nil || latest.Consumed() || latest.Expired(now) || latest.Code != code {
		return ErrInvalidCode
	}
	return uc.OTPRepository.Consume(ctx, uc.DB, latest.ID, now)
}
