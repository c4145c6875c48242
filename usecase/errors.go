package usecase

import (
	"errors"
	"fmt"

	"campus-trade-api/enum"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrNotOwner          = errors.New("resource belongs to another user")
	ErrNotParticipant    = errors.New("user is not a participant of this conversation")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrNotVerified       = errors.New("account is not verified")
	ErrInvalidCode       = errors.New("verification code is invalid or expired")
	ErrCodeCooldown      = errors.New("a code was sent recently, wait before requesting another")
	ErrEmailTaken        = errors.New("account already exists")

	errPasswordPolicy = errors.New("password must contain letters and numbers")
)

type InvalidTransitionError struct {
	From   enum.ListingStatus
	To     enum.ListingStatus
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot move listing from %s to %s: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("cannot move listing from %s to %s", e.From, e.To)
}
